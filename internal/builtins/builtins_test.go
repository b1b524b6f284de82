package builtins

import (
	"bytes"
	"testing"

	"github.com/anish1234567/jiaobenscript/internal/values"
)

func mustInt(t *testing.T, v values.Value, want int64) {
	t.Helper()
	i, ok := v.(values.Int)
	if !ok || i.Value != want {
		t.Fatalf("got %#v, want Int(%d)", v, want)
	}
}

func mustFloat(t *testing.T, v values.Value, want float64) {
	t.Helper()
	f, ok := v.(values.Float)
	if !ok || f.Value != want {
		t.Fatalf("got %#v, want Float(%v)", v, want)
	}
}

func TestAddIntInt(t *testing.T) {
	v, err := Add(values.Int{Value: 2}, values.Int{Value: 3})
	if err != nil {
		t.Fatal(err)
	}
	mustInt(t, v, 5)
}

func TestAddPromotesToFloat(t *testing.T) {
	v, err := Add(values.Int{Value: 2}, values.Float{Value: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	mustFloat(t, v, 2.5)
}

func TestAddStrings(t *testing.T) {
	v, err := Add(values.String{Value: "foo"}, values.String{Value: "bar"})
	if err != nil {
		t.Fatal(err)
	}
	if s, ok := v.(values.String); !ok || s.Value != "foobar" {
		t.Fatalf("got %#v, want String(foobar)", v)
	}
}

func TestAddLists(t *testing.T) {
	a := values.NewList([]values.Value{values.Int{Value: 1}})
	b := values.NewList([]values.Value{values.Int{Value: 2}})
	v, err := Add(a, b)
	if err != nil {
		t.Fatal(err)
	}
	list := v.(*values.List)
	if len(list.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(list.Items))
	}
}

func TestMulListRepeat(t *testing.T) {
	l := values.NewList([]values.Value{values.Int{Value: 7}})
	v, err := Mul(l, values.Int{Value: 3})
	if err != nil {
		t.Fatal(err)
	}
	list := v.(*values.List)
	if len(list.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(list.Items))
	}
}

func TestMulListRepeatNegativeClampsToZero(t *testing.T) {
	l := values.NewList([]values.Value{values.Int{Value: 7}})
	v, err := Mul(values.Int{Value: -2}, l)
	if err != nil {
		t.Fatal(err)
	}
	list := v.(*values.List)
	if len(list.Items) != 0 {
		t.Fatalf("got %d items, want 0", len(list.Items))
	}
}

func TestDivIntExact(t *testing.T) {
	v, err := Div(values.Int{Value: 6}, values.Int{Value: 3})
	if err != nil {
		t.Fatal(err)
	}
	mustInt(t, v, 2)
}

func TestDivIntInexactTruncatesTowardZero(t *testing.T) {
	v, err := Div(values.Int{Value: 7}, values.Int{Value: 2})
	if err != nil {
		t.Fatal(err)
	}
	mustInt(t, v, 3)

	v, err = Div(values.Int{Value: -7}, values.Int{Value: 2})
	if err != nil {
		t.Fatal(err)
	}
	mustInt(t, v, -3)
}

func TestDivByZeroIsError(t *testing.T) {
	if _, err := Div(values.Int{Value: 1}, values.Int{Value: 0}); err == nil {
		t.Fatal("expected error")
	}
}

func TestModIntRemainder(t *testing.T) {
	v, err := Mod(values.Int{Value: 7}, values.Int{Value: 3})
	if err != nil {
		t.Fatal(err)
	}
	mustInt(t, v, 1)
}

func TestModFloatUsesIEEERemainder(t *testing.T) {
	v, err := Mod(values.Float{Value: 7}, values.Float{Value: 3})
	if err != nil {
		t.Fatal(err)
	}
	mustFloat(t, v, 1)
}

func TestModByZeroIsError(t *testing.T) {
	if _, err := Mod(values.Int{Value: 1}, values.Int{Value: 0}); err == nil {
		t.Fatal("expected error")
	}
}

func TestCompareLessThan(t *testing.T) {
	v, err := Compare("<", values.Int{Value: 1}, values.Float{Value: 2})
	if err != nil {
		t.Fatal(err)
	}
	if b, ok := v.(values.Bool); !ok || !b.Value {
		t.Fatalf("got %#v, want Bool(true)", v)
	}
}

func TestCompareNonNumericIsError(t *testing.T) {
	if _, err := Compare("<", values.String{Value: "a"}, values.String{Value: "b"}); err == nil {
		t.Fatal("expected error: string ordering is unspecified")
	}
}

func TestIndexReadAndWrite(t *testing.T) {
	l := values.NewList([]values.Value{values.Int{Value: 1}, values.Int{Value: 2}})
	v, err := Index(l, values.Int{Value: 1})
	if err != nil {
		t.Fatal(err)
	}
	mustInt(t, v, 2)

	if err := SetIndex(l, values.Int{Value: 0}, values.Int{Value: 9}); err != nil {
		t.Fatal(err)
	}
	mustInt(t, l.Items[0], 9)
}

func TestIndexOutOfRangeIsError(t *testing.T) {
	l := values.NewList([]values.Value{values.Int{Value: 1}})
	if _, err := Index(l, values.Int{Value: 5}); err == nil {
		t.Fatal("expected error")
	}
}

func TestNegPos(t *testing.T) {
	v, err := Neg(values.Int{Value: 4})
	if err != nil {
		t.Fatal(err)
	}
	mustInt(t, v, -4)

	v, err = Pos(values.Float{Value: 4.5})
	if err != nil {
		t.Fatal(err)
	}
	mustFloat(t, v, 4.5)
}

func findBuiltin(t *testing.T, table Table, name string) *values.Builtin {
	t.Helper()
	for _, nv := range table {
		if nv.Name == name {
			b, ok := nv.Value.(*values.Builtin)
			if !ok {
				t.Fatalf("%s is not a Builtin", name)
			}
			return b
		}
	}
	t.Fatalf("no builtin named %s", name)
	return nil
}

func TestDefaultTablePrint(t *testing.T) {
	var buf bytes.Buffer
	table := Default(&buf)
	print := findBuiltin(t, table, "print")
	if _, err := print.Fn([]values.Value{values.String{Value: "hi"}, values.Int{Value: 1}}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "hi 1\n" {
		t.Fatalf("got %q, want %q", got, "hi 1\n")
	}
}

func TestDefaultTableListOps(t *testing.T) {
	table := Default(&bytes.Buffer{})
	l := values.NewList([]values.Value{values.Int{Value: 1}, values.Int{Value: 2}})

	size := findBuiltin(t, table, "list_size")
	v, err := size.Fn([]values.Value{l})
	if err != nil {
		t.Fatal(err)
	}
	mustInt(t, v, 2)

	append_ := findBuiltin(t, table, "list_append")
	if _, err := append_.Fn([]values.Value{l, values.Int{Value: 3}}); err != nil {
		t.Fatal(err)
	}
	if len(l.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(l.Items))
	}

	pop := findBuiltin(t, table, "list_pop")
	popped, err := pop.Fn([]values.Value{l})
	if err != nil {
		t.Fatal(err)
	}
	mustInt(t, popped, 3)

	slice := findBuiltin(t, table, "list_slice")
	sliced, err := slice.Fn([]values.Value{l, values.Int{Value: 0}, values.Int{Value: 1}})
	if err != nil {
		t.Fatal(err)
	}
	slicedList := sliced.(*values.List)
	if len(slicedList.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(slicedList.Items))
	}
}

func TestDefaultTableStringOps(t *testing.T) {
	table := Default(&bytes.Buffer{})

	length := findBuiltin(t, table, "str_len")
	v, err := length.Fn([]values.Value{values.String{Value: "hello"}})
	if err != nil {
		t.Fatal(err)
	}
	mustInt(t, v, 5)

	upper := findBuiltin(t, table, "str_upper")
	v, err = upper.Fn([]values.Value{values.String{Value: "abc"}})
	if err != nil {
		t.Fatal(err)
	}
	if s := v.(values.String).Value; s != "ABC" {
		t.Fatalf("got %q, want ABC", s)
	}

	lower := findBuiltin(t, table, "str_lower")
	v, err = lower.Fn([]values.Value{values.String{Value: "ABC"}})
	if err != nil {
		t.Fatal(err)
	}
	if s := v.(values.String).Value; s != "abc" {
		t.Fatalf("got %q, want abc", s)
	}

	slice := findBuiltin(t, table, "str_slice")
	v, err = slice.Fn([]values.Value{values.String{Value: "hello"}, values.Int{Value: 1}, values.Int{Value: 3}})
	if err != nil {
		t.Fatal(err)
	}
	if s := v.(values.String).Value; s != "el" {
		t.Fatalf("got %q, want el", s)
	}
}

func TestDefaultTableJSONEncodeDecodeRoundTrip(t *testing.T) {
	table := Default(&bytes.Buffer{})
	encode := findBuiltin(t, table, "json_encode")
	decode := findBuiltin(t, table, "json_decode")

	l := values.NewList([]values.Value{
		values.Int{Value: 1},
		values.String{Value: "a"},
		values.Bool{Value: true},
		values.Null{},
	})
	encoded, err := encode.Fn([]values.Value{l})
	if err != nil {
		t.Fatal(err)
	}
	if s := encoded.(values.String).Value; s != `[1,"a",true,null]` {
		t.Fatalf("got %q, want %q", s, `[1,"a",true,null]`)
	}

	decoded, err := decode.Fn([]values.Value{values.String{Value: "[1,2,3]"}})
	if err != nil {
		t.Fatal(err)
	}
	decodedList := decoded.(*values.List)
	if len(decodedList.Items) != 3 {
		t.Fatalf("got %d items, want 3", len(decodedList.Items))
	}
	mustInt(t, decodedList.Items[0], 1)
	mustInt(t, decodedList.Items[1], 2)
	mustInt(t, decodedList.Items[2], 3)
}

func TestJSONDecodeObjectBecomesPairList(t *testing.T) {
	decoded, err := JSONDecode(`{"k":1}`)
	if err != nil {
		t.Fatal(err)
	}
	list := decoded.(*values.List)
	if len(list.Items) != 1 {
		t.Fatalf("got %d pairs, want 1", len(list.Items))
	}
	pair := list.Items[0].(*values.List)
	if s := pair.Items[0].(values.String).Value; s != "k" {
		t.Fatalf("got key %q, want k", s)
	}
	mustInt(t, pair.Items[1], 1)
}

func TestJSONEncodeRejectsFunc(t *testing.T) {
	if _, err := JSONEncode(&values.Builtin{Name: "x", Fn: nil}); err == nil {
		t.Fatal("expected error")
	}
}

func TestJSONDecodeInvalidIsError(t *testing.T) {
	if _, err := JSONDecode("not json"); err == nil {
		t.Fatal("expected error")
	}
}
