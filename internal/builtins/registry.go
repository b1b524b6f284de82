package builtins

import (
	"fmt"
	"io"

	"github.com/anish1234567/jiaobenscript/internal/values"
)

// Table is an ordered name->value list, the shape
// set_default_builtin_table (spec.md §4.5) installs into the resolver
// and evaluator: order here becomes slot order in the synthetic
// builtins scope, so it must be stable across a process.
type Table []NamedValue

type NamedValue struct {
	Name  string
	Value values.Value
}

// Names returns just the name column, in order -- what the resolver
// needs to build its builtins scope.
func (t Table) Names() []string {
	out := make([]string, len(t))
	for i, nv := range t {
		out[i] = nv.Name
	}
	return out
}

// Values returns just the value column, in the same order as Names, for
// seeding the builtins frame's slots.
func (t Table) Values() []values.Value {
	out := make([]values.Value, len(t))
	for i, nv := range t {
		out[i] = nv.Value
	}
	return out
}

func fn(name string, f func([]values.Value) (values.Value, error)) NamedValue {
	return NamedValue{Name: name, Value: &values.Builtin{Name: name, Fn: f}}
}

func arity(args []values.Value, n int, name string) error {
	if len(args) != n {
		return errf("%s expects %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

// Default builds spec.md §4.5's set_default_builtin_table: `print`,
// `list_size`, `list_append`, plus SPEC_FULL's json/string/list
// supplements. out is where `print` writes (os.Stdout in the CLI,
// anything else in tests).
func Default(out io.Writer) Table {
	return Table{
		fn("print", func(args []values.Value) (values.Value, error) {
			parts := make([]any, len(args))
			for i, a := range args {
				parts[i] = reprForPrint(a)
			}
			fmt.Fprintln(out, parts...)
			return values.Null{}, nil
		}),
		fn("list_size", func(args []values.Value) (values.Value, error) {
			if err := arity(args, 1, "list_size"); err != nil {
				return nil, err
			}
			list, ok := args[0].(*values.List)
			if !ok {
				return nil, errf("list_size expects a List, got %s", args[0].Kind())
			}
			return values.Int{Value: int64(len(list.Items))}, nil
		}),
		fn("list_append", func(args []values.Value) (values.Value, error) {
			if err := arity(args, 2, "list_append"); err != nil {
				return nil, err
			}
			list, ok := args[0].(*values.List)
			if !ok {
				return nil, errf("list_append expects a List, got %s", args[0].Kind())
			}
			list.Items = append(list.Items, args[1])
			return values.Null{}, nil
		}),
		fn("list_pop", func(args []values.Value) (values.Value, error) {
			if err := arity(args, 1, "list_pop"); err != nil {
				return nil, err
			}
			list, ok := args[0].(*values.List)
			if !ok {
				return nil, errf("list_pop expects a List, got %s", args[0].Kind())
			}
			if len(list.Items) == 0 {
				return nil, errf("list_pop: list is empty")
			}
			last := list.Items[len(list.Items)-1]
			list.Items = list.Items[:len(list.Items)-1]
			return last, nil
		}),
		fn("list_slice", func(args []values.Value) (values.Value, error) {
			if err := arity(args, 3, "list_slice"); err != nil {
				return nil, err
			}
			list, ok := args[0].(*values.List)
			if !ok {
				return nil, errf("list_slice expects a List, got %s", args[0].Kind())
			}
			start, end, err := sliceBounds("list_slice", len(list.Items), args[1], args[2])
			if err != nil {
				return nil, err
			}
			out := make([]values.Value, end-start)
			copy(out, list.Items[start:end])
			return values.NewList(out), nil
		}),
		fn("str_len", func(args []values.Value) (values.Value, error) {
			if err := arity(args, 1, "str_len"); err != nil {
				return nil, err
			}
			s, ok := args[0].(values.String)
			if !ok {
				return nil, errf("str_len expects a String, got %s", args[0].Kind())
			}
			return values.Int{Value: int64(len([]rune(s.Value)))}, nil
		}),
		fn("str_upper", stringMap("str_upper", toUpper)),
		fn("str_lower", stringMap("str_lower", toLower)),
		fn("str_slice", func(args []values.Value) (values.Value, error) {
			if err := arity(args, 3, "str_slice"); err != nil {
				return nil, err
			}
			s, ok := args[0].(values.String)
			if !ok {
				return nil, errf("str_slice expects a String, got %s", args[0].Kind())
			}
			runes := []rune(s.Value)
			start, end, err := sliceBounds("str_slice", len(runes), args[1], args[2])
			if err != nil {
				return nil, err
			}
			return values.String{Value: string(runes[start:end])}, nil
		}),
		fn("json_encode", func(args []values.Value) (values.Value, error) {
			if err := arity(args, 1, "json_encode"); err != nil {
				return nil, err
			}
			return JSONEncode(args[0])
		}),
		fn("json_decode", func(args []values.Value) (values.Value, error) {
			if err := arity(args, 1, "json_decode"); err != nil {
				return nil, err
			}
			s, ok := args[0].(values.String)
			if !ok {
				return nil, errf("json_decode expects a String, got %s", args[0].Kind())
			}
			return JSONDecode(s.Value)
		}),
	}
}

func reprForPrint(v values.Value) string {
	if s, ok := v.(values.String); ok {
		return s.Value
	}
	return v.Repr()
}

func sliceBounds(name string, length int, startV, endV values.Value) (int, int, error) {
	startI, ok := startV.(values.Int)
	if !ok {
		return 0, 0, errf("%s: start must be Int, got %s", name, startV.Kind())
	}
	endI, ok := endV.(values.Int)
	if !ok {
		return 0, 0, errf("%s: end must be Int, got %s", name, endV.Kind())
	}
	start, end := int(startI.Value), int(endI.Value)
	if start < 0 || end > length || start > end {
		return 0, 0, errf("%s: invalid range [%d:%d) for length %d", name, start, end, length)
	}
	return start, end, nil
}
