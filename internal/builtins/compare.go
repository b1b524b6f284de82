package builtins

import "github.com/anish1234567/jiaobenscript/internal/values"

// Compare implements `< <= > >=`: both operands promote to Float: a
// non-numeric operand is an error. String and list ordering are
// intentionally unspecified, per spec.md §4.5.
func Compare(op string, a, b values.Value) (values.Value, error) {
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if !aok || !bok {
		return nil, typeErr(op, a, b)
	}
	var result bool
	switch op {
	case "<":
		result = af < bf
	case "<=":
		result = af <= bf
	case ">":
		result = af > bf
	case ">=":
		result = af >= bf
	default:
		return nil, errf("unknown comparison operator %q", op)
	}
	return values.Bool{Value: result}, nil
}

// Index implements read-subscript `base[index]`.
func Index(base, index values.Value) (values.Value, error) {
	list, ok := base.(*values.List)
	if !ok {
		return nil, errf("cannot subscript %s", base.Kind())
	}
	i, ok := index.(values.Int)
	if !ok {
		return nil, errf("list index must be Int, got %s", index.Kind())
	}
	if i.Value < 0 || i.Value >= int64(len(list.Items)) {
		return nil, errf("index %d out of range (length %d)", i.Value, len(list.Items))
	}
	return list.Items[i.Value], nil
}

// SetIndex implements write-subscript `base[index] = value`.
func SetIndex(base, index, value values.Value) error {
	list, ok := base.(*values.List)
	if !ok {
		return errf("cannot subscript %s", base.Kind())
	}
	i, ok := index.(values.Int)
	if !ok {
		return errf("list index must be Int, got %s", index.Kind())
	}
	if i.Value < 0 || i.Value >= int64(len(list.Items)) {
		return errf("index %d out of range (length %d)", i.Value, len(list.Items))
	}
	list.Items[i.Value] = value
	return nil
}
