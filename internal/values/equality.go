package values

// Equal implements the equality rules of spec.md §3. It never errors:
// any two values can be compared, with unrelated kinds simply unequal.
func Equal(a, b Value) bool {
	if an, aok := numeric(a); aok {
		if bn, bok := numeric(b); bok {
			return an == bn
		}
		return false
	}

	switch av := a.(type) {
	case Bool:
		bv, ok := b.(Bool)
		return ok && av.Value == bv.Value
	case String:
		bv, ok := b.(String)
		return ok && av.Value == bv.Value
	case Null:
		_, ok := b.(Null)
		return ok
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	case *Func:
		bv, ok := b.(*Func)
		return ok && av == bv
	case *Builtin:
		bv, ok := b.(*Builtin)
		return ok && av == bv
	default:
		return false
	}
}

// numeric reports v's value as a float64 if v is an Int or Float.
func numeric(v Value) (float64, bool) {
	switch n := v.(type) {
	case Int:
		return float64(n.Value), true
	case Float:
		return n.Value, true
	default:
		return 0, false
	}
}
