package value

// Equal implements "==": Int/Float use numeric coercion (mixed numeric
// types compare by value); Str==Str compares string contents; Dict==Dict
// is deep equality; any other combination of differing variants is simply
// unequal, never an error.
func Equal(a, b Value) bool {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			return af == bf
		}
		return false
	}
	if as, ok := a.(Str); ok {
		if bs, ok := b.(Str); ok {
			return as.V == bs.V
		}
		return false
	}
	if ad, ok := a.(*Dict); ok {
		if bd, ok := b.(*Dict); ok {
			return ad.Equal(bd)
		}
		return false
	}
	return false
}

// Less implements "<": numeric coercion for Int/Float; fails (ordering is
// undefined) for any other combination, including Str and Dict.
func Less(a, b Value) (bool, error) {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af < bf, nil
	}
	return false, opError("<", "ordering requires numeric operands", a, b)
}

// Greater implements ">", symmetric to Less.
func Greater(a, b Value) (bool, error) {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af > bf, nil
	}
	return false, opError(">", "ordering requires numeric operands", a, b)
}

// LessEqual is defined as "< or ==", never evaluated independently, so that
// it agrees with Less/Equal by construction.
func LessEqual(a, b Value) (bool, error) {
	if Equal(a, b) {
		return true, nil
	}
	return Less(a, b)
}

// GreaterEqual is defined as "> or ==", symmetric to LessEqual.
func GreaterEqual(a, b Value) (bool, error) {
	if Equal(a, b) {
		return true, nil
	}
	return Greater(a, b)
}
