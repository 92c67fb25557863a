package value

import (
	"math"
	"strings"
)

// Add implements "+": Int+Int (overflow-checked), Float+Float, mixed
// Int/Float promotion, and the string-concatenation fallback whenever
// either operand is a Str.
func Add(a, b Value) (Value, error) {
	if as, ok := a.(Str); ok {
		return Str{V: as.V + b.String()}, nil
	}
	if bs, ok := b.(Str); ok {
		return Str{V: a.String() + bs.V}, nil
	}
	if ai, ok := a.(Int); ok {
		if bi, ok := b.(Int); ok {
			sum := ai.V + bi.V
			if (sum > ai.V) != (bi.V > 0) {
				return nil, &OverflowError{Op: "+"}
			}
			return Int{V: sum}, nil
		}
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return Float{V: af + bf}, nil
	}
	return nil, opError("+", "cannot add operands", a, b)
}

// Sub implements "-" with the same Int/Float coercion table as Add (no
// string fallback: subtraction is not defined on Str).
func Sub(a, b Value) (Value, error) {
	if ai, ok := a.(Int); ok {
		if bi, ok := b.(Int); ok {
			diff := ai.V - bi.V
			if (diff < ai.V) != (bi.V > 0) {
				return nil, &OverflowError{Op: "-"}
			}
			return Int{V: diff}, nil
		}
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return Float{V: af - bf}, nil
	}
	return nil, opError("-", "cannot subtract operands", a, b)
}

// Mul implements "*": Int*Int (overflow-checked), Float*Float, mixed
// promotion, and Str × non-negative Int repetition (in either order).
func Mul(a, b Value) (Value, error) {
	if s, n, ok := strAndInt(a, b); ok {
		if n.V < 0 {
			return nil, opError("*", "negative repeat count", a, b)
		}
		return Str{V: strings.Repeat(s.V, int(n.V))}, nil
	}
	if ai, ok := a.(Int); ok {
		if bi, ok := b.(Int); ok {
			if ai.V != 0 && bi.V != 0 {
				if (ai.V == -1 && bi.V == math.MinInt64) || (bi.V == -1 && ai.V == math.MinInt64) {
					return nil, &OverflowError{Op: "*"}
				}
				prod := ai.V * bi.V
				if prod/ai.V != bi.V {
					return nil, &OverflowError{Op: "*"}
				}
				return Int{V: prod}, nil
			}
			return Int{V: 0}, nil
		}
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return Float{V: af * bf}, nil
	}
	return nil, opError("*", "cannot multiply operands", a, b)
}

func strAndInt(a, b Value) (Str, Int, bool) {
	if s, ok := a.(Str); ok {
		if n, ok := b.(Int); ok {
			return s, n, true
		}
	}
	if s, ok := b.(Str); ok {
		if n, ok := a.(Int); ok {
			return s, n, true
		}
	}
	return Str{}, Int{}, false
}

// Div implements "/": Int/Int (overflow-checked, zero-divisor-checked),
// Float/Float, and mixed promotion.
func Div(a, b Value) (Value, error) {
	if ai, ok := a.(Int); ok {
		if bi, ok := b.(Int); ok {
			if bi.V == 0 {
				return nil, &DivideByZeroError{Op: "/"}
			}
			if ai.V == math.MinInt64 && bi.V == -1 {
				return nil, &OverflowError{Op: "/"}
			}
			return Int{V: ai.V / bi.V}, nil
		}
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return Float{V: af / bf}, nil
	}
	return nil, opError("/", "cannot divide operands", a, b)
}

// Mod implements "%" with the same coercion table as Div.
func Mod(a, b Value) (Value, error) {
	if ai, ok := a.(Int); ok {
		if bi, ok := b.(Int); ok {
			if bi.V == 0 {
				return nil, &DivideByZeroError{Op: "%"}
			}
			return Int{V: ai.V % bi.V}, nil
		}
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return Float{V: math.Mod(af, bf)}, nil
	}
	return nil, opError("%", "cannot mod operands", a, b)
}

// Pow implements "**": always Float, for any numeric combination.
func Pow(a, b Value) (Value, error) {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return nil, opError("**", "cannot exponentiate operands", a, b)
	}
	return Float{V: math.Pow(af, bf)}, nil
}

// BitAnd, BitOr, BitXor, Shl, Shr implement the bitwise operators, which
// require both operands to be Int; Shr is arithmetic (sign-extending).
func BitAnd(a, b Value) (Value, error) { return bitwise("&", a, b, func(x, y int64) int64 { return x & y }) }
func BitOr(a, b Value) (Value, error)  { return bitwise("|", a, b, func(x, y int64) int64 { return x | y }) }
func BitXor(a, b Value) (Value, error) { return bitwise("^", a, b, func(x, y int64) int64 { return x ^ y }) }
func Shl(a, b Value) (Value, error) {
	return bitwise("<<", a, b, func(x, y int64) int64 { return x << uint64(y) })
}
func Shr(a, b Value) (Value, error) {
	return bitwise(">>", a, b, func(x, y int64) int64 { return x >> uint64(y) })
}

func bitwise(op string, a, b Value, f func(x, y int64) int64) (Value, error) {
	ai, aok := a.(Int)
	bi, bok := b.(Int)
	if !aok || !bok {
		return nil, opError(op, "bitwise operators require integer operands", a, b)
	}
	return Int{V: f(ai.V, bi.V)}, nil
}

// ToFloat widens an Int or Float Value to a float64; any other kind fails
// the conversion. Used by the executor's unary built-in math functions.
func ToFloat(v Value) (float64, bool) { return toFloat(v) }

// toFloat widens Int or Float to a float64; any other kind fails the
// conversion.
func toFloat(v Value) (float64, bool) {
	switch t := v.(type) {
	case Int:
		return float64(t.V), true
	case Float:
		return t.V, true
	}
	return 0, false
}
