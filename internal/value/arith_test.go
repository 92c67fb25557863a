package value

import (
	"math"
	"testing"
)

func TestAddIntOverflow(t *testing.T) {
	_, err := Add(Int{V: math.MaxInt64}, Int{V: 1})
	if _, ok := err.(*OverflowError); !ok {
		t.Fatalf("Add(MaxInt64, 1) error = %v, want *OverflowError", err)
	}
}

func TestAddMixedPromotesToFloat(t *testing.T) {
	v, err := Add(Int{V: 1}, Float{V: 2.5})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if f, ok := v.(Float); !ok || f.V != 3.5 {
		t.Errorf("Add(1, 2.5) = %v, want Float{3.5}", v)
	}
}

func TestAddStringConcatFallback(t *testing.T) {
	v, err := Add(Str{V: "a"}, Int{V: 1})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if s, ok := v.(Str); !ok || s.V != "a1" {
		t.Errorf("Add(\"a\", 1) = %v, want Str{\"a1\"}", v)
	}
	v, err = Add(Int{V: 1}, Str{V: "a"})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if s, ok := v.(Str); !ok || s.V != "1a" {
		t.Errorf("Add(1, \"a\") = %v, want Str{\"1a\"}", v)
	}
}

func TestSubOverflow(t *testing.T) {
	_, err := Sub(Int{V: math.MinInt64}, Int{V: 1})
	if _, ok := err.(*OverflowError); !ok {
		t.Fatalf("Sub(MinInt64, 1) error = %v, want *OverflowError", err)
	}
}

func TestMulStringRepetition(t *testing.T) {
	v, err := Mul(Str{V: "ab"}, Int{V: 3})
	if err != nil {
		t.Fatalf("Mul returned error: %v", err)
	}
	if s, ok := v.(Str); !ok || s.V != "ababab" {
		t.Errorf("Mul(\"ab\", 3) = %v, want Str{\"ababab\"}", v)
	}
	if _, err := Mul(Str{V: "ab"}, Int{V: -1}); err == nil {
		t.Error("Mul(\"ab\", -1) should have errored on negative repeat count")
	}
}

func TestMulIntOverflow(t *testing.T) {
	_, err := Mul(Int{V: math.MaxInt64}, Int{V: 2})
	if _, ok := err.(*OverflowError); !ok {
		t.Fatalf("Mul(MaxInt64, 2) error = %v, want *OverflowError", err)
	}
}

func TestMulMinInt64ByNegOne(t *testing.T) {
	// MinInt64 * -1 wraps back to MinInt64 in two's complement, and Go's
	// MinInt64 / -1 also evaluates to MinInt64 without panicking, so the
	// plain prod/ai.V != bi.V check alone would miss this overflow.
	_, err := Mul(Int{V: math.MinInt64}, Int{V: -1})
	if _, ok := err.(*OverflowError); !ok {
		t.Fatalf("Mul(MinInt64, -1) error = %v, want *OverflowError", err)
	}
	_, err = Mul(Int{V: -1}, Int{V: math.MinInt64})
	if _, ok := err.(*OverflowError); !ok {
		t.Fatalf("Mul(-1, MinInt64) error = %v, want *OverflowError", err)
	}
}

func TestDivByZero(t *testing.T) {
	_, err := Div(Int{V: 1}, Int{V: 0})
	if _, ok := err.(*DivideByZeroError); !ok {
		t.Fatalf("Div(1, 0) error = %v, want *DivideByZeroError", err)
	}
}

func TestDivMinInt64ByNegOne(t *testing.T) {
	_, err := Div(Int{V: math.MinInt64}, Int{V: -1})
	if _, ok := err.(*OverflowError); !ok {
		t.Fatalf("Div(MinInt64, -1) error = %v, want *OverflowError", err)
	}
}

func TestModByZero(t *testing.T) {
	_, err := Mod(Int{V: 1}, Int{V: 0})
	if _, ok := err.(*DivideByZeroError); !ok {
		t.Fatalf("Mod(1, 0) error = %v, want *DivideByZeroError", err)
	}
}

func TestPowAlwaysFloat(t *testing.T) {
	v, err := Pow(Int{V: 7}, Int{V: 3})
	if err != nil {
		t.Fatalf("Pow returned error: %v", err)
	}
	f, ok := v.(Float)
	if !ok {
		t.Fatalf("Pow(7, 3) = %T, want Float", v)
	}
	if f.V != 343 {
		t.Errorf("Pow(7, 3) = %v, want 343", f.V)
	}
	if f.String() != "343.0" {
		t.Errorf("Pow(7, 3).String() = %q, want %q", f.String(), "343.0")
	}
}

func TestBitwiseRequiresInt(t *testing.T) {
	if _, err := BitAnd(Float{V: 1}, Int{V: 1}); err == nil {
		t.Error("BitAnd(Float, Int) should have errored")
	}
	v, err := BitAnd(Int{V: 6}, Int{V: 3})
	if err != nil {
		t.Fatalf("BitAnd returned error: %v", err)
	}
	if i, ok := v.(Int); !ok || i.V != 2 {
		t.Errorf("BitAnd(6, 3) = %v, want Int{2}", v)
	}
}

func TestShlShr(t *testing.T) {
	v, err := Shl(Int{V: 1}, Int{V: 4})
	if err != nil {
		t.Fatalf("Shl returned error: %v", err)
	}
	if i, ok := v.(Int); !ok || i.V != 16 {
		t.Errorf("Shl(1, 4) = %v, want Int{16}", v)
	}
	v, err = Shr(Int{V: 16}, Int{V: 4})
	if err != nil {
		t.Fatalf("Shr returned error: %v", err)
	}
	if i, ok := v.(Int); !ok || i.V != 1 {
		t.Errorf("Shr(16, 4) = %v, want Int{1}", v)
	}
}

func TestToFloat(t *testing.T) {
	if f, ok := ToFloat(Int{V: 2}); !ok || f != 2 {
		t.Errorf("ToFloat(Int{2}) = (%v, %v), want (2, true)", f, ok)
	}
	if _, ok := ToFloat(Str{V: "x"}); ok {
		t.Error("ToFloat(Str) should fail")
	}
}
