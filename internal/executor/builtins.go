package executor

import (
	"math"
	"math/rand"

	"github.com/macosten/swiftbasic-core/internal/token"
	"github.com/macosten/swiftbasic-core/internal/value"
)

// parseUnaryMathBuiltin implements sin/cos/tan/sec/csc/cot/asin/acos/atan,
// each of which takes one numeric argument and returns a Float.
func (e *Executor) parseUnaryMathBuiltin(kind token.Kind) (value.Value, error) {
	name := kind.String()
	if _, err := e.advance(); err != nil {
		return nil, err
	}
	if _, err := e.expect(token.LPAREN); err != nil {
		return nil, err
	}
	argVal, err := e.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := e.expect(token.RPAREN); err != nil {
		return nil, err
	}
	arg, ok := value.ToFloat(argVal)
	if !ok {
		return nil, e.badFunctionArgument(name, "argument must be numeric")
	}
	switch kind {
	case token.SIN:
		return value.Float{V: math.Sin(arg)}, nil
	case token.COS:
		return value.Float{V: math.Cos(arg)}, nil
	case token.TAN:
		return value.Float{V: math.Tan(arg)}, nil
	case token.SEC:
		return value.Float{V: 1 / math.Cos(arg)}, nil
	case token.CSC:
		return value.Float{V: 1 / math.Sin(arg)}, nil
	case token.COT:
		return value.Float{V: 1 / math.Tan(arg)}, nil
	case token.ASIN:
		return value.Float{V: math.Asin(arg)}, nil
	case token.ACOS:
		return value.Float{V: math.Acos(arg)}, nil
	case token.ATAN:
		return value.Float{V: math.Atan(arg)}, nil
	}
	return nil, e.badFunctionArgument(name, "unreachable")
}

// parseRandBuiltin implements rand(lo, hi): both Int, lo<hi, returns a
// uniformly sampled Int in [lo,hi] inclusive.
func (e *Executor) parseRandBuiltin() (value.Value, error) {
	if _, err := e.advance(); err != nil {
		return nil, err
	}
	if _, err := e.expect(token.LPAREN); err != nil {
		return nil, err
	}
	loVal, err := e.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := e.expect(token.COMMA); err != nil {
		return nil, err
	}
	hiVal, err := e.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := e.expect(token.RPAREN); err != nil {
		return nil, err
	}
	lo, ok := loVal.(value.Int)
	if !ok {
		return nil, e.badFunctionArgument("rand", "lo must be an integer")
	}
	hi, ok := hiVal.(value.Int)
	if !ok {
		return nil, e.badFunctionArgument("rand", "hi must be an integer")
	}
	if lo.V >= hi.V {
		return nil, e.badFunctionArgument("rand", "lo must be less than hi")
	}
	span := hi.V - lo.V + 1
	return value.Int{V: lo.V + rand.Int63n(span)}, nil
}

// parseLenBuiltin implements len(s): Str required, returns the grapheme
// count.
func (e *Executor) parseLenBuiltin() (value.Value, error) {
	if _, err := e.advance(); err != nil {
		return nil, err
	}
	if _, err := e.expect(token.LPAREN); err != nil {
		return nil, err
	}
	argVal, err := e.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := e.expect(token.RPAREN); err != nil {
		return nil, err
	}
	s, ok := argVal.(value.Str)
	if !ok {
		return nil, e.badFunctionArgument("len", "argument must be a string")
	}
	return value.Int{V: int64(value.GraphemeLen(s.V))}, nil
}

// parseCountBuiltin implements count(d): Dict required, returns its entry
// count.
func (e *Executor) parseCountBuiltin() (value.Value, error) {
	if _, err := e.advance(); err != nil {
		return nil, err
	}
	if _, err := e.expect(token.LPAREN); err != nil {
		return nil, err
	}
	argVal, err := e.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := e.expect(token.RPAREN); err != nil {
		return nil, err
	}
	d, ok := argVal.(*value.Dict)
	if !ok {
		return nil, e.badFunctionArgument("count", "argument must be a dict")
	}
	return value.Int{V: int64(d.Len())}, nil
}
