package executor

import (
	"github.com/macosten/swiftbasic-core/internal/diag"
	"github.com/macosten/swiftbasic-core/internal/token"
	"github.com/macosten/swiftbasic-core/internal/value"
)

// assignment implements 4.6: a plain "name = expr" / "name OP= expr", or a
// subscripted "name[key] = expr" / "name[key] OP= expr".
func (e *Executor) assignment() error {
	nameTok := e.current()
	if nameTok.Kind != token.IDENT {
		return e.unexpectedToken(token.IDENT, nameTok)
	}
	if _, err := e.advance(); err != nil {
		return err
	}
	if e.current().Kind == token.LBRACKET {
		if _, err := e.advance(); err != nil {
			return err
		}
		key, err := e.parseExpression()
		if err != nil {
			return err
		}
		if _, err := e.expect(token.RBRACKET); err != nil {
			return err
		}
		return e.subscriptedAssignment(nameTok.Text, key)
	}
	return e.plainAssignment(nameTok.Text)
}

func (e *Executor) plainAssignment(name string) error {
	opTok := e.current()
	if !opTok.IsAssignment() {
		return e.unexpectedToken(token.ASSIGN, opTok)
	}
	if _, err := e.advance(); err != nil {
		return err
	}
	rhs, err := e.parseExpression()
	if err != nil {
		return err
	}
	if opTok.Kind == token.ASSIGN {
		e.symbols.Set(name, rhs)
		e.traceAssign(name, rhs)
		return e.consumeLineEnd()
	}
	old, ok := e.symbols.Get(name)
	if !ok {
		return e.uninitializedSymbol(name)
	}
	result, err := e.applyCompound(opTok.Kind, old, rhs)
	if err != nil {
		return err
	}
	e.symbols.Set(name, result)
	e.traceAssign(name, result)
	return e.consumeLineEnd()
}

func (e *Executor) subscriptedAssignment(name string, key value.Value) error {
	opTok := e.current()
	if !opTok.IsAssignment() {
		return e.unexpectedToken(token.ASSIGN, opTok)
	}
	if _, err := e.advance(); err != nil {
		return err
	}
	rhs, err := e.parseExpression()
	if err != nil {
		return err
	}

	old, exists := e.symbols.Get(name)
	if !exists {
		if opTok.Kind != token.ASSIGN {
			return e.uninitializedSymbol(name)
		}
		d := value.NewDict()
		d.Set(key, rhs)
		e.symbols.Set(name, d)
		return e.consumeLineEnd()
	}

	switch v := old.(type) {
	case *value.Dict:
		if opTok.Kind == token.ASSIGN {
			v.Set(key, rhs)
			return e.consumeLineEnd()
		}
		cur, ok := v.Get(key)
		if !ok {
			return e.uninitializedSymbol(name)
		}
		result, err := e.applyCompound(opTok.Kind, cur, rhs)
		if err != nil {
			return err
		}
		v.Set(key, result)
		return e.consumeLineEnd()
	case value.Str:
		return e.unknownSymbolError("string mutation through subscript is not supported")
	default:
		return e.cannotSubscript(name)
	}
}

// applyCompound applies the Value-level operator matching a compound
// assignment kind, translating any Value-level OpError into the
// executor's bad-math taxonomy entry.
func (e *Executor) applyCompound(kind token.Kind, old, rhs value.Value) (value.Value, error) {
	var result value.Value
	var err error
	var op string
	switch kind {
	case token.PLUS_ASSIGN:
		op = "+="
		result, err = value.Add(old, rhs)
	case token.MINUS_ASSIGN:
		op = "-="
		result, err = value.Sub(old, rhs)
	case token.STAR_ASSIGN:
		op = "*="
		result, err = value.Mul(old, rhs)
	case token.SLASH_ASSIGN:
		op = "/="
		result, err = value.Div(old, rhs)
	case token.PERCENT_ASSIGN:
		op = "%="
		result, err = value.Mod(old, rhs)
	default:
		return nil, e.badStatement("not a compound assignment operator")
	}
	if err != nil {
		if _, ok := err.(*value.OverflowError); ok {
			return nil, e.integerOverflow(op)
		}
		return nil, e.badMath(op, err)
	}
	return result, nil
}

// traceAssign reports a variable assignment to the executor's Logger.
func (e *Executor) traceAssign(name string, v value.Value) {
	e.logger.Trace(diag.TraceEvent{
		Line:   e.pc,
		PC:     e.pc,
		Kind:   "assign",
		Detail: name + " = " + v.String(),
	})
}
