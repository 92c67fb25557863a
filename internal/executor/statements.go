package executor

import (
	"github.com/macosten/swiftbasic-core/internal/stack"
	"github.com/macosten/swiftbasic-core/internal/value"

	"github.com/macosten/swiftbasic-core/internal/token"
)

// parseLine consumes the current line's leading label (a pure jump target,
// already indexed by scanLabels) if present, then dispatches the line's
// statement.
func (e *Executor) parseLine() error {
	if e.current().IsLabel {
		if _, err := e.advance(); err != nil {
			return err
		}
	}
	return e.parseStatement()
}

// parseStatement dispatches on the current token's kind and executes
// exactly one statement, including its trailing NEWLINE.
func (e *Executor) parseStatement() error {
	switch e.current().Kind {
	case token.LET:
		if _, err := e.advance(); err != nil {
			return err
		}
		return e.assignment()
	case token.IDENT:
		return e.assignment()
	case token.PRINT:
		return e.doPrint()
	case token.IF:
		return e.doIf()
	case token.INPUT:
		return e.doInput()
	case token.GOTO:
		if _, err := e.advance(); err != nil {
			return err
		}
		// jump() may move pc to an arbitrary other line; the run loop
		// resets the token cursor on its next iteration regardless, so
		// there is nothing left on *this* line worth consuming.
		return e.jump()
	case token.GOSUB:
		e.gosub.Push(e.pc)
		if _, err := e.advance(); err != nil {
			return err
		}
		return e.jump()
	case token.RETURN:
		if _, err := e.advance(); err != nil {
			return err
		}
		pc, ok := e.gosub.Pop()
		if !ok {
			return e.cannotReturn()
		}
		// As with GOTO/GOSUB, pc now points at an arbitrary other line;
		// consuming this line's NEWLINE against the new pc would read
		// the wrong line's tokens, so there is nothing left to do here.
		e.pc = pc
		return nil
	case token.FOR:
		return e.doFor()
	case token.NEXT:
		return e.doNext()
	case token.CLEAR:
		if _, err := e.advance(); err != nil {
			return err
		}
		if e.delegate == nil {
			return e.delegateNotSet()
		}
		e.delegate.HandleClear()
		return e.consumeLineEnd()
	case token.LIST:
		if _, err := e.advance(); err != nil {
			return err
		}
		if e.delegate == nil {
			return e.delegateNotSet()
		}
		e.delegate.HandleList(e.listEntries())
		return e.consumeLineEnd()
	case token.REM:
		return e.skipLine()
	case token.NEWLINE:
		_, err := e.advance()
		return err
	case token.END:
		if _, err := e.advance(); err != nil {
			return err
		}
		e.pc = len(e.lines)
		e.setRunning(false)
		return nil
	default:
		return e.badStatement("unrecognized statement")
	}
}

// consumeLineEnd requires and consumes the NEWLINE token that ends every
// statement.
func (e *Executor) consumeLineEnd() error {
	_, err := e.expect(token.NEWLINE)
	return err
}

// skipLine consumes every remaining token on the line, including its
// NEWLINE (used by REM and by IF's false branch).
func (e *Executor) skipLine() error {
	for {
		t, err := e.advance()
		if err != nil {
			return err
		}
		if t.Kind == token.NEWLINE {
			return nil
		}
	}
}

func (e *Executor) listEntries() []ListEntry {
	entries := e.symbols.List()
	out := make([]ListEntry, len(entries))
	for i, entry := range entries {
		out[i] = ListEntry{Name: entry.Name, Display: entry.Value.String()}
	}
	return out
}

// doPrint implements PRINT: an expression list, each element's display
// string concatenated with no implicit separator, handed to the delegate
// as a single line.
func (e *Executor) doPrint() error {
	if _, err := e.advance(); err != nil {
		return err
	}
	var out string
	for {
		v, err := e.parseExpression()
		if err != nil {
			return err
		}
		out += v.String()
		if e.current().Kind != token.COMMA {
			break
		}
		if _, err := e.advance(); err != nil {
			return err
		}
	}
	if e.delegate == nil {
		return e.delegateNotSet()
	}
	e.delegate.HandlePrint(out + "\n")
	return e.consumeLineEnd()
}

// doIf implements IF lhs REL rhs THEN stmt.
func (e *Executor) doIf() error {
	if _, err := e.advance(); err != nil {
		return err
	}
	lhs, err := e.parseExpression()
	if err != nil {
		return err
	}
	relTok := e.current()
	if !relTok.IsRelation() {
		return e.expectedRelation(relTok)
	}
	if _, err := e.advance(); err != nil {
		return err
	}
	rhs, err := e.parseExpression()
	if err != nil {
		return err
	}
	result, err := e.evalRelation(relTok.Kind, lhs, rhs)
	if err != nil {
		return err
	}
	if !result {
		return e.skipLine()
	}
	if _, err := e.expect(token.THEN); err != nil {
		return err
	}
	return e.parseStatement()
}

func (e *Executor) evalRelation(op token.Kind, lhs, rhs value.Value) (bool, error) {
	switch op {
	case token.EQ:
		return value.Equal(lhs, rhs), nil
	case token.NEQ:
		return !value.Equal(lhs, rhs), nil
	case token.LT:
		r, err := value.Less(lhs, rhs)
		if err != nil {
			return false, e.badComparison("<", err)
		}
		return r, nil
	case token.GT:
		r, err := value.Greater(lhs, rhs)
		if err != nil {
			return false, e.badComparison(">", err)
		}
		return r, nil
	case token.LE:
		r, err := value.LessEqual(lhs, rhs)
		if err != nil {
			return false, e.badComparison("<=", err)
		}
		return r, nil
	case token.GE:
		r, err := value.GreaterEqual(lhs, rhs)
		if err != nil {
			return false, e.badComparison(">=", err)
		}
		return r, nil
	}
	return false, e.badStatement("not a relation operator")
}

// doInput implements INPUT name[, name...].
func (e *Executor) doInput() error {
	if _, err := e.advance(); err != nil {
		return err
	}
	if e.delegate == nil {
		return e.delegateNotSet()
	}
	for {
		nameTok := e.current()
		if nameTok.Kind != token.IDENT {
			return e.unexpectedToken(token.IDENT, nameTok)
		}
		if _, err := e.advance(); err != nil {
			return err
		}
		raw := e.delegate.HandleInput()
		e.symbols.Set(nameTok.Text, value.NewFromUserInput(raw))
		if e.current().Kind != token.COMMA {
			break
		}
		if _, err := e.advance(); err != nil {
			return err
		}
	}
	return e.consumeLineEnd()
}

// doFor implements FOR name IN lower TO upper.
func (e *Executor) doFor() error {
	startLine := e.pc
	if _, err := e.advance(); err != nil {
		return err
	}
	nameTok := e.current()
	if nameTok.Kind != token.IDENT {
		return e.unexpectedToken(token.IDENT, nameTok)
	}
	if _, err := e.advance(); err != nil {
		return err
	}
	if _, err := e.expect(token.IN); err != nil {
		return err
	}
	lowerVal, err := e.parseExpression()
	if err != nil {
		return err
	}
	lower, ok := lowerVal.(value.Int)
	if !ok {
		return e.badRangeBound("FOR lower bound must be an integer")
	}
	if _, err := e.expect(token.TO); err != nil {
		return err
	}
	upperVal, err := e.parseExpression()
	if err != nil {
		return err
	}
	upper, ok := upperVal.(value.Int)
	if !ok {
		return e.badRangeBound("FOR upper bound must be an integer")
	}
	if lower.V >= upper.V {
		return e.badRangeBound("FOR lower bound must be less than upper bound")
	}
	if err := e.consumeLineEnd(); err != nil {
		return err
	}
	e.symbols.Set(nameTok.Text, lower)
	e.forStack.Push(stack.LoopFrame{
		IndexName: nameTok.Text,
		Lower:     lower.V,
		Upper:     upper.V,
		StartLine: startLine,
	})
	return nil
}

// doNext implements NEXT: increment the innermost loop's index, and either
// jump back to the loop body or pop the frame.
func (e *Executor) doNext() error {
	if _, err := e.advance(); err != nil {
		return err
	}
	if err := e.consumeLineEnd(); err != nil {
		return err
	}
	frame, ok := e.forStack.Peek()
	if !ok {
		return e.cannotIterate()
	}
	idxVal, ok := e.symbols.Get(frame.IndexName)
	if !ok {
		return e.badIndex("loop index is no longer defined")
	}
	idx, ok := idxVal.(value.Int)
	if !ok {
		return e.badIndex("loop index is no longer an integer")
	}
	next := idx.V + 1
	e.symbols.Set(frame.IndexName, value.Int{V: next})
	if next >= frame.Lower && next < frame.Upper {
		// Landing back on StartLine lets the run loop's own pc++ carry
		// execution to StartLine+1, the first line of the loop body.
		e.pc = frame.StartLine
		return nil
	}
	e.forStack.Pop()
	return nil
}
