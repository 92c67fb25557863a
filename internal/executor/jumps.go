package executor

import (
	"strconv"

	"github.com/macosten/swiftbasic-core/internal/diag"
	"github.com/macosten/swiftbasic-core/internal/token"
	"github.com/macosten/swiftbasic-core/internal/value"
)

// jump implements parseJump (4.8): an identifier target resolves through
// LabelTable.Ident, anything else is parsed as an Int-valued expression and
// resolves through LabelTable.Int. In both cases PC is set to target-1 so
// that the run loop's own pc++ lands exactly on the target line.
func (e *Executor) jump() error {
	if e.current().Kind == token.IDENT {
		name := e.current().Text
		if _, err := e.advance(); err != nil {
			return err
		}
		line, ok := e.labels.Ident(name)
		if !ok {
			return e.unknownLabel(name)
		}
		e.traceJump(name, line)
		e.pc = line - 1
		return nil
	}
	target, err := e.parseExpression()
	if err != nil {
		return err
	}
	n, ok := target.(value.Int)
	if !ok {
		return e.badIndex("jump target must be an integer")
	}
	line, ok := e.labels.Int(n.V)
	if !ok {
		return e.unknownLabel(n.String())
	}
	e.traceJump(n.String(), line)
	e.pc = line - 1
	return nil
}

// traceJump reports a GOTO/GOSUB target resolution to the executor's Logger.
func (e *Executor) traceJump(label string, targetLine int) {
	e.logger.Trace(diag.TraceEvent{
		Line:   e.pc,
		PC:     e.pc,
		Kind:   "jump",
		Detail: "-> " + label + " (line " + strconv.Itoa(targetLine) + ")",
	})
}
