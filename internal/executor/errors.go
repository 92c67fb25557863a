package executor

import (
	"github.com/macosten/swiftbasic-core/internal/basicerr"
	"github.com/macosten/swiftbasic-core/internal/token"
)

// at wraps a freshly built *basicerr.Error with the executor's current
// position, so every call site below only has to describe the failure,
// not where it happened.
func (e *Executor) at(be *basicerr.Error) *basicerr.Error {
	return be.WithPosition(e.pc, e.tokenCursor, e.sourceLineText()).WithColumn(e.current().Pos.Column)
}

func (e *Executor) programEndedManually() error {
	return e.at(basicerr.New(basicerr.ProgramEndedManually, "program ended manually"))
}

func (e *Executor) unexpectedToken(want token.Kind, got token.Token) error {
	return e.at(basicerr.New(basicerr.UnexpectedToken, "expected %s, got %s %q", want, got.Kind, got.Text))
}

func (e *Executor) expectedRelation(got token.Token) error {
	return e.at(basicerr.New(basicerr.UnexpectedToken, "expected a relation operator, got %s %q", got.Kind, got.Text))
}

func (e *Executor) badStatement(reason string) error {
	return e.at(basicerr.New(basicerr.BadStatement, "%s", reason))
}

func (e *Executor) badFactor(reason string) error {
	return e.at(basicerr.New(basicerr.BadFactor, "%s", reason))
}

func (e *Executor) delegateNotSet() error {
	return e.at(basicerr.New(basicerr.DelegateNotSet, "delegate not set"))
}

func (e *Executor) uninitializedSymbol(name string) error {
	return e.at(basicerr.New(basicerr.UninitializedSymbol, "%q is not defined", name))
}

func (e *Executor) unknownLabel(label string) error {
	return e.at(basicerr.New(basicerr.UnknownLabel, "no such label %q", label))
}

func (e *Executor) badMath(op string, err error) error {
	return e.at(basicerr.New(basicerr.BadMath, "%s: %v", op, err))
}

func (e *Executor) badComparison(what string, err error) error {
	return e.at(basicerr.New(basicerr.BadComparison, "%s: %v", what, err))
}

func (e *Executor) integerOverflow(op string) error {
	return e.at(basicerr.New(basicerr.IntegerOverflow, "%s overflowed", op))
}

func (e *Executor) cannotSubscript(name string) error {
	return e.at(basicerr.New(basicerr.CannotSubscript, "%q cannot be subscripted", name))
}

func (e *Executor) badSubscript(reason string) error {
	return e.at(basicerr.New(basicerr.BadSubscript, "%s", reason))
}

func (e *Executor) badFunctionArgument(name, reason string) error {
	return e.at(basicerr.New(basicerr.BadFunctionArgument, "%s: %s", name, reason))
}

func (e *Executor) cannotReturn() error {
	return e.at(basicerr.New(basicerr.CannotReturn, "RETURN with no matching GOSUB"))
}

func (e *Executor) cannotIterate() error {
	return e.at(basicerr.New(basicerr.CannotIterate, "NEXT with no matching FOR"))
}

func (e *Executor) badIndex(reason string) error {
	return e.at(basicerr.New(basicerr.BadIndex, "%s", reason))
}

func (e *Executor) badRangeBound(reason string) error {
	return e.at(basicerr.New(basicerr.BadRangeBound, "%s", reason))
}

func (e *Executor) unknownSymbolError(reason string) error {
	return e.at(basicerr.New(basicerr.UnknownSymbolError, "%s", reason))
}
