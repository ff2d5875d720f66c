package cpu

import (
	"errors"

	"github.com/steve-caiula/simpletron-vm/translate"
)

var f = translate.From

var (
	// Machine faults
	ErrOverflow        = errors.New(f("accumulator overflow"))
	ErrDivideByZero    = errors.New(f("attempt to divide by zero"))
	ErrRemainderByZero = errors.New(f("attempt to take remainder by zero"))
	ErrOpcodeUnknown   = errors.New(f("opcode unknown"))
	ErrProgramBounds   = errors.New(f("ip beyond end of memory"))
	ErrAddressInvalid  = errors.New(f("address invalid"))
	ErrChannelInvalid  = errors.New(f("channel invalid"))
	ErrHalted          = errors.New(f("halted"))

	// Memory and loader errors
	ErrWordRange       = errors.New(f("word out of range"))
	ErrProgramTooLarge = errors.New(f("program too large for memory"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelInvalid       = errors.New(f("label invalid"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrOperandRange       = errors.New(f("operand out of range"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrOpcode identifies the instruction that faulted.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v (%v)", Word(eo).String(), Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
