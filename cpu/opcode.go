package cpu

import (
	"fmt"
	"iter"
	"slices"

	"github.com/steve-caiula/simpletron-vm/internal"
)

// Opcode is the operation selected by an instruction word.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	// Input/output
	OP_READ  = Opcode(10) // READ
	OP_WRITE = Opcode(11) // WRITE

	// Load/store
	OP_LOAD  = Opcode(20) // LOAD
	OP_STORE = Opcode(21) // STORE

	// Arithmetic
	OP_ADD       = Opcode(30) // ADD
	OP_SUBTRACT  = Opcode(31) // SUBTRACT
	OP_DIVIDE    = Opcode(32) // DIVIDE
	OP_REMAINDER = Opcode(33) // REMAINDER
	OP_MULTIPLY  = Opcode(34) // MULTIPLY

	// Transfer of control
	OP_BRANCH     = Opcode(40) // BRANCH
	OP_BRANCHNEG  = Opcode(41) // BRANCHNEG
	OP_BRANCHZERO = Opcode(42) // BRANCHZERO
	OP_HALT       = Opcode(43) // HALT
)

var (
	_opcodes_io      = []Opcode{OP_READ, OP_WRITE}
	_opcodes_memory  = []Opcode{OP_LOAD, OP_STORE}
	_opcodes_alu     = []Opcode{OP_ADD, OP_SUBTRACT, OP_DIVIDE, OP_REMAINDER, OP_MULTIPLY}
	_opcodes_control = []Opcode{OP_BRANCH, OP_BRANCHNEG, OP_BRANCHZERO, OP_HALT}
)

// Opcodes returns the closed set of legal opcodes, in ascending order.
func Opcodes() iter.Seq[Opcode] {
	return internal.IterSeqConcat(
		slices.Values(_opcodes_io),
		slices.Values(_opcodes_memory),
		slices.Values(_opcodes_alu),
		slices.Values(_opcodes_control),
	)
}

// Valid returns true for a legal opcode.
func (op Opcode) Valid() bool {
	for legal := range Opcodes() {
		if op == legal {
			return true
		}
	}
	return false
}

// Arithmetic returns true if the opcode uses the ALU.
func (op Opcode) Arithmetic() bool {
	return slices.Contains(_opcodes_alu, op)
}

// Code is a single instruction word.
type Code Word

// MakeCode encodes an opcode and operand into an instruction.
func MakeCode(op Opcode, operand int) Code {
	return Code(int(op)*100 + operand)
}

// Decode splits a word into its opcode and operand, using truncating
// division so that the operand takes the sign of the word.
func Decode(word Word) (op Opcode, operand int) {
	op = Opcode(int(word) / 100)
	operand = int(word) % 100
	return
}

// Decode returns the opcode and operand of the instruction.
func (code Code) Decode() (op Opcode, operand int) {
	return Decode(Word(code))
}

// Opcode returns the opcode of the instruction.
func (code Code) Opcode() (op Opcode) {
	op, _ = code.Decode()
	return
}

// Operand returns the operand of the instruction.
func (code Code) Operand() (operand int) {
	_, operand = code.Decode()
	return
}

// String returns the assembly language representation of this instruction.
func (code Code) String() string {
	op, operand := code.Decode()
	if !op.Valid() {
		return fmt.Sprintf(".word %v", Word(code))
	}
	if op == OP_HALT && operand == 0 {
		return op.String()
	}

	return fmt.Sprintf("%v %02d", op, operand)
}
