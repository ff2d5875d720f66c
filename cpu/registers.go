package cpu

import (
	"fmt"
)

// Registers is the execution state of the machine.
type Registers struct {
	Accumulator Word   // Arithmetic accumulator.
	Ip          int    // Address of the next instruction.
	Ir          Code   // Last fetched instruction.
	Opcode      Opcode // Opcode latched from Ir.
	Operand     int    // Operand latched from Ir.
}

// Reset zeros all registers.
func (regs *Registers) Reset() {
	*regs = Registers{}
}

// String returns the labelled register values, one per line.
func (regs *Registers) String() (text string) {
	text += fmt.Sprintf("%-24s%+05d\n", f("accumulator"), int(regs.Accumulator))
	text += fmt.Sprintf("%-24s   %02d\n", f("instructionCounter"), regs.Ip)
	text += fmt.Sprintf("%-24s%+05d\n", f("instructionRegister"), int(regs.Ir))
	text += fmt.Sprintf("%-24s   %02d\n", f("operationCode"), int(regs.Opcode))
	text += fmt.Sprintf("%-24s   %02d\n", f("operand"), regs.Operand)

	return
}
