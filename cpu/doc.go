// Package cpu implements the Simpletron machine and its assembler.
//
// The machine is an accumulator computer with one hundred words of
// program memory, an optional separate hundred words of data memory, and
// five registers: the accumulator, the instruction pointer, the
// instruction register, and the opcode and operand latched from the
// instruction register. Every word holds a signed value in the range
// -9999 to +9999, encoding an instruction as opcode*100 + operand.
//
// The assembler accepts a symbolic Simpletron language with labels,
// equates and compile-time expression evaluation, and produces a
// Program whose words may be loaded into program memory.
package cpu
