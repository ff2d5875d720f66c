package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/steve-caiula/simpletron-vm/io"
)

// Channel is the operator console interface.
type Channel io.Channel

// State is the execution state of the machine.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING       = State(0) // running
	STATE_HALTED_NORMAL = State(1) // halted
	STATE_HALTED_FAULT  = State(2) // fault
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%d", MEMORY_SIZE),
	"WORD_MIN":    fmt.Sprintf("%d", WORD_MIN),
	"WORD_MAX":    fmt.Sprintf("%d", WORD_MAX),
	"SENTINEL":    fmt.Sprintf("%d", SENTINEL),
}

func init() {
	for op := range Opcodes() {
		_cpu_defines["OP_"+op.String()] = fmt.Sprintf("%d", int(op))
	}
}

// Cpu is the simulation context for a Simpletron machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Registers // Execution registers.

	Layout  Layout  // Memory arrangement.
	Program *Memory // Instruction memory, written by the loader.
	Data    *Memory // Operand memory. Aliases Program when unified.

	State State // Current execution state.
	Fault error // Cause of a STATE_HALTED_FAULT.
	Ticks int   // Instructions fetched since reset.

	channel Channel // Operator console.
}

// NewCpu creates a new machine with the requested memory layout.
func NewCpu(layout Layout) (cpu *Cpu) {
	cpu = &Cpu{
		Layout:  layout,
		Program: &Memory{},
	}

	if layout == LAYOUT_UNIFIED {
		cpu.Data = cpu.Program
	} else {
		cpu.Data = &Memory{}
	}

	return
}

// Defines returns the machine constants, as assembler equates.
func Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// SetChannel attaches the operator console.
func (cpu *Cpu) SetChannel(channel Channel) {
	cpu.channel = channel
}

// GetChannel gets the operator console.
func (cpu *Cpu) GetChannel() (channel Channel, err error) {
	if cpu.channel == nil {
		err = ErrChannelInvalid
		return
	}

	channel = cpu.channel
	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("%5s: %v\n", "state", cpu.State)
	text += fmt.Sprintf("%5s: %v\n", "acc", cpu.Accumulator)
	text += fmt.Sprintf("%5s: %02d\n", "ip", cpu.Ip)
	text += fmt.Sprintf("%5s: %v %v\n", "ir", Word(cpu.Ir), cpu.Ir)
	text += fmt.Sprintf("%5s: %v\n", "ticks", cpu.Ticks)
	if cpu.Fault != nil {
		text += fmt.Sprintf("%5s: %v\n", "fault", cpu.Fault)
	}

	return
}

// Reset the CPU state.
// - Clears the registers, so execution begins at address zero.
// - Zeros the tick counter.
// - Returns to STATE_RUNNING.
// Memory is left untouched.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Registers.Reset()
	cpu.State = STATE_RUNNING
	cpu.Fault = nil
	cpu.Ticks = 0
}

// Clear resets the CPU and zeros all memory.
func (cpu *Cpu) Clear() {
	cpu.Reset()
	cpu.Program.Reset()
	cpu.Data.Reset()
}

// FetchCode fetches the instruction at the instruction pointer.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	if !cpu.Program.Valid(cpu.Ip) {
		err = ErrProgramBounds
		return
	}

	word, err := cpu.Program.Fetch(cpu.Ip)
	if err != nil {
		return
	}

	code = Code(word)
	return
}

// Tick executes a single fetch, decode and execute cycle.
// A fault halts the machine and is returned.
func (cpu *Cpu) Tick() (err error) {
	if cpu.State != STATE_RUNNING {
		err = ErrHalted
		return
	}

	defer func() {
		if err != nil {
			cpu.State = STATE_HALTED_FAULT
			cpu.Fault = err
			if cpu.Verbose {
				log.Printf("%02d: fault: %v", cpu.Ip, err)
			}
		}
	}()

	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	cpu.Ticks += 1

	err = cpu.Execute(code)
	return
}

// Execute executes a single decoded instruction. On a fault the
// accumulator, memory and instruction pointer are left unchanged.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%02d: %v", cpu.Ip, code)
	}

	cpu.Ir = code
	cpu.Opcode, cpu.Operand = code.Decode()

	next_ip := cpu.Ip + 1
	addr := cpu.Operand

	switch op := cpu.Opcode; op {
	case OP_READ:
		if !cpu.Data.Valid(addr) {
			err = ErrAddressInvalid
			return
		}
		var value Word
		value, err = cpu.read(addr)
		if err != nil {
			return
		}
		err = cpu.Data.Store(addr, value)
	case OP_WRITE:
		var value Word
		value, err = cpu.Data.Fetch(addr)
		if err != nil {
			return
		}
		err = cpu.write(addr, value)
	case OP_LOAD:
		var value Word
		value, err = cpu.Data.Fetch(addr)
		if err != nil {
			return
		}
		cpu.Accumulator = value
	case OP_STORE:
		err = cpu.Data.Store(addr, cpu.Accumulator)
	case OP_ADD, OP_SUBTRACT, OP_DIVIDE, OP_REMAINDER, OP_MULTIPLY:
		var value, output Word
		value, err = cpu.Data.Fetch(addr)
		if err != nil {
			return
		}
		output, err = cpu.doAlu(op, cpu.Accumulator, value)
		if err != nil {
			return
		}
		cpu.Accumulator = output
	case OP_BRANCH, OP_BRANCHNEG, OP_BRANCHZERO:
		if !cpu.Program.Valid(addr) {
			err = ErrAddressInvalid
			return
		}
		switch {
		case op == OP_BRANCH,
			op == OP_BRANCHNEG && cpu.Accumulator < 0,
			op == OP_BRANCHZERO && cpu.Accumulator == 0:
			next_ip = addr
		}
	case OP_HALT:
		cpu.State = STATE_HALTED_NORMAL
		next_ip = cpu.Ip
	default:
		err = ErrOpcodeUnknown
	}

	if err != nil {
		return
	}

	cpu.Ip = next_ip

	return
}

// doAlu performs the requested arithmetic, and returns the output value.
// Results outside the word range are rejected.
func (cpu *Cpu) doAlu(op Opcode, input Word, value Word) (output Word, err error) {
	switch op {
	case OP_ADD:
		output = input + value
	case OP_SUBTRACT:
		output = input - value
	case OP_MULTIPLY:
		output = input * value
	case OP_DIVIDE:
		if value == 0 {
			err = ErrDivideByZero
			return
		}
		output = input / value
	case OP_REMAINDER:
		if value == 0 {
			err = ErrRemainderByZero
			return
		}
		output = input % value
	default:
		err = ErrOpcodeUnknown
		return
	}

	if !output.Valid() {
		err = ErrOverflow
		output = input
	}

	return
}

// read requests a word from the operator for address addr.
func (cpu *Cpu) read(addr int) (value Word, err error) {
	channel, err := cpu.GetChannel()
	if err != nil {
		return
	}

	n, err := receive(channel, f("READ %v ? ", fmt.Sprintf("%02d", addr)), false)
	if err != nil {
		return
	}

	value = Word(n)
	return
}

// write shows the operator the word at address addr.
func (cpu *Cpu) write(addr int, value Word) (err error) {
	channel, err := cpu.GetChannel()
	if err != nil {
		return
	}

	err = channel.Send(f("WRITE %v : %v\n", fmt.Sprintf("%02d", addr), value.String()))
	return
}
