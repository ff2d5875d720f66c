package emulator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/steve-caiula/simpletron-vm/cpu"
	"github.com/steve-caiula/simpletron-vm/io"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(cpu.LAYOUT_SPLIT)

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.Nil(emu.Listing)
	assert.Equal(cpu.LAYOUT_SPLIT, emu.Cpu.Layout)

	channel, err := emu.Cpu.GetChannel()
	assert.NoError(err)
	assert.Same(&emu.Tape, channel)

	_, err = emu.Run()
	assert.ErrorIs(err, ErrNotLoaded)
	assert.NoError(emu.Fault())
}

// doTape attaches a tape console with the given input text.
func doTape(emu *Emulator, input string) (output *bytes.Buffer) {
	output = &bytes.Buffer{}
	emu.Tape.Input = strings.NewReader(input)
	emu.Tape.Output = output
	return
}

func TestEmulatorLoadRun(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(cpu.LAYOUT_UNIFIED)

	// Read two numbers, write their sum.
	input := strings.Join([]string{
		"1007", "1008", "2007", "3008", "2109", "1109", "4300",
		"-99999",
		"19", "23",
	}, "\n") + "\n"
	output := doTape(emu, input)

	length, err := emu.Load()
	assert.NoError(err)
	assert.Equal(7, length)

	state, err := emu.Run()
	assert.NoError(err)
	assert.Equal(cpu.STATE_HALTED_NORMAL, state)
	assert.NoError(emu.Fault())
	assert.Equal(cpu.Word(42), emu.Cpu.Accumulator)
	assert.Equal(cpu.Word(42), emu.Cpu.Data[9])
	assert.Equal(7, emu.Cpu.Ticks)

	text := output.String()
	assert.True(strings.HasPrefix(text, "00 ? 01 ? 02 ? 03 ? 04 ? 05 ? 06 ? 07 ? "), text)
	assert.Contains(text, "*** Program loading completed ***")
	assert.Contains(text, "READ 07 ? READ 08 ? WRITE 09 : +0042\n")
	assert.Contains(text, "*** Simpletron execution terminated ***")
	assert.NotContains(text, "abnormally")
	assert.Contains(text, "REGISTERS:\n")
	assert.Contains(text, "\nMEMORY:\n")
	assert.True(strings.HasSuffix(text, emu.Dump().String()), text)
}

func TestEmulatorLoadRetry(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(cpu.LAYOUT_SPLIT)

	output := doTape(emu, "10050 junk\n50\n-99999\n")

	length, err := emu.Load()
	assert.NoError(err)
	assert.Equal(1, length)
	assert.Equal(cpu.Word(50), emu.Cpu.Program[0])
	assert.Equal(cpu.Word(0), emu.Cpu.Program[1])

	assert.Equal("00 ? *** You entered an invalid value. Retry. ***\n00 ? 01 ? ", output.String())
}

func TestEmulatorLoadClosed(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(cpu.LAYOUT_SPLIT)
	doTape(emu, "4300\n")

	length, err := emu.Load()
	assert.ErrorIs(err, io.ErrInputClosed)
	assert.Equal(1, length)

	_, err = emu.Run()
	assert.ErrorIs(err, io.ErrInputClosed)
}

func TestEmulatorTooLarge(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(cpu.LAYOUT_SPLIT)
	output := doTape(emu, strings.Repeat("4300\n", cpu.MEMORY_SIZE+1))

	length, err := emu.Load()
	assert.ErrorIs(err, cpu.ErrProgramTooLarge)
	assert.Equal(cpu.MEMORY_SIZE, length)
	assert.Contains(output.String(), "*** Memory overflow")

	output.Reset()
	state, err := emu.Run()
	assert.ErrorIs(err, cpu.ErrProgramTooLarge)
	assert.Equal(cpu.STATE_RUNNING, state)
	assert.Equal(0, emu.Cpu.Ticks)
	assert.Equal("", output.String())
}

func TestEmulatorFault(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(cpu.LAYOUT_SPLIT)
	output := doTape(emu, "2000\n3201\n4300\n-99999\n")

	_, err := emu.Load()
	assert.NoError(err)

	state, err := emu.Run()
	assert.NoError(err)
	assert.Equal(cpu.STATE_HALTED_FAULT, state)

	fault := emu.Fault()
	assert.ErrorIs(fault, cpu.ErrDivideByZero)
	assert.ErrorIs(fault, cpu.ErrOpcode(0))

	var rt *ErrRuntime
	if assert.True(errors.As(fault, &rt)) {
		assert.Equal(1, rt.Ip)
		assert.Equal(0, rt.LineNo)
	}

	text := output.String()
	assert.Contains(text, "*** "+fault.Error()+" ***\n")
	assert.Contains(text, "*** Simpletron execution abnormally terminated ***")
	assert.Contains(text, "\nPROGRAM:\n")
	assert.Contains(text, "\nDATA:\n")
}

func TestEmulatorProgram(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"; count down from the operator's value",
		"        read n",
		"loop:   load n",
		"        bneg done",
		"        write n",
		"        sub one",
		"        store n",
		"        b loop",
		"done:   halt",
		"n:      .word 0",
		"one:    .word 1",
	}

	asm := &cpu.Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	emu := NewEmulator(cpu.LAYOUT_UNIFIED)
	script := io.NewScript(2)
	emu.Cpu.SetChannel(script)

	err = emu.LoadProgram(prog)
	assert.NoError(err)
	assert.Same(prog, emu.Listing)

	emu.Cpu.Reset()
	for _, line := range prog.Lines[:3] {
		assert.Equal(line.LineNo, emu.LineNo())
		done, err := emu.Tick()
		assert.NoError(err)
		assert.False(done)
	}

	for range 100 {
		done, err := emu.Tick()
		assert.NoError(err)
		if done {
			break
		}
	}
	assert.Equal(cpu.STATE_HALTED_NORMAL, emu.Cpu.State)
	assert.Equal(9, emu.LineNo())

	text := script.Text()
	assert.Contains(text, "WRITE 08 : +0002\nWRITE 08 : +0001\nWRITE 08 : +0000\n")
	assert.Equal(cpu.Word(-1), emu.Cpu.Accumulator)
}

func TestEmulatorProgramFault(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"        load big",
		"        mul big",
		"        halt",
		"big:    .word 9000",
	}

	asm := &cpu.Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	emu := NewEmulator(cpu.LAYOUT_UNIFIED)
	script := io.NewScript()
	emu.Cpu.SetChannel(script)

	err = emu.LoadProgram(prog)
	assert.NoError(err)

	state, err := emu.Run()
	assert.NoError(err)
	assert.Equal(cpu.STATE_HALTED_FAULT, state)
	assert.Equal(cpu.Word(9000), emu.Cpu.Accumulator)

	fault := emu.Fault()
	assert.ErrorIs(fault, cpu.ErrOverflow)

	var rt *ErrRuntime
	if assert.True(errors.As(fault, &rt)) {
		assert.Equal(1, rt.Ip)
		assert.Equal(2, rt.LineNo)
	}
}

func TestEmulatorProgramBounds(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(cpu.LAYOUT_SPLIT)
	script := io.NewScript()
	emu.Cpu.SetChannel(script)

	asm := &cpu.Assembler{}
	prog, err := asm.Parse(strings.NewReader("b 99\n"))
	assert.NoError(err)

	err = emu.LoadProgram(prog)
	assert.NoError(err)
	emu.Cpu.Program[99] = 4000 + 99

	// Branch to 99, then loop on 99 forever; cut it off by hand.
	emu.Cpu.Reset()
	for range 10 {
		done, err := emu.Tick()
		assert.NoError(err)
		assert.False(done)
	}
	assert.Equal(99, emu.Cpu.Ip)
	assert.Equal(0, emu.LineNo())

	// Fall off the end of memory.
	emu.Cpu.Program[99] = 2000
	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(100, emu.Cpu.Ip)

	done, err = emu.Tick()
	assert.True(done)
	assert.ErrorIs(err, cpu.ErrProgramBounds)
}

func TestEmulatorEmpty(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(cpu.LAYOUT_SPLIT)
	script := io.NewScript(cpu.SENTINEL)
	emu.Cpu.SetChannel(script)

	length, err := emu.Load()
	assert.NoError(err)
	assert.Equal(0, length)

	state, err := emu.Run()
	assert.NoError(err)
	assert.Equal(cpu.STATE_HALTED_FAULT, state)
	assert.ErrorIs(emu.Fault(), cpu.ErrOpcodeUnknown)
}

func TestEmulatorWelcome(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(cpu.LAYOUT_SPLIT)
	output := doTape(emu, "")

	err := emu.Welcome()
	assert.NoError(err)
	assert.True(strings.HasPrefix(output.String(), "***          Welcome to Simpletron            ***\n"))
	assert.Contains(output.String(), "-99999")

	emu.Tape.Output = nil
	err = emu.Welcome()
	assert.ErrorIs(err, io.ErrNoOutput)
}

func TestEmulatorProgramSplit(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"        load big",
		"        add one",
		"        store big",
		"        write big",
		"        halt",
		"big:    .word 41",
		"one:    .word 1",
	}

	asm := &cpu.Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	emu := NewEmulator(cpu.LAYOUT_SPLIT)
	script := io.NewScript()
	emu.Cpu.SetChannel(script)

	err = emu.LoadProgram(prog)
	assert.NoError(err)
	assert.Equal(cpu.Word(41), emu.Cpu.Program[5])
	assert.Equal(cpu.Word(41), emu.Cpu.Data[5])
	assert.Equal(cpu.Word(1), emu.Cpu.Data[6])
	assert.Equal(cpu.Word(0), emu.Cpu.Data[0])

	state, err := emu.Run()
	assert.NoError(err)
	assert.Equal(cpu.STATE_HALTED_NORMAL, state)
	assert.Contains(script.Text(), "WRITE 05 : +0042\n")
	assert.Equal(cpu.Word(42), emu.Cpu.Data[5])
	assert.Equal(cpu.Word(41), emu.Cpu.Program[5])
}

// failingScript refuses to display text containing refuse.
type failingScript struct {
	*io.Script
	refuse string
}

func (fs *failingScript) Send(text string) error {
	if strings.Contains(text, fs.refuse) {
		return io.ErrNoOutput
	}
	return fs.Script.Send(text)
}

func TestEmulatorTooLargeNotice(t *testing.T) {
	assert := assert.New(t)

	values := make([]int, cpu.MEMORY_SIZE)
	emu := NewEmulator(cpu.LAYOUT_SPLIT)
	emu.Cpu.SetChannel(&failingScript{Script: io.NewScript(values...), refuse: "Memory overflow"})

	length, err := emu.Load()
	assert.Equal(cpu.MEMORY_SIZE, length)
	assert.ErrorIs(err, cpu.ErrProgramTooLarge)
	assert.ErrorIs(err, io.ErrNoOutput)
}
