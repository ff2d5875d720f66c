// Copyright 2025, Steve Caiula

// Package emulator hosts a Simpletron machine on an operator console:
// program entry, execution with termination notices, and diagnostic
// dumps.
package emulator

import (
	"errors"

	"github.com/steve-caiula/simpletron-vm/cpu"
	"github.com/steve-caiula/simpletron-vm/io"
)

// Emulator state. CPU + operator console.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Listing  *cpu.Program // Assembled listing of the loaded program, if any.

	Tape io.Tape // Operator console.

	loaded  bool
	loadErr error
}

// NewEmulator creates a new emulator, with the operator console on Tape.
func NewEmulator(layout cpu.Layout) (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(layout),
	}

	emu.Cpu.SetChannel(&emu.Tape)

	return
}

// send displays translated text on the operator console.
func (emu *Emulator) send(text string) (err error) {
	channel, err := emu.Cpu.GetChannel()
	if err != nil {
		return
	}

	err = channel.Send(text)
	return
}

// Welcome displays the program entry instructions.
func (emu *Emulator) Welcome() (err error) {
	err = emu.send(f("***          Welcome to Simpletron            ***\n" +
		"***                                           ***\n" +
		"*** Please enter your program one instruction ***\n" +
		"*** (or data word) at a time. I will type the ***\n" +
		"*** location number and a question mark (?).  ***\n" +
		"*** You then type the word for that location. ***\n" +
		"*** Type the sentinel -99999 to stop entering ***\n" +
		"*** your program.                             ***\n\n"))
	return
}

// Load enters a program from the operator console into program memory.
// A program that fills memory before the sentinel is entered returns
// cpu.ErrProgramTooLarge, and will not be run.
func (emu *Emulator) Load() (length int, err error) {
	emu.Cpu.Clear()
	emu.Listing = nil

	channel, err := emu.Cpu.GetChannel()
	if err != nil {
		return
	}

	length, err = cpu.Load(channel, emu.Cpu.Program)

	emu.loaded = true
	emu.loadErr = err

	if errors.Is(err, cpu.ErrProgramTooLarge) {
		send_err := emu.send(f("*** Memory overflow: program too large for Simpletron ***\n"))
		if send_err != nil {
			err = errors.Join(err, send_err)
		}
	}

	return
}

// LoadProgram places an assembled program into program memory. With
// split memory, the .word data words are also placed at the same
// addresses in data memory.
func (emu *Emulator) LoadProgram(prog *cpu.Program) (err error) {
	emu.Cpu.Clear()

	err = emu.Cpu.Program.Load(prog.Binary())
	if err == nil && emu.Cpu.Data != emu.Cpu.Program {
		for ip, word := range prog.Data() {
			err = emu.Cpu.Data.Store(ip, word)
			if err != nil {
				break
			}
		}
	}

	emu.Listing = prog
	emu.loaded = true
	emu.loadErr = err

	return
}

// LineNo returns the source line number for the current instruction,
// or 0 without a listing.
func (emu *Emulator) LineNo() int {
	if emu.Listing == nil {
		return 0
	}

	line := emu.Listing.Debug(emu.Cpu.Ip)
	if line == nil {
		return 0
	}

	return line.LineNo
}

// Fault returns the cause of an abnormal halt, located by address and
// source line, or nil.
func (emu *Emulator) Fault() error {
	if emu.Cpu.Fault == nil {
		return nil
	}

	return &ErrRuntime{Ip: emu.Cpu.Ip, LineNo: emu.LineNo(), Err: emu.Cpu.Fault}
}

// Tick performs a single instruction cycle. done is set once the
// machine has halted, normally or not.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Tick()
	if err != nil {
		err = emu.Fault()
	}

	done = emu.Cpu.State != cpu.STATE_RUNNING
	return
}

// Run executes the loaded program from address zero until it halts,
// then displays a termination notice and a dump. The returned error
// reports only a refusal to run, or a console failure. Faults in the
// program are reported by the returned state, and by Fault().
func (emu *Emulator) Run() (state cpu.State, err error) {
	state = emu.Cpu.State

	if !emu.loaded {
		err = ErrNotLoaded
		return
	}

	if emu.loadErr != nil {
		err = emu.loadErr
		return
	}

	err = emu.send(f("\n*** Program loading completed ***\n" +
		"*** Program execution begins  ***\n\n"))
	if err != nil {
		return
	}

	emu.Cpu.Reset()

	var done bool
	var fault error
	for !done {
		done, fault = emu.Tick()
	}

	state = emu.Cpu.State

	switch state {
	case cpu.STATE_HALTED_NORMAL:
		err = emu.send(f("\n*** Simpletron execution terminated ***\n\n"))
	case cpu.STATE_HALTED_FAULT:
		err = emu.send(f("\n*** %v ***\n*** Simpletron execution abnormally terminated ***\n\n", fault.Error()))
	}
	if err != nil {
		return
	}

	err = emu.send(emu.Dump().String())

	return
}
