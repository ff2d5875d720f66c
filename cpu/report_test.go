package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDump(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(LAYOUT_SPLIT)
	cpu.Program.Load([]Word{2007, 4300})
	cpu.Data.Store(7, -42)
	cpu.Execute(MakeCode(OP_LOAD, 7))

	before := *cpu
	report := cpu.Dump()
	assert.Equal(before, *cpu)

	assert.Equal(Word(-42), report.Registers.Accumulator)
	assert.Equal(1, report.Registers.Ip)
	assert.Equal(Code(2007), report.Registers.Ir)
	assert.Equal(OP_LOAD, report.Registers.Opcode)
	assert.Equal(7, report.Registers.Operand)

	assert.Len(report.Regions, 2)
	assert.Equal("PROGRAM", report.Regions[0].Name)
	assert.Equal("DATA", report.Regions[1].Name)
	assert.Equal(Word(2007), report.Regions[0].Cells[0])
	assert.Equal(Word(-42), report.Regions[1].Cells[7])

	// Snapshot is independent of later execution.
	cpu.Data.Store(7, 1)
	assert.Equal(Word(-42), report.Regions[1].Cells[7])

	cpu = NewCpu(LAYOUT_UNIFIED)
	report = cpu.Dump()
	assert.Len(report.Regions, 1)
	assert.Equal("MEMORY", report.Regions[0].Name)
}

func TestReportString(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(LAYOUT_UNIFIED)
	cpu.Program.Load([]Word{2007, 4300, 0, 0, 0, 0, 0, -42})
	cpu.Execute(MakeCode(OP_LOAD, 7))
	cpu.Program.Store(13, 9999)

	lines := strings.Split(cpu.Dump().String(), "\n")

	expected := []string{
		"REGISTERS:",
		"accumulator             -0042",
		"instructionCounter         01",
		"instructionRegister     +2007",
		"operationCode              20",
		"operand                    07",
		"",
		"MEMORY:",
		"       0     1     2     3     4     5     6     7     8     9 ",
		"00 +2007 +4300 +0000 +0000 +0000 +0000 +0000 -0042 +0000 +0000 ",
		"10 +0000 +0000 +0000 +9999 +0000 +0000 +0000 +0000 +0000 +0000 ",
	}

	assert.Equal(expected, lines[:len(expected)])
	assert.Equal("90 +0000 +0000 +0000 +0000 +0000 +0000 +0000 +0000 +0000 +0000 ", lines[len(lines)-2])
	assert.Equal("", lines[len(lines)-1])
	assert.Len(lines, len(expected)-2+MEMORY_SIZE/MEMORY_COLUMNS+1)
}
