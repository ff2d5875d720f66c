package cpu

import (
	"fmt"
	"strings"
)

// Region is a named snapshot of a memory region.
type Region struct {
	Name  string
	Cells Memory
}

// Report is a snapshot of the machine for a diagnostic dump.
type Report struct {
	Registers Registers
	Regions   []Region
}

// Dump takes a snapshot of the registers and every memory region in use.
// The machine is not modified.
func (cpu *Cpu) Dump() (report Report) {
	report.Registers = cpu.Registers

	if cpu.Data == cpu.Program {
		report.Regions = []Region{
			{Name: f("MEMORY"), Cells: *cpu.Program},
		}
	} else {
		report.Regions = []Region{
			{Name: f("PROGRAM"), Cells: *cpu.Program},
			{Name: f("DATA"), Cells: *cpu.Data},
		}
	}

	return
}

// String renders the report: the labelled registers, then every region
// as a grid addressed by row (address / 10) and column (address % 10).
func (report Report) String() string {
	var text strings.Builder

	fmt.Fprintf(&text, "%v:\n", f("REGISTERS"))
	text.WriteString(report.Registers.String())

	for _, region := range report.Regions {
		fmt.Fprintf(&text, "\n%v:\n", region.Name)

		text.WriteString("   ")
		for col := range MEMORY_COLUMNS {
			fmt.Fprintf(&text, "%5d ", col)
		}
		text.WriteString("\n")

		for row, words := range region.Cells.Rows() {
			fmt.Fprintf(&text, "%02d ", row*MEMORY_COLUMNS)
			for _, word := range words {
				fmt.Fprintf(&text, "%v ", word)
			}
			text.WriteString("\n")
		}
	}

	return text.String()
}
