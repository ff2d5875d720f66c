package cpu

import (
	"iter"
)

const (
	MEMORY_SIZE    = 100 // Words per memory region.
	MEMORY_COLUMNS = 10  // Words per row in a memory dump.
)

// Layout selects how program and data memory are arranged.
type Layout int

//go:generate go tool stringer -linecomment -type=Layout
const (
	LAYOUT_SPLIT   = Layout(0) // split
	LAYOUT_UNIFIED = Layout(1) // unified
)

// Memory is a region of addressable words.
type Memory [MEMORY_SIZE]Word

// Valid returns true if addr is within the region.
func (mem *Memory) Valid(addr int) bool {
	return addr >= 0 && addr < len(mem)
}

// Fetch returns the word at addr.
func (mem *Memory) Fetch(addr int) (value Word, err error) {
	if !mem.Valid(addr) {
		err = ErrAddressInvalid
		return
	}

	value = mem[addr]
	return
}

// Store writes value at addr. Out of range values are never stored.
func (mem *Memory) Store(addr int, value Word) (err error) {
	if !mem.Valid(addr) {
		err = ErrAddressInvalid
		return
	}
	if !value.Valid() {
		err = ErrWordRange
		return
	}

	mem[addr] = value
	return
}

// Load copies words into the region starting at address zero.
func (mem *Memory) Load(words []Word) (err error) {
	if len(words) > len(mem) {
		err = ErrProgramTooLarge
		return
	}

	for addr, word := range words {
		err = mem.Store(addr, word)
		if err != nil {
			return
		}
	}

	return
}

// Reset zeros the region.
func (mem *Memory) Reset() {
	clear(mem[:])
}

// Rows iterates the region by row index, MEMORY_COLUMNS words at a time.
// The word at address a is at row a / MEMORY_COLUMNS, column
// a % MEMORY_COLUMNS.
func (mem *Memory) Rows() iter.Seq2[int, []Word] {
	return func(yield func(row int, words []Word) bool) {
		for addr := 0; addr < len(mem); addr += MEMORY_COLUMNS {
			if !yield(addr/MEMORY_COLUMNS, mem[addr:addr+MEMORY_COLUMNS]) {
				return
			}
		}
	}
}
