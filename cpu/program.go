package cpu

import (
	"fmt"
	"iter"
	"strings"
)

// Line is one assembled source line and the word it generated.
type Line struct {
	LineNo    int      // Source line number.
	Ip        int      // Address of the generated word.
	Words     []string // Source words, after equate expansion.
	Code      Code     // Generated word.
	LinkLabel string   // Label whose address becomes the operand.
}

// Program is an assembled listing.
type Program struct {
	Lines []Line
}

// Debug returns the source line that generated the word at ip, or nil.
func (prog *Program) Debug(ip int) *Line {
	for n, line := range prog.Lines {
		if line.Ip == ip {
			return &prog.Lines[n]
		}
	}

	return nil
}

// Binary returns the program words, ready to load at address zero.
func (prog *Program) Binary() (words []Word) {
	for _, code := range prog.Codes() {
		words = append(words, Word(code))
	}

	return
}

// Codes iterates the generated instructions by address.
func (prog *Program) Codes() iter.Seq2[int, Code] {
	return func(yield func(ip int, code Code) bool) {
		for _, line := range prog.Lines {
			if !yield(line.Ip, line.Code) {
				return
			}
		}
	}
}

// Data iterates the raw data words placed by .word, by address.
func (prog *Program) Data() iter.Seq2[int, Word] {
	return func(yield func(ip int, word Word) bool) {
		for _, line := range prog.Lines {
			if len(line.Words) == 0 || !strings.EqualFold(line.Words[0], ".word") {
				continue
			}
			if !yield(line.Ip, Word(line.Code)) {
				return
			}
		}
	}
}

// String returns the listing: address, word, decoded instruction and
// source for every generated word.
func (prog *Program) String() (text string) {
	for _, line := range prog.Lines {
		text += fmt.Sprintf("%02d %v %-14v ; %4d: %v\n",
			line.Ip, Word(line.Code), line.Code.String(),
			line.LineNo, strings.Join(line.Words, " "))
	}

	return
}
