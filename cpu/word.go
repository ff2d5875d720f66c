package cpu

import (
	"fmt"
)

// Word is the content of a memory cell or register.
type Word int

const (
	WORD_MIN = Word(-9999) // Smallest storable word.
	WORD_MAX = Word(9999)  // Largest storable word.

	SENTINEL = -99999 // Ends program entry. Never storable.
)

// MakeWord converts an integer into a word, failing if out of range.
func MakeWord(value int) (word Word, err error) {
	word = Word(value)
	if !word.Valid() {
		err = ErrWordRange
		word = 0
	}

	return
}

// Valid returns true if the word can be stored.
func (word Word) Valid() bool {
	return word >= WORD_MIN && word <= WORD_MAX
}

// String returns the signed, zero padded form of the word.
func (word Word) String() string {
	return fmt.Sprintf("%+05d", int(word))
}
