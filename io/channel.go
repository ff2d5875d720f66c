// Package io provides the console channels of the Simpletron machine.
// A channel supplies signed integers on request and accepts text for
// display. Tape drives an io.Reader/io.Writer pair such as a terminal;
// Script replays a fixed list of responses and records what it was sent.
package io

// Channel defines the interface between the machine and its operator.
type Channel interface {
	// Receive shows prompt, then returns the next integer typed by the
	// operator. A response that is not an integer returns
	// ErrInputInvalid, and ErrInputClosed is returned once input is
	// exhausted.
	Receive(prompt string) (value int, err error)
	// Discard drops the remainder of the current input line.
	Discard()
	// Send displays text to the operator.
	Send(text string) error
}
