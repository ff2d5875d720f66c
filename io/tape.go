package io

import (
	"bufio"
	"io"
	"strconv"
	"unicode"
)

// Tape provides operator I/O over byte streams. Responses are
// whitespace separated decimal integers read from Input; prompts and
// displayed text are written to Output.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	reader *bufio.Reader
	source io.Reader
}

var _ Channel = (*Tape)(nil)

// buffered returns the buffered reader for the current Input, replacing
// it if Input has been swapped.
func (tc *Tape) buffered() *bufio.Reader {
	if tc.reader == nil || tc.source != tc.Input {
		tc.reader = bufio.NewReader(tc.Input)
		tc.source = tc.Input
	}
	return tc.reader
}

// token reads the next whitespace delimited word, without consuming the
// newline that ends it.
func (tc *Tape) token() (word string, err error) {
	rd := tc.buffered()

	var text []rune
	for {
		var r rune
		r, _, err = rd.ReadRune()
		if err != nil {
			if err == io.EOF && len(text) > 0 {
				err = nil
				break
			}
			return
		}
		if unicode.IsSpace(r) {
			if len(text) == 0 {
				continue
			}
			rd.UnreadRune()
			break
		}
		text = append(text, r)
	}

	word = string(text)
	return
}

// Receive writes the prompt and parses the next word as an integer.
func (tc *Tape) Receive(prompt string) (value int, err error) {
	if len(prompt) > 0 {
		err = tc.Send(prompt)
		if err != nil {
			return
		}
	}

	if tc.Input == nil {
		err = ErrInputClosed
		return
	}

	word, err := tc.token()
	if err == io.EOF {
		err = ErrInputClosed
	}
	if err != nil {
		return
	}

	value, err = strconv.Atoi(word)
	if err != nil {
		err = ErrInputInvalid
		return
	}

	return
}

// Discard skips input up to and including the next newline.
func (tc *Tape) Discard() {
	if tc.Input == nil {
		return
	}

	tc.buffered().ReadString('\n')
}

// Send writes text to the output stream.
func (tc *Tape) Send(text string) (err error) {
	if tc.Output == nil {
		err = ErrNoOutput
		return
	}

	_, err = io.WriteString(tc.Output, text)
	return
}
