package io

import (
	"strconv"
	"strings"
)

// Script is a Channel that replays a fixed list of operator responses,
// and records every prompt and every piece of text it is sent.
type Script struct {
	Input   []string // Responses, one per Receive.
	Prompts []string // Prompts shown, in order.
	Output  []string // Text sent, in order.

	Discards int // Number of Discard requests.
}

var _ Channel = (*Script)(nil)

// NewScript creates a script from integer responses.
func NewScript(values ...int) (sc *Script) {
	sc = &Script{}
	for _, value := range values {
		sc.Input = append(sc.Input, strconv.Itoa(value))
	}
	return
}

// Receive records the prompt, and consumes the next response.
func (sc *Script) Receive(prompt string) (value int, err error) {
	sc.Prompts = append(sc.Prompts, prompt)

	if len(sc.Input) == 0 {
		err = ErrInputClosed
		return
	}

	word := strings.TrimSpace(sc.Input[0])
	sc.Input = sc.Input[1:]

	value, err = strconv.Atoi(word)
	if err != nil {
		err = ErrInputInvalid
	}

	return
}

// Discard is counted, as a script has no line remainder to drop.
func (sc *Script) Discard() {
	sc.Discards++
}

// Send records the text.
func (sc *Script) Send(text string) error {
	sc.Output = append(sc.Output, text)
	return nil
}

// Text returns all recorded output joined together.
func (sc *Script) Text() string {
	return strings.Join(sc.Output, "")
}
