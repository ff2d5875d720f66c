package cpu

import (
	"errors"
	"fmt"

	"github.com/steve-caiula/simpletron-vm/io"
)

// receive requests integers from the operator until one is a storable
// word, or the sentinel when loading. Anything else is reported to the
// operator, the rest of the line is discarded, and the request repeats.
func receive(channel Channel, prompt string, loading bool) (value int, err error) {
	for {
		value, err = channel.Receive(prompt)
		switch {
		case err == nil && loading && value == SENTINEL:
			return
		case err == nil && Word(value).Valid():
			return
		case err == nil, errors.Is(err, io.ErrInputInvalid):
			err = channel.Send(f("*** You entered an invalid value. Retry. ***\n"))
			if err != nil {
				return
			}
			channel.Discard()
		default:
			return
		}
	}
}

// Load enters a program from the operator into mem, one word per
// address starting at zero, until the sentinel is entered. The sentinel
// is not stored.
//
// If memory fills before the sentinel, ErrProgramTooLarge is returned
// and the words entered so far remain in mem.
func Load(channel Channel, mem *Memory) (length int, err error) {
	for {
		var value int
		value, err = receive(channel, f("%v ? ", fmt.Sprintf("%02d", length)), true)
		if err != nil {
			return
		}

		if value == SENTINEL {
			return
		}

		err = mem.Store(length, Word(value))
		if err != nil {
			return
		}
		length++

		if length >= len(mem) {
			err = ErrProgramTooLarge
			return
		}
	}
}
