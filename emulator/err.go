package emulator

import (
	"errors"
	"fmt"

	"github.com/steve-caiula/simpletron-vm/translate"
)

var f = translate.From

var (
	ErrNotLoaded = errors.New(f("no program loaded"))
)

// ErrRuntime indicates the location of a runtime fault.
type ErrRuntime struct {
	Ip     int // Address of the faulting instruction.
	LineNo int // Source line, when a listing is attached.
	Err    error
}

func (err *ErrRuntime) Error() string {
	ip := fmt.Sprintf("%02d", err.Ip)
	if err.LineNo == 0 {
		return f("address %v %v", ip, err.Err)
	}
	return f("address %v line %d %v", ip, err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
