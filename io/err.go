package io

import (
	"errors"

	"github.com/steve-caiula/simpletron-vm/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrInputInvalid = errors.New(f("input invalid"))
	ErrInputClosed  = errors.New(f("input closed"))
	ErrNoOutput     = errors.New(f("no output attached"))
)
