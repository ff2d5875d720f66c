package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScript(t *testing.T) {
	assert := assert.New(t)

	sc := NewScript(5, -99999)
	sc.Input = append(sc.Input, " bad ")
	assert.Equal([]string{"5", "-99999", " bad "}, sc.Input)

	value, err := sc.Receive("a ")
	assert.NoError(err)
	assert.Equal(5, value)

	value, err = sc.Receive("b ")
	assert.NoError(err)
	assert.Equal(-99999, value)

	_, err = sc.Receive("c ")
	assert.ErrorIs(err, ErrInputInvalid)
	sc.Discard()

	_, err = sc.Receive("d ")
	assert.ErrorIs(err, ErrInputClosed)

	assert.Equal([]string{"a ", "b ", "c ", "d "}, sc.Prompts)
	assert.Equal(1, sc.Discards)
	assert.Empty(sc.Output)
}

func TestScriptSend(t *testing.T) {
	assert := assert.New(t)

	sc := &Script{}

	assert.NoError(sc.Send("one\n"))
	assert.NoError(sc.Send("two\n"))
	assert.Equal([]string{"one\n", "two\n"}, sc.Output)
	assert.Equal("one\ntwo\n", sc.Text())
}
