package i8080

import (
	"errors"

	"github.com/is386/i8080core/translate"
)

var f = translate.From

var (
	// Load errors
	ErrRomNotFound   = errors.New(f("rom not found"))
	ErrRomUnreadable = errors.New(f("rom unreadable"))
	ErrRomTooLarge   = errors.New(f("rom larger than memory"))
)

// ErrRom is a load error for a named ROM file.
type ErrRom struct {
	Filename string
	Err      error
}

func (err *ErrRom) Error() string {
	return f("%v: %v", err.Filename, err.Err)
}

func (err *ErrRom) Unwrap() error {
	return err.Err
}

// ErrOpcode describes an opcode that the engine declined to execute.
type ErrOpcode uint8

func (eo ErrOpcode) Error() string {
	return f("opcode %02x not known", uint8(eo))
}
