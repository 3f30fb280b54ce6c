package i8080Script

import (
	"github.com/is386/i8080core/translate"
)

var f = translate.From

type ErrScriptRegister string

func (err ErrScriptRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrScriptFlag string

func (err ErrScriptFlag) Error() string {
	return f("'%v' is not a flag", string(err))
}

// ErrScriptValue is a value that does not fit the register, address or byte
// it was given for.
type ErrScriptValue struct {
	Name  string
	Value int
}

func (err ErrScriptValue) Error() string {
	return f("%v out of range for %v", err.Value, err.Name)
}
