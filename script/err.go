package script

import (
	"errors"

	"github.com/ezrec/tinyasm/translate"
)

var f = translate.From

var (
	ErrValueRange       = errors.New(f("value out of range"))
	ErrConditionInvalid = errors.New(f("condition invalid"))
	ErrNotInstruction   = errors.New(f("not an instruction"))
)

// ErrScript indicates the script a load error came from.
type ErrScript struct {
	Name string
	Err  error
}

func (err *ErrScript) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}

// ErrElement indicates the list element that is not an instruction.
type ErrElement struct {
	List  string
	Index int
	Type  string
}

func (err *ErrElement) Error() string {
	return f("%v[%d] is a %v", err.List, err.Index, err.Type)
}

func (err *ErrElement) Unwrap() error {
	return ErrNotInstruction
}
