package mem

import (
	"errors"

	"github.com/ezrec/tinyasm/translate"
)

var f = translate.From

var (
	// Program check errors
	ErrIfWithoutBranch = errors.New(f("if not followed by branch"))

	// Hex listing errors
	ErrHexLength = errors.New(f("hex line length"))
	ErrHexDigit  = errors.New(f("hex digit invalid"))
)

// ErrCheck indicates the location of a program check failure.
type ErrCheck struct {
	Program string
	Index   int
	Offset  int
	Err     error
}

func (err *ErrCheck) Error() string {
	return f("%v: instruction %d at 0x%04x: %v", err.Program, err.Index, err.Offset, err.Err)
}

func (err *ErrCheck) Unwrap() error {
	return err.Err
}

// ErrHexLine indicates the location of a malformed .mem line.
type ErrHexLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrHexLine) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrHexLine) Unwrap() error {
	return err.Err
}
