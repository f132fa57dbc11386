package isa

import (
	"errors"

	"github.com/ezrec/tinyasm/translate"
)

var f = translate.From

var (
	// Decode errors
	ErrDecodeEmpty = errors.New(f("decode empty"))
	ErrDecodeShort = errors.New(f("decode short word"))
)

// ErrRevisionUnknown is returned for an unknown revision name.
type ErrRevisionUnknown string

func (err ErrRevisionUnknown) Error() string {
	return f("revision %v unknown", string(err))
}

// ErrRevision indicates an instruction is not available in a revision.
type ErrRevision struct {
	Rev  Revision
	Inst Instruction
}

func (err *ErrRevision) Error() string {
	return f("'%v' not available in %v", err.Inst.String(), err.Rev.String())
}
