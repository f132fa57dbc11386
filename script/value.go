package script

import (
	"fmt"

	"go.starlark.net/starlark"

	"github.com/ezrec/tinyasm/isa"
)

// Instruction is the Starlark value of an isa.Instruction.
type Instruction struct {
	isa.Instruction
}

var _ starlark.Value = Instruction{}

func (si Instruction) String() string        { return si.Instruction.String() }
func (si Instruction) Type() string          { return "instruction" }
func (si Instruction) Freeze()               {}
func (si Instruction) Truth() starlark.Bool  { return starlark.True }
func (si Instruction) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable: %s", si.Type()) }

// Source is the Starlark value of an isa.Source.
type Source struct {
	isa.Source
}

var _ starlark.Value = Source{}

func (ss Source) String() string        { return ss.Source.String() }
func (ss Source) Type() string          { return "source" }
func (ss Source) Freeze()               {}
func (ss Source) Truth() starlark.Bool  { return starlark.True }
func (ss Source) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable: %s", ss.Type()) }
