package mem

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ezrec/tinyasm/isa"
)

// Program is a named, ordered sequence of instructions.
type Program struct {
	Name         string
	Instructions []isa.Instruction
}

// Codes returns an iterator over the image offset and encoding of each
// instruction.
func (prog *Program) Codes() iter.Seq2[int, isa.Encoded] {
	return func(yield func(offset int, code isa.Encoded) bool) {
		offset := 0
		for _, inst := range prog.Instructions {
			code := inst.Encode()
			if !yield(offset, code) {
				return
			}
			offset += code.Size()
		}
	}
}

// Size returns the image size of the program in bytes.
func (prog *Program) Size() (size int) {
	for _, inst := range prog.Instructions {
		size += inst.Size()
	}
	return
}

// Encode returns the encoding of each instruction.
func (prog *Program) Encode() (codes []isa.Encoded) {
	codes = make([]isa.Encoded, 0, len(prog.Instructions))
	for _, code := range prog.Codes() {
		codes = append(codes, code)
	}
	return
}

// Binary returns the packed program image.
func (prog *Program) Binary() []byte {
	return Pack(prog.Encode())
}

// Check verifies every instruction is available in the revision, and that
// every If gate is followed by a branch.
func (prog *Program) Check(rev isa.Revision) (err error) {
	offset := 0
	for n, inst := range prog.Instructions {
		err = rev.Check(inst)
		if err == nil && inst.Op == isa.OP_IF {
			if n+1 >= len(prog.Instructions) || prog.Instructions[n+1].Op != isa.OP_BRANCH {
				err = ErrIfWithoutBranch
			}
		}
		if err != nil {
			err = &ErrCheck{Program: prog.Name, Index: n, Offset: offset, Err: err}
			return
		}
		offset += inst.Size()
	}

	return
}

// Listing writes one line per instruction: image offset, packed bytes, and
// the assembly representation.
func (prog *Program) Listing(w io.Writer) (err error) {
	n := 0
	for offset, code := range prog.Codes() {
		bytes := AppendCode(nil, code)
		hex := make([]string, len(bytes))
		for i, b := range bytes {
			hex[i] = fmt.Sprintf("%02X", b)
		}

		_, err = fmt.Fprintf(w, "%04X: %-6v %v\n", offset, strings.Join(hex, " "), prog.Instructions[n].String())
		if err != nil {
			return
		}
		n++
	}

	return
}

// Disassemble decodes an image into a program.
func Disassemble(name string, data []byte) (prog *Program, err error) {
	prog = &Program{Name: name}

	for offset := 0; offset < len(data); {
		inst, n, derr := isa.Decode(data[offset:])
		if derr != nil {
			err = &ErrCheck{Program: name, Index: len(prog.Instructions), Offset: offset, Err: derr}
			return
		}
		prog.Instructions = append(prog.Instructions, inst)
		offset += n
	}

	return
}
