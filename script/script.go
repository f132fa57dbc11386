// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script loads programs from Starlark program scripts.
//
// A program script builds lists of instruction values. Every top level list
// of instructions whose name does not start with an underscore becomes a
// program of the same name:
//
//	data = 0x20
//	adder = [
//	    LOAD(CONST(0x14)),
//	    ADD(RAM(data)),
//	    OUT_LO,
//	    HALT,
//	]
//
// Fixed-function instructions are predeclared values (NOP, HALT, PUSH, POP,
// NOT, OUT_LO, SET_DP, LOAD_INDIRECT). LOAD, STORE, ADD, SUB, AND, OR and XOR
// take a source built by CONST(value, hi=False), DATA(hi=False) or
// RAM(address, indirect=False, sp=False). BRANCH(displacement) and
// IF(condition) complete the set, with the conditions ZERO, NOT_ZERO, ELSE
// and NOT_ELSE. TEXT(value) splices a literal byte.
//
// Branch displacements are plain integers computed by the script; size(list)
// returns the image size of a list of instructions to help with that.
package script

import (
	"io"
	"log"
	"maps"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/tinyasm/mem"
)

// Loader executes program scripts.
type Loader struct {
	Verbose bool // If set, verbosely logs the loaded programs.

	predefine map[string]int
}

// Predefine defines, or redefines, an integer global visible to scripts.
func (ld *Loader) Predefine(name string, value int) {
	if ld.predefine == nil {
		ld.predefine = map[string]int{name: value}
	} else {
		ld.predefine[name] = value
	}
}

// Parse executes a script, and returns its programs sorted by name.
func (ld *Loader) Parse(name string, input io.Reader) (progs []*mem.Program, err error) {
	defer func() {
		if err != nil {
			err = &ErrScript{Name: name, Err: err}
		}
	}()

	predeclared := universe()
	for key, value := range maps.All(ld.predefine) {
		predeclared[key] = starlark.MakeInt(value)
	}

	thread := &starlark.Thread{
		Name: name,
		Print: func(thread *starlark.Thread, msg string) {
			log.Printf("%v: %v", thread.Name, msg)
		},
	}

	opts := syntax.FileOptions{
		TopLevelControl: true,
		GlobalReassign:  true,
	}
	globals, err := starlark.ExecFileOptions(&opts, thread, name, input, predeclared)
	if err != nil {
		return
	}

	for _, key := range globals.Keys() {
		if strings.HasPrefix(key, "_") {
			continue
		}

		list, ok := globals[key].(*starlark.List)
		if !ok || list.Len() == 0 {
			continue
		}

		// Lists of other things are the script's own business.
		if _, ok := list.Index(0).(Instruction); !ok {
			continue
		}

		prog := &mem.Program{Name: key}
		prog.Instructions, err = instructions(key, list)
		if err != nil {
			return
		}

		if ld.Verbose {
			log.Printf("%v: %v: %d instructions, %d bytes", name, key, len(prog.Instructions), prog.Size())
		}

		progs = append(progs, prog)
	}

	return
}
