package script

import (
	"fmt"
	"math"
	"strings"

	"go.starlark.net/starlark"

	"github.com/ezrec/tinyasm/isa"
)

// byteArg converts a Starlark argument to a byte.
func byteArg(fn *starlark.Builtin, name string, value int) (out uint8, err error) {
	if value < 0 || value > math.MaxUint8 {
		err = fmt.Errorf("%v: %v %d: %w", fn.Name(), name, value, ErrValueRange)
		return
	}

	out = uint8(value)
	return
}

func half(hi bool) isa.ByteInWord {
	if hi {
		return isa.BYTE_HI
	}
	return isa.BYTE_LO
}

func builtinText(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var value int
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &value); err != nil {
		return nil, err
	}

	b, err := byteArg(fn, "value", value)
	if err != nil {
		return nil, err
	}

	return Instruction{isa.MakeText(b)}, nil
}

func builtinConst(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var value int
	var hi bool
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "value", &value, "hi?", &hi); err != nil {
		return nil, err
	}

	b, err := byteArg(fn, "value", value)
	if err != nil {
		return nil, err
	}

	return Source{isa.MakeConst(half(hi), b)}, nil
}

func builtinData(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var hi bool
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "hi?", &hi); err != nil {
		return nil, err
	}

	return Source{isa.MakeData(half(hi))}, nil
}

func builtinRam(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var address int
	var indirect, sp bool
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "address", &address, "indirect?", &indirect, "sp?", &sp); err != nil {
		return nil, err
	}

	b, err := byteArg(fn, "address", address)
	if err != nil {
		return nil, err
	}

	mode := isa.MODE_DIRECT
	if indirect {
		mode = isa.MODE_INDIRECT
	}

	base := isa.BASE_DP
	if sp {
		base = isa.BASE_SP
	}

	return Source{isa.MakeRamRelative(base, mode, b)}, nil
}

// makeUnary creates the builtin for a load, store or ALU op.
func makeUnary(op isa.Op) *starlark.Builtin {
	name := strings.ToUpper(op.String())
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var src Source
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &src); err != nil {
			return nil, err
		}

		return Instruction{isa.MakeUnary(op, src.Source)}, nil
	})
}

func builtinBranch(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var target int
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &target); err != nil {
		return nil, err
	}

	// Displacements outside 11 bits truncate, but must at least fit the
	// 16-bit Target.
	if target < math.MinInt16 || target > math.MaxInt16 {
		return nil, fmt.Errorf("%v: target %d: %w", fn.Name(), target, ErrValueRange)
	}

	return Instruction{isa.MakeBranch(isa.Target(target))}, nil
}

func builtinIf(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var cond int
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &cond); err != nil {
		return nil, err
	}

	if cond < int(isa.COND_ZERO) || cond > int(isa.COND_NOT_ELSE) {
		return nil, fmt.Errorf("%v: %d: %w", fn.Name(), cond, ErrConditionInvalid)
	}

	return Instruction{isa.MakeIf(isa.Cond(cond))}, nil
}

// builtinSize returns the image size in bytes of a sequence of instructions.
func builtinSize(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var seq starlark.Iterable
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &seq); err != nil {
		return nil, err
	}

	insts, err := instructions(fn.Name(), seq)
	if err != nil {
		return nil, err
	}

	size := 0
	for _, inst := range insts {
		size += inst.Size()
	}

	return starlark.MakeInt(size), nil
}

// instructions converts a sequence of Starlark values to instructions.
func instructions(name string, seq starlark.Iterable) (insts []isa.Instruction, err error) {
	iter := seq.Iterate()
	defer iter.Done()

	var value starlark.Value
	for n := 0; iter.Next(&value); n++ {
		inst, ok := value.(Instruction)
		if !ok {
			err = &ErrElement{List: name, Index: n, Type: value.Type()}
			return
		}
		insts = append(insts, inst.Instruction)
	}

	return
}

// universe returns the predeclared names of a program script.
func universe() starlark.StringDict {
	dict := starlark.StringDict{
		"TEXT":   starlark.NewBuiltin("TEXT", builtinText),
		"CONST":  starlark.NewBuiltin("CONST", builtinConst),
		"DATA":   starlark.NewBuiltin("DATA", builtinData),
		"RAM":    starlark.NewBuiltin("RAM", builtinRam),
		"BRANCH": starlark.NewBuiltin("BRANCH", builtinBranch),
		"IF":     starlark.NewBuiltin("IF", builtinIf),
		"size":   starlark.NewBuiltin("size", builtinSize),

		"ZERO":     starlark.MakeInt(int(isa.COND_ZERO)),
		"NOT_ZERO": starlark.MakeInt(int(isa.COND_NOT_ZERO)),
		"ELSE":     starlark.MakeInt(int(isa.COND_ELSE)),
		"NOT_ELSE": starlark.MakeInt(int(isa.COND_NOT_ELSE)),
	}

	fixed := map[string]isa.Op{
		"NOP":           isa.OP_NOP,
		"HALT":          isa.OP_HALT,
		"PUSH":          isa.OP_PUSH,
		"POP":           isa.OP_POP,
		"NOT":           isa.OP_NOT,
		"OUT_LO":        isa.OP_OUT_LO,
		"SET_DP":        isa.OP_SET_DP,
		"LOAD_INDIRECT": isa.OP_LOAD_INDIRECT,
	}
	for name, op := range fixed {
		dict[name] = Instruction{isa.MakeFixed(op)}
	}

	for _, op := range isa.Ops() {
		if op.Class() == isa.CLASS_UNARY {
			unary := makeUnary(op)
			dict[unary.Name()] = unary
		}
	}

	return dict
}
