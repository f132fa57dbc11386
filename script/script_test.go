package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/tinyasm/isa"
	"github.com/ezrec/tinyasm/programs"
)

func parse(program ...string) (names []string, progs map[string][]isa.Instruction, err error) {
	ld := &Loader{}
	list, err := ld.Parse("test.star", strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		return
	}

	progs = map[string][]isa.Instruction{}
	for _, prog := range list {
		names = append(names, prog.Name)
		progs[prog.Name] = prog.Instructions
	}
	return
}

func TestLoader(t *testing.T) {
	assert := assert.New(t)

	_, progs, err := parse(
		"scenario = [",
		"    LOAD(CONST(0x14)),",
		"    ADD(CONST(0x1E)),",
		"    OUT_LO,",
		"    NOP,",
		"]",
	)
	assert.NoError(err)

	assert.Equal(map[string][]isa.Instruction{
		"scenario": {
			isa.MakeUnary(isa.OP_LOAD, isa.MakeConst(isa.BYTE_LO, 0x14)),
			isa.MakeUnary(isa.OP_ADD, isa.MakeConst(isa.BYTE_LO, 0x1e)),
			isa.MakeFixed(isa.OP_OUT_LO),
			isa.MakeFixed(isa.OP_NOP),
		},
	}, progs)
}

func TestLoaderBuiltins(t *testing.T) {
	assert := assert.New(t)

	_, progs, err := parse(
		"every = [",
		"    TEXT(0xA5),",
		"    NOP, HALT, PUSH, POP, NOT, OUT_LO, SET_DP, LOAD_INDIRECT,",
		"    LOAD(CONST(0x14, hi = True)),",
		"    STORE(DATA()),",
		"    ADD(DATA(hi = True)),",
		"    SUB(RAM(0x20)),",
		"    AND(RAM(0x1E, indirect = True)),",
		"    OR(RAM(0, sp = True)),",
		"    XOR(RAM(0x10, indirect = True, sp = True)),",
		"    IF(NOT_ZERO),",
		"    BRANCH(-8),",
		"    IF(ELSE),",
		"    BRANCH(0x7F4),",
		"    IF(ZERO),",
		"    BRANCH(0),",
		"    IF(NOT_ELSE),",
		"    BRANCH(16),",
		"]",
	)
	assert.NoError(err)

	expected := []isa.Instruction{
		isa.MakeText(0xa5),
		isa.MakeFixed(isa.OP_NOP),
		isa.MakeFixed(isa.OP_HALT),
		isa.MakeFixed(isa.OP_PUSH),
		isa.MakeFixed(isa.OP_POP),
		isa.MakeFixed(isa.OP_NOT),
		isa.MakeFixed(isa.OP_OUT_LO),
		isa.MakeFixed(isa.OP_SET_DP),
		isa.MakeFixed(isa.OP_LOAD_INDIRECT),
		isa.MakeUnary(isa.OP_LOAD, isa.MakeConst(isa.BYTE_HI, 0x14)),
		isa.MakeUnary(isa.OP_STORE, isa.MakeData(isa.BYTE_LO)),
		isa.MakeUnary(isa.OP_ADD, isa.MakeData(isa.BYTE_HI)),
		isa.MakeUnary(isa.OP_SUB, isa.MakeRam(isa.MODE_DIRECT, 0x20)),
		isa.MakeUnary(isa.OP_AND, isa.MakeRam(isa.MODE_INDIRECT, 0x1e)),
		isa.MakeUnary(isa.OP_OR, isa.MakeRamRelative(isa.BASE_SP, isa.MODE_DIRECT, 0)),
		isa.MakeUnary(isa.OP_XOR, isa.MakeRamRelative(isa.BASE_SP, isa.MODE_INDIRECT, 0x10)),
		isa.MakeIf(isa.COND_NOT_ZERO),
		isa.MakeBranch(-8),
		isa.MakeIf(isa.COND_ELSE),
		isa.MakeBranch(0x7f4),
		isa.MakeIf(isa.COND_ZERO),
		isa.MakeBranch(0),
		isa.MakeIf(isa.COND_NOT_ELSE),
		isa.MakeBranch(16),
	}

	if diff := cmp.Diff(expected, progs["every"]); diff != "" {
		t.Errorf("every mismatch (-want +got):\n%s", diff)
	}
}

func TestLoaderGlobals(t *testing.T) {
	assert := assert.New(t)

	names, progs, err := parse(
		"_hidden = [NOP]",
		"empty = []",
		"numbers = [1, 2, 3]",
		"zeta = [HALT]",
		"alpha = [NOP] * 3 + [HALT]",
		"body = []",
		"for n in range(3):",
		"    body.append(LOAD(CONST(n)))",
		"header = [TEXT(size(body))]",
	)
	assert.NoError(err)

	assert.Equal([]string{"alpha", "body", "header", "zeta"}, names)
	assert.Equal(4, len(progs["alpha"]))
	assert.Equal(3, len(progs["body"]))
	assert.Equal([]isa.Instruction{isa.MakeText(6)}, progs["header"])
}

func TestLoaderPredefine(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{}
	ld.Predefine("BASE", 0x20)
	ld.Predefine("BASE", 0x30)
	ld.Predefine("STEP", 2)

	list, err := ld.Parse("predefine.star", strings.NewReader("prog = [LOAD(RAM(BASE + STEP))]"))
	assert.NoError(err)
	assert.Equal(1, len(list))
	assert.Equal([]isa.Instruction{
		isa.MakeUnary(isa.OP_LOAD, isa.MakeRam(isa.MODE_DIRECT, 0x32)),
	}, list[0].Instructions)
}

func TestLoaderErrors(t *testing.T) {
	table := []struct {
		name    string
		program string
		err     error
	}{
		{"text range", "p = [TEXT(256)]", ErrValueRange},
		{"const range", "p = [LOAD(CONST(-1))]", ErrValueRange},
		{"ram range", "p = [LOAD(RAM(0x100))]", ErrValueRange},
		{"branch range", "p = [BRANCH(40000)]", ErrValueRange},
		{"condition", "p = [IF(4)]", ErrConditionInvalid},
		{"mixed list", "p = [NOP, 1]", ErrNotInstruction},
		{"size", "x = size([NOP, CONST(1)])", ErrNotInstruction},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			_, _, err := parse(entry.program)
			assert.ErrorIs(err, entry.err)

			var serr *ErrScript
			assert.ErrorAs(err, &serr)
			if serr != nil {
				assert.Equal("test.star", serr.Name)
			}
		})
	}
}

func TestLoaderSyntax(t *testing.T) {
	assert := assert.New(t)

	_, _, err := parse("p = [LOAD(1)]")
	assert.ErrorContains(err, "want source")

	_, _, err = parse("p = [")
	var serr *ErrScript
	assert.ErrorAs(err, &serr)

	_, _, err = parse("p = [UNKNOWN]")
	assert.ErrorContains(err, "undefined: UNKNOWN")
}

func TestLoaderFibMemo(t *testing.T) {
	assert := assert.New(t)

	name := filepath.Join("testdata", "fib_memo.star")
	inf, err := os.Open(name)
	assert.NoError(err)
	if err != nil {
		return
	}
	defer inf.Close()

	ld := &Loader{Verbose: true}
	list, err := ld.Parse(name, inf)
	assert.NoError(err)
	if !assert.Equal(1, len(list)) {
		return
	}

	expected := programs.FibMemo()
	assert.Equal(expected.Name, list[0].Name)
	if diff := cmp.Diff(expected.Instructions, list[0].Instructions); diff != "" {
		t.Errorf("fib_memo mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(expected.Binary(), list[0].Binary())
}
