package mem

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/tinyasm/isa"
)

func scenario() *Program {
	return &Program{
		Name: "scenario",
		Instructions: []isa.Instruction{
			isa.MakeUnary(isa.OP_LOAD, isa.MakeConst(isa.BYTE_LO, 0x14)),
			isa.MakeUnary(isa.OP_ADD, isa.MakeConst(isa.BYTE_LO, 0x1e)),
			isa.MakeFixed(isa.OP_OUT_LO),
			isa.MakeFixed(isa.OP_NOP),
		},
	}
}

func TestProgram_Codes(t *testing.T) {
	assert := assert.New(t)

	prog := scenario()

	offsets := []int{}
	codes := []isa.Encoded{}
	for offset, code := range prog.Codes() {
		offsets = append(offsets, offset)
		codes = append(codes, code)
	}

	assert.Equal([]int{0, 2, 4, 5}, offsets)
	assert.Equal([]isa.Encoded{
		isa.MakeWord(0x8014),
		isa.MakeWord(0x881e),
		isa.MakeByte(0x08),
		isa.MakeByte(0x00),
	}, codes)
	assert.Equal(codes, prog.Encode())
	assert.Equal(6, prog.Size())
	assert.Equal(len(prog.Binary()), prog.Size())

	// Early exit.
	for offset := range prog.Codes() {
		assert.Equal(0, offset)
		break
	}
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := scenario()
	data := prog.Binary()
	assert.Equal([]byte{0x80, 0x14, 0x88, 0x1e, 0x08, 0x00}, data)

	buff := &strings.Builder{}
	assert.NoError(WriteHex(buff, data))
	assert.Equal("1E881480\n00000008\n", buff.String())

	empty := &Program{}
	assert.Equal(0, empty.Size())
	assert.Empty(empty.Binary())
}

func TestProgram_Size(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{}
	bytes, words := 0, 0
	for _, op := range isa.Ops() {
		inst := isa.Instruction{Op: op}
		prog.Instructions = append(prog.Instructions, inst)
		if op.Wide() {
			words++
		} else {
			bytes++
		}
	}

	assert.Equal(bytes+2*words, prog.Size())
	assert.Equal(prog.Size(), len(prog.Binary()))
}

func TestProgram_Check(t *testing.T) {
	assert := assert.New(t)

	prog := scenario()
	assert.NoError(prog.Check(isa.REV_1))

	prog.Instructions = append(prog.Instructions,
		isa.MakeUnary(isa.OP_LOAD, isa.MakeData(isa.BYTE_LO)),
		isa.MakeIf(isa.COND_NOT_ZERO),
		isa.MakeBranch(-4),
	)
	assert.NoError(prog.Check(isa.REV_1))

	// If at the end of the program.
	prog.Instructions = append(prog.Instructions, isa.MakeIf(isa.COND_ZERO))
	err := prog.Check(isa.REV_3)
	assert.ErrorIs(err, ErrIfWithoutBranch)
	var cerr *ErrCheck
	assert.ErrorAs(err, &cerr)
	if cerr != nil {
		assert.Equal("scenario", cerr.Program)
		assert.Equal(7, cerr.Index)
		assert.Equal(12, cerr.Offset)
	}

	// If followed by something other than a branch.
	prog.Instructions = append(prog.Instructions, isa.MakeFixed(isa.OP_NOP))
	assert.ErrorIs(prog.Check(isa.REV_3), ErrIfWithoutBranch)

	// Revision errors are located too.
	prog = scenario()
	prog.Instructions = append(prog.Instructions, isa.MakeFixed(isa.OP_PUSH))
	err = prog.Check(isa.REV_1)
	var rerr *isa.ErrRevision
	assert.ErrorAs(err, &rerr)
	assert.ErrorAs(err, &cerr)
	if cerr != nil {
		assert.Equal(4, cerr.Index)
		assert.Equal(6, cerr.Offset)
	}
	assert.NoError(prog.Check(isa.REV_2))
}

func TestProgram_Listing(t *testing.T) {
	assert := assert.New(t)

	prog := scenario()
	prog.Instructions = append(prog.Instructions, isa.MakeBranch(-6))

	buff := &strings.Builder{}
	assert.NoError(prog.Listing(buff))

	expected := strings.Join([]string{
		"0000: 80 14  load #0x14",
		"0002: 88 1E  add #0x1e",
		"0004: 08     outlo",
		"0005: 00     nop",
		"0006: C7 FA  br -6",
		"",
	}, "\n")
	assert.Equal(expected, buff.String())
}

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	prog := scenario()

	dis, err := Disassemble("dis", prog.Binary())
	assert.NoError(err)
	assert.Equal("dis", dis.Name)
	assert.Equal(prog.Instructions, dis.Instructions)

	// Zero fill from a .mem round trip decodes as nops.
	data := append(prog.Binary(), 0x00, 0x00)
	dis, err = Disassemble("dis", data)
	assert.NoError(err)
	assert.Equal(6, len(dis.Instructions))

	_, err = Disassemble("short", []byte{0x08, 0x80})
	assert.ErrorIs(err, isa.ErrDecodeShort)
	var cerr *ErrCheck
	assert.ErrorAs(err, &cerr)
	if cerr != nil {
		assert.Equal(1, cerr.Index)
		assert.Equal(1, cerr.Offset)
	}
}
