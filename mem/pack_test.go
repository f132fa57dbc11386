package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/tinyasm/isa"
)

func TestPackWord(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([2]byte{0x80, 0x14}, PackWord(0x8014))
	assert.Equal([2]byte{0xf0, 0x01}, PackWord(0xf001))
	assert.Equal([2]byte{0x00, 0xff}, PackWord(0x00ff))
}

func TestPack(t *testing.T) {
	assert := assert.New(t)

	codes := []isa.Encoded{
		isa.MakeUnary(isa.OP_LOAD, isa.MakeConst(isa.BYTE_LO, 0x14)).Encode(),
		isa.MakeUnary(isa.OP_ADD, isa.MakeConst(isa.BYTE_LO, 0x1e)).Encode(),
		isa.MakeFixed(isa.OP_OUT_LO).Encode(),
		isa.MakeFixed(isa.OP_NOP).Encode(),
	}

	data := Pack(codes)
	assert.Equal([]byte{0x80, 0x14, 0x88, 0x1e, 0x08, 0x00}, data)
	assert.Equal(len(data), cap(data))

	assert.Equal([]byte{}, Pack(nil))
}

func TestAppendCode(t *testing.T) {
	assert := assert.New(t)

	data := AppendCode(nil, isa.MakeByte(0x44))
	data = AppendCode(data, isa.MakeWord(0xc7f4))
	data = AppendCode(data, isa.MakeByte(0x01))

	assert.Equal([]byte{0x44, 0xc7, 0xf4, 0x01}, data)
}
