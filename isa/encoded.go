package isa

import (
	"fmt"
)

// Encoded is the encoding of one instruction: a byte, or a 16-bit word.
type Encoded struct {
	Word uint16 // Encoded value. Bytes use only the low 8 bits.
	Wide bool   // Set if the encoding is a 16-bit word.
}

// MakeByte creates a byte encoding.
func MakeByte(value uint8) Encoded {
	return Encoded{Word: uint16(value)}
}

// MakeWord creates a word encoding.
func MakeWord(word uint16) Encoded {
	return Encoded{Word: word, Wide: true}
}

// Size returns the encoded size in bytes.
func (code Encoded) Size() int {
	if code.Wide {
		return 2
	}
	return 1
}

// Byte returns the value of a byte encoding.
func (code Encoded) Byte() (value uint8, ok bool) {
	if code.Wide {
		return
	}
	return uint8(code.Word), true
}

// String returns the hex representation of the encoding.
func (code Encoded) String() string {
	if code.Wide {
		return fmt.Sprintf("%04X", code.Word)
	}
	return fmt.Sprintf("%02X", uint8(code.Word))
}
