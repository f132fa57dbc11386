package mem

import (
	"github.com/ezrec/tinyasm/isa"
)

const (
	GROUP_SIZE = 4 // Bytes per .mem line.
)

// PackWord returns the image bytes of a word, high byte first.
func PackWord(word uint16) [2]byte {
	return [2]byte{uint8(word >> 8), uint8(word)}
}

// AppendCode appends the image bytes of an encoding.
func AppendCode(data []byte, code isa.Encoded) []byte {
	if !code.Wide {
		return append(data, uint8(code.Word))
	}

	packed := PackWord(code.Word)
	return append(data, packed[:]...)
}

// Pack flattens encodings into an image.
func Pack(codes []isa.Encoded) (data []byte) {
	size := 0
	for _, code := range codes {
		size += code.Size()
	}

	data = make([]byte, 0, size)
	for _, code := range codes {
		data = AppendCode(data, code)
	}

	return
}
