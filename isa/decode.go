package isa

var byteOp = map[uint8]Op{}
var prefixOp = map[uint8]Op{}

func init() {
	for op, value := range fixedByte {
		byteOp[value] = op
	}
	for op, prefix := range wordPrefix {
		if op == OP_IF {
			continue
		}
		prefixOp[prefix] = op
	}
}

// decodeWide determines the op of a word from its high byte.
func decodeWide(hi uint8) (op Op, ok bool) {
	if hi == PREFIX_IF {
		return OP_IF, true
	}
	if (hi & 0x80) == 0 {
		return
	}
	op, ok = prefixOp[hi&PREFIX_MASK]
	return
}

// Decode decodes the instruction at the start of data, and returns the
// number of bytes consumed.
//
// Decoding is a best effort inverse of Encode: a byte that is neither a
// fixed opcode nor the start of a word decodes as OP_TEXT, and a text byte
// that happens to match an opcode decodes as that opcode.
func Decode(data []byte) (inst Instruction, n int, err error) {
	if len(data) == 0 {
		err = ErrDecodeEmpty
		return
	}

	hi := data[0]

	op, wide := decodeWide(hi)
	if !wide {
		fixed, ok := byteOp[hi]
		if ok {
			inst = MakeFixed(fixed)
		} else {
			inst = MakeText(hi)
		}
		n = 1
		return
	}

	if len(data) < 2 {
		err = ErrDecodeShort
		return
	}

	word := (uint16(hi) << 8) | uint16(data[1])

	switch op.Class() {
	case CLASS_UNARY:
		inst = MakeUnary(op, DecodeSource(word&SOURCE_MASK))
	case CLASS_BRANCH:
		inst = MakeBranch(DecodeTarget(word))
	case CLASS_IF:
		inst = MakeIf(Cond(word & COND_MASK))
	}
	n = 2

	return
}
