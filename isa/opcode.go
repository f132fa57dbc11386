package isa

// Op is an instruction form.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_TEXT          = Op(0)  // text
	OP_NOP           = Op(1)  // nop
	OP_HALT          = Op(2)  // halt
	OP_PUSH          = Op(3)  // push
	OP_POP           = Op(4)  // pop
	OP_NOT           = Op(5)  // not
	OP_OUT_LO        = Op(6)  // outlo
	OP_SET_DP        = Op(7)  // setdp
	OP_LOAD_INDIRECT = Op(8)  // ldi
	OP_LOAD          = Op(9)  // load
	OP_STORE         = Op(10) // store
	OP_ADD           = Op(11) // add
	OP_SUB           = Op(12) // sub
	OP_AND           = Op(13) // and
	OP_OR            = Op(14) // or
	OP_XOR           = Op(15) // xor
	OP_BRANCH        = Op(16) // br
	OP_IF            = Op(17) // if
)

// Class is the operand shape of an Op.
type Class int

//go:generate go tool stringer -linecomment -type=Class
const (
	CLASS_TEXT   = Class(0) // text
	CLASS_FIXED  = Class(1) // fixed
	CLASS_UNARY  = Class(2) // unary
	CLASS_BRANCH = Class(3) // branch
	CLASS_IF     = Class(4) // if
)

// Fixed-function opcode bytes.
const (
	BYTE_NOP           = 0x00
	BYTE_HALT          = 0x01
	BYTE_PUSH          = 0x04
	BYTE_POP           = 0x05
	BYTE_NOT           = 0x07
	BYTE_OUT_LO        = 0x08
	BYTE_SET_DP        = 0x0A
	BYTE_LOAD_INDIRECT = 0x44
)

// Word opcode prefixes, placed in bits 15-8.
const (
	PREFIX_LOAD   = 0x80
	PREFIX_ADD    = 0x88
	PREFIX_STORE  = 0x90
	PREFIX_SUB    = 0x98
	PREFIX_AND    = 0xA0
	PREFIX_OR     = 0xA8
	PREFIX_XOR    = 0xB0
	PREFIX_BRANCH = 0xC0
	PREFIX_IF     = 0xF0
)

// PREFIX_MASK selects the prefix bits of a unary or branch high byte. The low
// three bits carry operand or displacement bits 10-8.
const PREFIX_MASK = 0xF8

var fixedByte = map[Op]uint8{
	OP_NOP:           BYTE_NOP,
	OP_HALT:          BYTE_HALT,
	OP_PUSH:          BYTE_PUSH,
	OP_POP:           BYTE_POP,
	OP_NOT:           BYTE_NOT,
	OP_OUT_LO:        BYTE_OUT_LO,
	OP_SET_DP:        BYTE_SET_DP,
	OP_LOAD_INDIRECT: BYTE_LOAD_INDIRECT,
}

var wordPrefix = map[Op]uint8{
	OP_LOAD:   PREFIX_LOAD,
	OP_STORE:  PREFIX_STORE,
	OP_ADD:    PREFIX_ADD,
	OP_SUB:    PREFIX_SUB,
	OP_AND:    PREFIX_AND,
	OP_OR:     PREFIX_OR,
	OP_XOR:    PREFIX_XOR,
	OP_BRANCH: PREFIX_BRANCH,
	OP_IF:     PREFIX_IF,
}

// Class returns the operand shape of the op.
func (op Op) Class() Class {
	switch {
	case op == OP_TEXT:
		return CLASS_TEXT
	case op >= OP_NOP && op <= OP_LOAD_INDIRECT:
		return CLASS_FIXED
	case op >= OP_LOAD && op <= OP_XOR:
		return CLASS_UNARY
	case op == OP_BRANCH:
		return CLASS_BRANCH
	case op == OP_IF:
		return CLASS_IF
	}

	panic("isa: unknown op " + op.String())
}

// Wide returns true if the op encodes to a 16-bit word.
func (op Op) Wide() bool {
	switch op.Class() {
	case CLASS_TEXT, CLASS_FIXED:
		return false
	default:
		return true
	}
}

// Size returns the encoded size of the op in bytes.
func (op Op) Size() int {
	if op.Wide() {
		return 2
	}
	return 1
}

// Byte returns the fixed opcode byte, if the op has one.
func (op Op) Byte() (value uint8, ok bool) {
	value, ok = fixedByte[op]
	return
}

// Prefix returns the word opcode prefix, if the op has one.
func (op Op) Prefix() (prefix uint8, ok bool) {
	prefix, ok = wordPrefix[op]
	return
}

// Ops returns every instruction form in enum order.
func Ops() (ops []Op) {
	for op := OP_TEXT; op <= OP_IF; op++ {
		ops = append(ops, op)
	}
	return
}
