package isa

import (
	"fmt"
)

// Instruction is a single encodable instruction.
//
// Value is the literal byte of OP_TEXT. Source is the operand of the unary
// ops, Target the displacement of OP_BRANCH, and Cond the condition of OP_IF.
type Instruction struct {
	Op     Op
	Value  uint8
	Source Source
	Target Target
	Cond   Cond
}

// MakeText creates a literal byte spliced into the instruction stream.
func MakeText(value uint8) Instruction {
	return Instruction{Op: OP_TEXT, Value: value}
}

// MakeFixed creates a fixed-function instruction.
func MakeFixed(op Op) Instruction {
	return Instruction{Op: op}
}

// MakeUnary creates a load, store or ALU instruction.
func MakeUnary(op Op, src Source) Instruction {
	return Instruction{Op: op, Source: src}
}

// MakeBranch creates an unconditional relative branch.
func MakeBranch(target Target) Instruction {
	return Instruction{Op: OP_BRANCH, Target: target}
}

// MakeIf creates a conditional gate for the following branch.
func MakeIf(cond Cond) Instruction {
	return Instruction{Op: OP_IF, Cond: cond}
}

// Size returns the encoded size of the instruction in bytes.
func (inst Instruction) Size() int {
	return inst.Op.Size()
}

// Encode returns the binary encoding of the instruction.
func (inst Instruction) Encode() (code Encoded) {
	op := inst.Op

	switch op.Class() {
	case CLASS_TEXT:
		code = MakeByte(inst.Value)
	case CLASS_FIXED:
		code = MakeByte(fixedByte[op])
	case CLASS_UNARY:
		code = makePrefixed(wordPrefix[op], inst.Source.Encode())
	case CLASS_BRANCH:
		code = makePrefixed(PREFIX_BRANCH, inst.Target.Encode())
	case CLASS_IF:
		code = makePrefixed(PREFIX_IF, inst.Cond.Encode())
	}

	return
}

// makePrefixed places an opcode prefix in bits 15-8 and ors in the operand.
func makePrefixed(prefix uint8, operand uint16) Encoded {
	return MakeWord((uint16(prefix) << 8) | operand)
}

// String returns the assembly language representation of this instruction.
func (inst Instruction) String() (out string) {
	op := inst.Op

	switch op.Class() {
	case CLASS_TEXT:
		out = fmt.Sprintf(".%v 0x%02x", op.String(), inst.Value)
	case CLASS_FIXED:
		out = op.String()
	case CLASS_UNARY:
		out = fmt.Sprintf("%v %v", op.String(), inst.Source.String())
	case CLASS_BRANCH:
		out = fmt.Sprintf("%v %+d", op.String(), int(inst.Target))
	case CLASS_IF:
		out = fmt.Sprintf("%v %v", op.String(), inst.Cond.String())
	}

	return
}
