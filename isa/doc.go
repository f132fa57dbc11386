// Package isa implements the instruction model and encoder for a small
// word-oriented 8/16-bit CPU.
//
// Every instruction encodes to exactly one byte or exactly one 16-bit word.
// Byte instructions are fixed-function opcodes (and raw text bytes spliced
// into the stream). Word instructions carry an opcode prefix in bits 15-8 and
// an operand in the remaining bits: a Source for the load/store/ALU ops, an
// 11-bit signed displacement for branches, or a 2-bit condition for the If
// gate that precedes a branch.
//
// Three revisions of the machine exist. The encoder always targets the most
// complete one (v3); Revision.Check reports instructions an older core would
// not understand.
package isa
