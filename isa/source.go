package isa

import (
	"fmt"
)

// ByteInWord selects the half of a 16-bit operand an 8-bit value occupies.
type ByteInWord int

//go:generate go tool stringer -linecomment -type=ByteInWord
const (
	BYTE_LO = ByteInWord(0) // lo
	BYTE_HI = ByteInWord(1) // hi
)

// AddressingMode is a RAM addressing mode.
type AddressingMode int

//go:generate go tool stringer -linecomment -type=AddressingMode
const (
	MODE_DIRECT   = AddressingMode(0) // direct
	MODE_INDIRECT = AddressingMode(1) // indirect
)

// Base is the register a RAM address is offset from.
type Base int

//go:generate go tool stringer -linecomment -type=Base
const (
	BASE_DP = Base(0) // dp
	BASE_SP = Base(1) // sp
)

// SourceKind is the operand addressing form.
type SourceKind int

//go:generate go tool stringer -linecomment -type=SourceKind
const (
	SOURCE_CONST = SourceKind(0) // const
	SOURCE_DATA  = SourceKind(1) // data
	SOURCE_RAM   = SourceKind(2) // ram
)

// Operand bits 10-8 of a unary word.
const (
	SOURCE_BIT_HALF = 0x0100 // BYTE_HI, or MODE_INDIRECT for RAM.
	SOURCE_BIT_DATA = 0x0200 // External data port, or BASE_SP for RAM.
	SOURCE_BIT_RAM  = 0x0400 // RAM addressing.
	SOURCE_MASK     = 0x07FF
)

// Source is the operand of a unary instruction.
//
// Half is used by SOURCE_CONST and SOURCE_DATA. Mode and Base are used by
// SOURCE_RAM. Value is the immediate for SOURCE_CONST and the address for
// SOURCE_RAM.
type Source struct {
	Kind  SourceKind
	Half  ByteInWord
	Value uint8
	Mode  AddressingMode
	Base  Base
}

// MakeConst creates an immediate constant source.
func MakeConst(half ByteInWord, value uint8) Source {
	return Source{Kind: SOURCE_CONST, Half: half, Value: value}
}

// MakeData creates an external data port source.
func MakeData(half ByteInWord) Source {
	return Source{Kind: SOURCE_DATA, Half: half}
}

// MakeRam creates a data-pointer relative RAM source.
func MakeRam(mode AddressingMode, address uint8) Source {
	return MakeRamRelative(BASE_DP, mode, address)
}

// MakeRamRelative creates a RAM source offset from the given base register.
func MakeRamRelative(base Base, mode AddressingMode, address uint8) Source {
	return Source{Kind: SOURCE_RAM, Value: address, Mode: mode, Base: base}
}

func (half ByteInWord) encode() uint16 {
	if half == BYTE_HI {
		return SOURCE_BIT_HALF
	}
	return 0
}

// Encode returns operand bits 10-0 of the source.
func (src Source) Encode() (bits uint16) {
	switch src.Kind {
	case SOURCE_CONST:
		bits = src.Half.encode() | uint16(src.Value)
	case SOURCE_DATA:
		bits = SOURCE_BIT_DATA | src.Half.encode()
	case SOURCE_RAM:
		bits = SOURCE_BIT_RAM | uint16(src.Value)
		if src.Base == BASE_SP {
			bits |= SOURCE_BIT_DATA
		}
		if src.Mode == MODE_INDIRECT {
			bits |= SOURCE_BIT_HALF
		}
	default:
		panic("isa: unknown source " + src.Kind.String())
	}

	return
}

// DecodeSource decodes operand bits 10-0 of a unary word.
func DecodeSource(bits uint16) (src Source) {
	half := BYTE_LO
	if (bits & SOURCE_BIT_HALF) != 0 {
		half = BYTE_HI
	}

	switch {
	case (bits & SOURCE_BIT_RAM) != 0:
		mode := MODE_DIRECT
		if (bits & SOURCE_BIT_HALF) != 0 {
			mode = MODE_INDIRECT
		}
		base := BASE_DP
		if (bits & SOURCE_BIT_DATA) != 0 {
			base = BASE_SP
		}
		src = MakeRamRelative(base, mode, uint8(bits&0xff))
	case (bits & SOURCE_BIT_DATA) != 0:
		src = MakeData(half)
	default:
		src = MakeConst(half, uint8(bits&0xff))
	}

	return
}

// String returns the assembly representation of the source.
func (src Source) String() (out string) {
	switch src.Kind {
	case SOURCE_CONST:
		out = fmt.Sprintf("#0x%02x", src.Value)
		if src.Half == BYTE_HI {
			out += ".hi"
		}
	case SOURCE_DATA:
		out = "data"
		if src.Half == BYTE_HI {
			out += ".hi"
		}
	case SOURCE_RAM:
		out = fmt.Sprintf("[0x%02x]", src.Value)
		if src.Mode == MODE_INDIRECT {
			out = "[" + out + "]"
		}
		if src.Base == BASE_SP {
			out = "sp" + out
		}
	default:
		out = src.Kind.String()
	}

	return
}

// Target is a signed branch displacement in encoded bytes.
// Only the low 11 bits are encoded.
type Target int16

const (
	TARGET_BITS = 11
	TARGET_MASK = (1 << TARGET_BITS) - 1
	TARGET_MIN  = -(1 << (TARGET_BITS - 1))
	TARGET_MAX  = (1 << (TARGET_BITS - 1)) - 1
)

// Encode returns the two's complement displacement truncated to 11 bits.
func (t Target) Encode() uint16 {
	return uint16(t) & TARGET_MASK
}

// DecodeTarget sign-extends an 11-bit displacement.
func DecodeTarget(bits uint16) Target {
	bits &= TARGET_MASK
	if (bits & (1 << (TARGET_BITS - 1))) != 0 {
		bits |= ^uint16(TARGET_MASK)
	}
	return Target(int16(bits))
}

// InRange returns true if the displacement survives 11-bit truncation.
func (t Target) InRange() bool {
	return t >= TARGET_MIN && t <= TARGET_MAX
}

// Cond is a condition code gating the branch that follows an If.
type Cond int

//go:generate go tool stringer -linecomment -type=Cond
const (
	COND_ZERO     = Cond(0) // z
	COND_NOT_ZERO = Cond(1) // nz
	COND_ELSE     = Cond(2) // else
	COND_NOT_ELSE = Cond(3) // nelse
)

// COND_MASK selects the condition bits of an If word.
const COND_MASK = 0x3

// Encode returns the 2-bit condition code.
func (cond Cond) Encode() uint16 {
	return uint16(cond) & COND_MASK
}
