// Package programs contains the built-in sample programs.
package programs

import (
	"maps"
	"slices"

	"github.com/ezrec/tinyasm/isa"
	"github.com/ezrec/tinyasm/mem"
)

var (
	nop          = isa.MakeFixed(isa.OP_NOP)
	halt         = isa.MakeFixed(isa.OP_HALT)
	not          = isa.MakeFixed(isa.OP_NOT)
	outLo        = isa.MakeFixed(isa.OP_OUT_LO)
	loadIndirect = isa.MakeFixed(isa.OP_LOAD_INDIRECT)
)

func imm(value uint8) isa.Source { return isa.MakeConst(isa.BYTE_LO, value) }
func data() isa.Source { return isa.MakeData(isa.BYTE_LO) }
func ram(address uint8) isa.Source { return isa.MakeRam(isa.MODE_DIRECT, address) }
func ramIndirect(addr uint8) isa.Source { return isa.MakeRam(isa.MODE_INDIRECT, addr) }

func load(src isa.Source) isa.Instruction { return isa.MakeUnary(isa.OP_LOAD, src) }
func store(src isa.Source) isa.Instruction { return isa.MakeUnary(isa.OP_STORE, src) }
func add(src isa.Source) isa.Instruction { return isa.MakeUnary(isa.OP_ADD, src) }
func sub(src isa.Source) isa.Instruction { return isa.MakeUnary(isa.OP_SUB, src) }
func and(src isa.Source) isa.Instruction { return isa.MakeUnary(isa.OP_AND, src) }
func or(src isa.Source) isa.Instruction { return isa.MakeUnary(isa.OP_OR, src) }
func xor(src isa.Source) isa.Instruction { return isa.MakeUnary(isa.OP_XOR, src) }

func branch(target isa.Target) isa.Instruction { return isa.MakeBranch(target) }
func when(cond isa.Cond) isa.Instruction { return isa.MakeIf(cond) }

var all = map[string]func() *mem.Program{
	"ops":      Ops,
	"fib_memo": FibMemo,
}

// All returns the built-in programs by name.
func All() map[string]func() *mem.Program {
	return maps.Clone(all)
}

// Names returns the sorted names of the built-in programs.
func Names() []string {
	return slices.Sorted(maps.Keys(all))
}

// Ops exercises each instruction in turn. Each stanza ends with an outlo
// (and padding nops) so a test bench can single step and check the port.
func Ops() *mem.Program {
	return &mem.Program{
		Name: "ops",
		Instructions: []isa.Instruction{
			nop,
			nop,
			nop,
			nop,
			// Immediates
			load(imm(0x14)),
			add(imm(0x1e)),
			outLo,
			nop,
			// Data port
			load(data()),
			add(imm(0x1e)),
			outLo,
			nop,
			// RAM read
			load(ram(0x20)),
			add(ram(0x22)),
			outLo,
			nop,
			// Branch forward, over inline text
			branch(0x0010),
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			isa.MakeText(0x00),
			isa.MakeText(0x14),
			isa.MakeText(0x00),
			isa.MakeText(0x1E),
			// Branch forward and back
			load(imm(0x5A)),
			branch(0x0008),
			load(imm(0xA5)),
			outLo,
			nop,
			load(imm(0x00)),
			branch(-12),
			outLo,
			nop,
			// Conditional branch
			load(data()),
			when(isa.COND_NOT_ZERO),
			branch(-8),
			// RAM store
			load(imm(0x09)),
			store(ram(0x20)),
			load(imm(0x33)),
			load(ram(0x20)),
			add(ram(0x22)),
			outLo,
			nop,
			nop,
			nop,
			nop,
			nop,
			// ALU
			load(imm(0xFF)),
			sub(imm(0xEE)),
			outLo,
			nop,
			nop,
			nop,
			load(imm(0xF0)),
			and(imm(0x3C)),
			outLo,
			nop,
			nop,
			nop,
			load(imm(0xF0)),
			or(imm(0x3C)),
			outLo,
			nop,
			nop,
			nop,
			load(imm(0xF0)),
			xor(imm(0x3C)),
			outLo,
			nop,
			nop,
			nop,
			// Not
			load(imm(0xA5)),
			not,
			outLo,
			// Load indirect
			load(imm(0x20)),
			loadIndirect,
			outLo,
			// Indirect addressing
			load(imm(0x22)),
			store(ram(0x1E)),
			load(imm(0)),
			load(ramIndirect(0x1E)),
			outLo,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
		},
	}
}

// FibMemo reads n from the data port and outputs fib(n), memoizing each
// term in RAM.
func FibMemo() *mem.Program {
	// RAM layout. The memo cache holds 16-bit entries.
	const (
		target  = 0x50
		current = 0x52
		cursor  = 0x54
		cache   = 0x58
	)

	// Branch displacements are relative to the word after each branch.
	const (
		br0       = 0x12
		br1       = 0x18
		loopLabel = 0x1C
		br2       = 0x3C
		br3       = 0x44
		done      = 0x44
	)

	return &mem.Program{
		Name: "fib_memo",
		Instructions: []isa.Instruction{
			load(data()),
			store(ram(target)),
			load(imm(1)),
			store(ram(cache)),
			load(imm(1)),
			store(ram(cache + 2)),
			load(ram(target)),
			when(isa.COND_ZERO),
			branch(done - br0),
			sub(imm(1)),
			when(isa.COND_ZERO),
			branch(done - br1),
			load(imm(2)),
			store(ram(current)),
			// loop
			load(ram(current)),
			add(ram(current)),
			add(imm(cache)),
			store(ram(cursor)),
			sub(imm(2)),
			loadIndirect,
			store(ramIndirect(cursor)),
			load(ram(cursor)),
			sub(imm(4)),
			loadIndirect,
			add(ramIndirect(cursor)),
			store(ramIndirect(cursor)),
			outLo,
			nop,
			load(ram(target)),
			sub(ram(current)),
			when(isa.COND_ZERO),
			branch(done - br2),
			load(ram(current)),
			add(imm(1)),
			store(ram(current)),
			branch(loopLabel - br3),
			// done
			load(ram(target)),
			add(ram(target)),
			add(imm(cache)),
			loadIndirect,
			outLo,
			halt,
			// target
			nop,
			nop,
			// current
			nop,
			nop,
			// cursor
			nop,
			nop,
			// cache
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
			nop,
		},
	}
}
