// Package disassembler renders encoded instruction words back into
// assembly source text.
package disassembler

import (
	"fmt"

	"mipsasm/mips"
)

type opEntry struct {
	name   string
	format mips.Format
}

// Reverse lookup tables, derived from the shared instruction table.
var (
	registerByFunct = map[uint32]string{}
	shiftByFunct    = map[uint32]string{}
	byOpcode        = map[uint32]opEntry{}
)

func init() {
	for name, spec := range mips.Instructions {
		switch spec.Format {
		case mips.FormatRegister:
			registerByFunct[spec.Funct] = name
		case mips.FormatShift:
			shiftByFunct[spec.Funct] = name
		case mips.FormatImmediate, mips.FormatJump:
			byOpcode[spec.Opcode] = opEntry{name, spec.Format}
		}
	}
}

// Disassemble renders one instruction word as assembly source. Words
// that decode to no known instruction render as a .word directive.
func Disassemble(w uint32) string {
	if w == 0 {
		return "nop"
	}
	op := mips.Opcode(w)
	if op == 0 {
		return disassembleRegister(w)
	}
	e, ok := byOpcode[op]
	if !ok {
		return fmt.Sprintf(".word 0x%08x", w)
	}
	if e.format == mips.FormatJump {
		return fmt.Sprintf("%s %d", e.name, mips.Target(w))
	}
	return disassembleImmediate(e.name, w)
}

// disassembleRegister handles the opcode-zero space: register triples,
// shifts and the jump-through-register form.
func disassembleRegister(w uint32) string {
	funct := mips.Funct(w)
	if name, ok := shiftByFunct[funct]; ok && mips.Rs(w) == 0 {
		return fmt.Sprintf("%s %s, %s, %d", name, reg(mips.Rd(w)), reg(mips.Rt(w)), mips.Shamt(w))
	}
	name, ok := registerByFunct[funct]
	if !ok {
		return fmt.Sprintf(".word 0x%08x", w)
	}
	if name == "jr" {
		return fmt.Sprintf("jr %s", reg(mips.Rs(w)))
	}
	return fmt.Sprintf("%s %s, %s, %s", name, reg(mips.Rd(w)), reg(mips.Rs(w)), reg(mips.Rt(w)))
}

// disassembleImmediate renders the I-format families in the operand
// order the assembler accepts, so its output reassembles to the same
// word wherever the source syntax allows.
func disassembleImmediate(name string, w uint32) string {
	imm := int16(mips.Immediate(w))
	switch name {
	case "lb", "lbu", "lw", "sb", "sw":
		return fmt.Sprintf("%s %s, %d(%s)", name, reg(mips.Rt(w)), imm, reg(mips.Rs(w)))
	case "beq", "bne":
		return fmt.Sprintf("%s %s, %s, %d", name, reg(mips.Rs(w)), reg(mips.Rt(w)), imm)
	case "lui":
		return fmt.Sprintf("lui %s, %d", reg(mips.Rt(w)), mips.Immediate(w))
	}
	return fmt.Sprintf("%s %s, %s, %d", name, reg(mips.Rt(w)), reg(mips.Rs(w)), imm)
}

func reg(n uint32) string {
	return mips.RegisterNames[n]
}
