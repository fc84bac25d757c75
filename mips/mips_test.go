package mips_test

import (
	"testing"

	"mipsasm/mips"
)

func TestFieldAccessors(t *testing.T) {
	w := uint32(9)<<mips.ShiftRs |
		uint32(10)<<mips.ShiftRt |
		uint32(11)<<mips.ShiftRd |
		uint32(4)<<mips.ShiftShamt |
		0x20

	tests := []struct {
		name string
		get  func(uint32) uint32
		want uint32
	}{
		{"Opcode", mips.Opcode, 0},
		{"Rs", mips.Rs, 9},
		{"Rt", mips.Rt, 10},
		{"Rd", mips.Rd, 11},
		{"Shamt", mips.Shamt, 4},
		{"Funct", mips.Funct, 0x20},
	}
	for _, tc := range tests {
		if got := tc.get(w); got != tc.want {
			t.Errorf("%s(0x%08x) = %d, want %d", tc.name, w, got, tc.want)
		}
	}

	if got := mips.Opcode(0x8c000000); got != 0x23 {
		t.Errorf("Opcode(0x8c000000) = %#x, want 0x23", got)
	}
	if got := mips.Immediate(0xffffffff); got != 0xffff {
		t.Errorf("Immediate(0xffffffff) = %#x, want 0xffff", got)
	}
	if got := mips.Target(0xffffffff); got != 0x3ffffff {
		t.Errorf("Target(0xffffffff) = %#x, want 0x3ffffff", got)
	}
}

// Both register tables describe the same 32 registers.
func TestRegisterTablesAgree(t *testing.T) {
	if got := len(mips.Registers); got != len(mips.RegisterNames) {
		t.Fatalf("%d register tokens for %d names", got, len(mips.RegisterNames))
	}
	for tok, idx := range mips.Registers {
		if int(idx) >= len(mips.RegisterNames) {
			t.Errorf("register %s has index %d out of range", tok, idx)
			continue
		}
		if name := mips.RegisterNames[idx]; name != tok {
			t.Errorf("index %d is %s in one table and %s in the other", idx, tok, name)
		}
	}
}

// Opcode and function code placement must stay consistent per format,
// as the disassembler derives its reverse lookup tables from it.
func TestInstructionTableConsistency(t *testing.T) {
	for name, spec := range mips.Instructions {
		switch spec.Format {
		case mips.FormatRegister, mips.FormatShift:
			if spec.Opcode != 0 {
				t.Errorf("%s: register-format opcode must be 0, got %#x", name, spec.Opcode)
			}
			if spec.Funct > mips.MaskFunct {
				t.Errorf("%s: function code %#x exceeds 6 bits", name, spec.Funct)
			}
		case mips.FormatImmediate, mips.FormatJump:
			if spec.Opcode == 0 {
				t.Errorf("%s: missing opcode", name)
			}
			if spec.Funct != 0 {
				t.Errorf("%s: function code set on opcode-selected format", name)
			}
		case mips.FormatNull:
			if spec.Opcode != 0 || spec.Funct != 0 {
				t.Errorf("%s: null format must be all zero", name)
			}
		}
	}
}
