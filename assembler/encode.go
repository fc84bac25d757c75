package assembler

import (
	"fmt"
	"strconv"

	"mipsasm/mips"
)

// encode packs canonical operand tokens into one instruction word.
// Faults are reported to the listing and leave their fields zero; a
// fault that invalidates the whole layout yields the zero word.
func (asm *Assembler) encode(parts []string) uint32 {
	if len(parts) == 0 {
		fmt.Fprintf(asm.listing, "Error: Empty instruction can't be converted to binary.\n")
		return 0
	}
	spec, ok := mips.Instructions[parts[0]]
	if !ok {
		fmt.Fprintf(asm.listing, "Error: Instruction %s is not supported.\n", parts[0])
		return 0
	}

	word := spec.Opcode << mips.ShiftOpcode

	switch spec.Format {
	case mips.FormatRegister:
		if len(parts) == 2 {
			// Single-register form: jump through register.
			word |= asm.register(parts[1]) << mips.ShiftRs
			word |= spec.Funct
			break
		}
		if len(parts) != 4 {
			fmt.Fprintf(asm.listing, "Error: Wrong amount of arguments for instruction type R: %d.\n", len(parts))
			return 0
		}
		word |= asm.register(parts[2]) << mips.ShiftRs
		word |= asm.register(parts[3]) << mips.ShiftRt
		word |= asm.register(parts[1]) << mips.ShiftRd
		word |= spec.Funct

	case mips.FormatShift:
		// Shifts are R-format, so the arity message says so too.
		if len(parts) != 4 {
			fmt.Fprintf(asm.listing, "Error: Wrong amount of arguments for instruction type R: %d.\n", len(parts))
			return 0
		}
		word |= asm.register(parts[2]) << mips.ShiftRt
		word |= asm.register(parts[1]) << mips.ShiftRd
		// The shift amount is not range-checked; out-of-range values
		// spill into neighboring fields.
		word |= uint32(atoi(parts[3])) << mips.ShiftShamt
		word |= spec.Funct

	case mips.FormatImmediate:
		if len(parts) != 3 && len(parts) != 4 {
			fmt.Fprintf(asm.listing, "Error: Wrong amount of arguments for instruction type I: %d.\n", len(parts))
			return 0
		}
		word |= asm.register(parts[2]) << mips.ShiftRs
		word |= asm.register(parts[1]) << mips.ShiftRt
		if len(parts) == 4 {
			// Negative values truncate to their two's-complement low
			// half-word.
			word |= uint32(atoi(parts[3])) & mips.MaskImmediate
		}

	case mips.FormatJump:
		if len(parts) != 2 {
			fmt.Fprintf(asm.listing, "Error: Wrong amount of arguments for instruction type J: %d.\n", len(parts))
			return 0
		}
		word |= uint32(atoi(parts[1])) & mips.MaskTarget

	case mips.FormatNull:
		word = 0
	}

	return word
}

// atoi is strconv.Atoi with unparsable input collapsing to zero.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
