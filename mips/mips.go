// Package mips defines the instruction set tables and the bit layout
// shared by the assembler and the disassembler.
package mips

// Format selects the operand layout an instruction is encoded with.
type Format int

const (
	// FormatNull encodes as the all-zero word.
	FormatNull Format = iota
	// FormatRegister is the three-register arithmetic/logic layout.
	FormatRegister
	// FormatShift is the register layout with a literal shift amount.
	FormatShift
	// FormatImmediate carries a 16-bit literal in the low half-word.
	FormatImmediate
	// FormatJump carries a 26-bit word-address index.
	FormatJump
)

// Spec holds the fixed numeric identity of one instruction.
type Spec struct {
	Opcode uint32
	Funct  uint32
	Format Format
}

// Instructions maps every supported mnemonic to its encoding spec.
// Initialized once, read-only afterwards.
var Instructions = map[string]Spec{
	// Register arithmetic and logic
	"add":  {0x00, 0x20, FormatRegister},
	"addu": {0x00, 0x21, FormatRegister},
	"sub":  {0x00, 0x22, FormatRegister},
	"subu": {0x00, 0x23, FormatRegister},
	"and":  {0x00, 0x24, FormatRegister},
	"or":   {0x00, 0x25, FormatRegister},
	"xor":  {0x00, 0x26, FormatRegister},
	"nor":  {0x00, 0x27, FormatRegister},
	"slt":  {0x00, 0x2a, FormatRegister},
	"sltu": {0x00, 0x2b, FormatRegister},
	"jr":   {0x00, 0x08, FormatRegister},

	// Shifts
	"sll": {0x00, 0x00, FormatShift},
	"srl": {0x00, 0x02, FormatShift},
	"sra": {0x00, 0x03, FormatShift},

	// Immediate arithmetic and logic
	"addi":  {0x08, 0x00, FormatImmediate},
	"addiu": {0x09, 0x00, FormatImmediate},
	"slti":  {0x0a, 0x00, FormatImmediate},
	"sltiu": {0x0b, 0x00, FormatImmediate},
	"andi":  {0x0c, 0x00, FormatImmediate},
	"ori":   {0x0d, 0x00, FormatImmediate},
	"xori":  {0x0e, 0x00, FormatImmediate},
	"lui":   {0x0f, 0x00, FormatImmediate},

	// Loads and stores
	"lb":  {0x20, 0x00, FormatImmediate},
	"lw":  {0x23, 0x00, FormatImmediate},
	"lbu": {0x24, 0x00, FormatImmediate},
	"sb":  {0x28, 0x00, FormatImmediate},
	"sw":  {0x2b, 0x00, FormatImmediate},

	// Branches and jumps
	"beq": {0x04, 0x00, FormatImmediate},
	"bne": {0x05, 0x00, FormatImmediate},
	"j":   {0x02, 0x00, FormatJump},
	"jal": {0x03, 0x00, FormatJump},

	"nop": {0x00, 0x00, FormatNull},
}

// Field positions within an encoded word.
const (
	ShiftOpcode = 26 // bits 31-26
	ShiftRs     = 21 // bits 25-21
	ShiftRt     = 16 // bits 20-16
	ShiftRd     = 11 // bits 15-11
	ShiftShamt  = 6  // bits 10-6
)

// Field masks, applied after shifting.
const (
	MaskRegister  = 0x1f
	MaskFunct     = 0x3f
	MaskImmediate = 0xffff
	MaskTarget    = 0x3ffffff
)

// Opcode extracts bits 31-26.
func Opcode(w uint32) uint32 { return w >> ShiftOpcode }

// Rs extracts bits 25-21.
func Rs(w uint32) uint32 { return w >> ShiftRs & MaskRegister }

// Rt extracts bits 20-16.
func Rt(w uint32) uint32 { return w >> ShiftRt & MaskRegister }

// Rd extracts bits 15-11.
func Rd(w uint32) uint32 { return w >> ShiftRd & MaskRegister }

// Shamt extracts bits 10-6.
func Shamt(w uint32) uint32 { return w >> ShiftShamt & MaskRegister }

// Funct extracts bits 5-0.
func Funct(w uint32) uint32 { return w & MaskFunct }

// Immediate extracts bits 15-0.
func Immediate(w uint32) uint32 { return w & MaskImmediate }

// Target extracts bits 25-0.
func Target(w uint32) uint32 { return w & MaskTarget }
