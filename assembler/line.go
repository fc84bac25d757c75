package assembler

// lineShape identifies which operand layout a source line matched.
type lineShape int

const (
	// shapeNone marks lines with no code: blank, comment-only or label-only.
	shapeNone lineShape = iota
	// shapeNoOperand is a bare mnemonic.
	shapeNoOperand
	// shapeSingleOperand is a mnemonic with one whitespace-free operand.
	shapeSingleOperand
	// shapeBaseOffset is the load/store form: register, offset(base).
	shapeBaseOffset
	// shapeTripleOperand is three comma-separated operands.
	shapeTripleOperand
	// shapeUnrecognized marks code that matched no layout.
	shapeUnrecognized
)

// parsedLine is the classifier's result for one source line.
type parsedLine struct {
	label     string   // declaration as written, colon included
	comment   string   // first comment marker through end of line
	tokens    []string // canonical operand tokens, mnemonic first
	shape     lineShape
	labelOnly bool // label with no code; consumes no address slot
}
