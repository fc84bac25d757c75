package assembler

import (
	"strconv"
	"strings"
)

// splitComment cuts a line at the first comment marker. The comment
// keeps the marker, as the listing prints it verbatim.
func splitComment(line string) (code, comment string) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i], line[i:]
	}
	return line, ""
}

// splitLabel strips a leading label declaration, colon included, from
// comment-free code text. A declaration is a bare token immediately
// followed by a colon; anything else leaves the text untouched.
func splitLabel(code string) (label, rest string) {
	t := strings.TrimLeft(code, " \t")
	for i := 0; i < len(t); i++ {
		switch t[i] {
		case ':':
			if i == 0 {
				return "", code
			}
			return t[:i+1], t[i+1:]
		case ' ', '\t':
			return "", code
		}
	}
	return "", code
}

// classify dissects one raw source line. addr is the byte address the
// line receives if it carries an instruction; the equality branch needs
// it to derive its relative offset. Both passes share splitComment and
// splitLabel, so their label and address decisions always agree.
func (asm *Assembler) classify(line string, addr int) parsedLine {
	code, comment := splitComment(line)
	ln := parsedLine{comment: comment}
	if strings.TrimSpace(code) == "" {
		return ln
	}
	var rest string
	ln.label, rest = splitLabel(code)
	if ln.label != "" && strings.TrimSpace(rest) == "" {
		ln.labelOnly = true
	}
	ln.shape, ln.tokens = asm.shapeTokens(rest, addr)
	if ln.shape == shapeUnrecognized && ln.label != "" {
		// Labelled but unparsable code renders as a plain label line.
		ln.shape, ln.tokens = shapeNone, nil
	}
	return ln
}

// shapeTokens classifies comment- and label-free text and returns the
// canonical token list the encoder expects. Jump and equality-branch
// targets are resolved against the label map here, so the encoder only
// ever sees numeric operands for them.
func (asm *Assembler) shapeTokens(text string, addr int) (lineShape, []string) {
	fields := strings.Fields(text)
	switch len(fields) {
	case 0:
		return shapeNone, nil
	case 1:
		return shapeNoOperand, fields
	case 2:
		mn, op := fields[0], fields[1]
		if mn == "j" {
			// The jump operand is always a label, replaced by its
			// word-address index. Unknown labels read as address 0.
			op = strconv.Itoa(asm.labels[op] / 4)
		}
		return shapeSingleOperand, []string{mn, op}
	}

	trimmed := strings.TrimSpace(text)
	mn := fields[0]
	ops := strings.TrimLeft(trimmed[len(mn):], " \t")

	if reg, base, off, ok := splitBaseOffset(ops); ok {
		// Offset and base register swap to the encoder's positions.
		return shapeBaseOffset, []string{mn, reg, base, off}
	}
	if a, b, c, ok := splitTriple(ops); ok {
		if mn == "beq" {
			// Operands swap to the encoder's order and the target label
			// becomes a word offset relative to the next instruction.
			rel := (asm.labels[c] - addr - 4) / 4
			return shapeTripleOperand, []string{mn, b, a, strconv.Itoa(rel)}
		}
		return shapeTripleOperand, []string{mn, a, b, c}
	}
	return shapeUnrecognized, nil
}

// cutOperand splits "tok, rest" at a comma directly following the
// token. Whitespace before the comma does not parse.
func cutOperand(s string) (tok, rest string, ok bool) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ',':
			if i == 0 {
				return "", "", false
			}
			return s[:i], strings.TrimLeft(s[i+1:], " \t"), true
		case ' ', '\t':
			return "", "", false
		}
	}
	return "", "", false
}

// splitBaseOffset parses the load/store operand form "reg, off(base)".
// The offset must be bare digits; signed offsets do not match.
func splitBaseOffset(ops string) (reg, base, off string, ok bool) {
	reg, rest, ok := cutOperand(ops)
	if !ok {
		return "", "", "", false
	}
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(rest) || rest[i] != '(' {
		return "", "", "", false
	}
	off = rest[:i]
	rest = rest[i+1:]
	j := strings.IndexByte(rest, ')')
	if j <= 0 || strings.TrimSpace(rest[j+1:]) != "" {
		return "", "", "", false
	}
	base = rest[:j]
	if strings.ContainsAny(base, " \t") {
		return "", "", "", false
	}
	return reg, base, off, true
}

// splitTriple parses three comma-separated operands. The final operand
// runs to the end of the text and may not contain whitespace.
func splitTriple(ops string) (a, b, c string, ok bool) {
	a, rest, ok := cutOperand(ops)
	if !ok {
		return "", "", "", false
	}
	b, rest, ok = cutOperand(rest)
	if !ok {
		return "", "", "", false
	}
	c = strings.TrimSpace(rest)
	if c == "" || strings.ContainsAny(c, " \t") {
		return "", "", "", false
	}
	return a, b, c, true
}
