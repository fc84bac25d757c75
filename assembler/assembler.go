package assembler

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Assembler holds the state for one assembly run.
type Assembler struct {
	listing io.Writer
	instr   io.Writer
	labels  map[string]int
}

// New creates an Assembler writing the listing and the encoded
// instruction stream to the given sinks.
func New(listing, instructions io.Writer) *Assembler {
	return &Assembler{
		listing: listing,
		instr:   instructions,
		labels:  make(map[string]int),
	}
}

// Assemble runs both passes over the source. Malformed lines are
// reported in-band in the listing and never abort the run; the returned
// error covers only failures to read the source itself.
func (asm *Assembler) Assemble(r io.Reader) error {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "reading source")
	}

	asm.resolveLabels(lines)

	addr := 0
	for _, line := range lines {
		addr = asm.render(asm.classify(line, addr), addr)
	}
	asm.writeSymbols()
	return nil
}

// resolveLabels is the first pass: walk the source once and record the
// byte address each label declaration binds to. Duplicate declarations
// overwrite, so the last one wins. The map must not change once this
// pass finishes; pass 2 resolves branch and jump targets against it.
func (asm *Assembler) resolveLabels(lines []string) {
	addr := 0
	for _, line := range lines {
		code, _ := splitComment(line)
		if strings.TrimSpace(code) == "" {
			continue
		}
		label, rest := splitLabel(code)
		if label != "" {
			asm.labels[strings.TrimSuffix(label, ":")] = addr
			if strings.TrimSpace(rest) == "" {
				// Label-only line: binds to the next instruction.
				continue
			}
		}
		addr += 4
	}
}
