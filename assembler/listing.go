package assembler

import (
	"fmt"
	"sort"
)

// render writes one classified line to the outputs and returns the
// advanced address counter. Encoder and register faults print before
// the listing line they belong to, since encoding runs first.
func (asm *Assembler) render(ln parsedLine, addr int) int {
	if ln.shape == shapeUnrecognized {
		fmt.Fprintf(asm.listing, "Error: Wrong amount of arguments, operation not supported.\n")
		return addr
	}

	if len(ln.tokens) > 0 {
		word := asm.encode(ln.tokens)

		fmt.Fprintf(asm.listing, "0x%08x    0x%08x", addr, word)
		if ln.label == "" {
			fmt.Fprintf(asm.listing, "%18s", "")
		} else {
			fmt.Fprintf(asm.listing, "    %-10s    ", ln.label)
		}
		for _, tok := range ln.tokens {
			fmt.Fprintf(asm.listing, "%s ", tok)
		}
		if ln.comment != "" {
			fmt.Fprintf(asm.listing, "    %s", ln.comment)
		}
		fmt.Fprintln(asm.listing)

		fmt.Fprintf(asm.instr, "0x%08x\n", word)
		if !ln.labelOnly {
			addr += 4
		}
		return addr
	}

	if ln.label != "" || ln.comment != "" {
		fmt.Fprintf(asm.listing, "%28s%s", "", ln.label)
		if ln.comment != "" {
			if ln.label != "" {
				fmt.Fprint(asm.listing, "    ")
			}
			fmt.Fprint(asm.listing, ln.comment)
		}
	}
	fmt.Fprintln(asm.listing)
	return addr
}

// writeSymbols appends the resolved label table to the listing in
// lexicographic key order.
func (asm *Assembler) writeSymbols() {
	fmt.Fprintf(asm.listing, "\nSymbols\n")
	names := make([]string, 0, len(asm.labels))
	for name := range asm.labels {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(asm.listing, "%-13s 0x%08x\n", name, asm.labels[name])
	}
}
