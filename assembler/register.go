package assembler

import (
	"fmt"
	"regexp"
	"strconv"

	"mipsasm/mips"
)

// Accepted register tokens: the zero register by name, a two-digit
// index, or a two-character lowercase abbreviation.
var registerToken = regexp.MustCompile(`^\$(zero|[0-9]{2}|[a-z][0-9]|[a-z]{2})$`)

// register resolves a register token to its 5-bit index. All failures
// are reported to the listing and resolve to register 0 so that
// encoding can continue.
func (asm *Assembler) register(tok string) uint32 {
	if !registerToken.MatchString(tok) {
		fmt.Fprintf(asm.listing, "Error: Register string invalid: %s\n", tok)
		return 0
	}
	if tok[1] >= '0' && tok[1] <= '9' {
		n, _ := strconv.Atoi(tok[1:])
		if n > 31 {
			fmt.Fprintf(asm.listing, "Error: Register out of range: %d\n", n)
			return 0
		}
		return uint32(n)
	}
	n, ok := mips.Registers[tok]
	if !ok {
		fmt.Fprintf(asm.listing, "Error: Register abbreviation not supported: %s\n", tok)
		return 0
	}
	return n
}
