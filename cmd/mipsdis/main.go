package main

import (
	"bufio"
	"fmt"
	"math"
	"os"

	"github.com/japanoise/numparse"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"mipsasm/disassembler"
)

var rootCmd = &cobra.Command{
	Use:   "mipsdis [encoded-file]",
	Short: "Disassemble encoded MIPS instruction words",
	Long: `Mipsdis reads whitespace-separated instruction words, as written to
the assembler's instruction stream, and prints one disassembled
instruction per line. Words may be written in decimal or with the
usual base prefixes, 0x-hex included. With no argument it reads
standard input.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func run(cmd *cobra.Command, args []string) error {
	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}

	out := bufio.NewWriter(os.Stdout)
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		n, err := numparse.UNumParse(sc.Text())
		if err != nil {
			return errors.Wrapf(err, "parsing %q", sc.Text())
		}
		if uint64(n) > math.MaxUint32 {
			return errors.Errorf("word %s does not fit in 32 bits", sc.Text())
		}
		fmt.Fprintln(out, disassembler.Disassemble(uint32(n)))
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "reading input")
	}
	return errors.Wrap(out.Flush(), "flushing output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
