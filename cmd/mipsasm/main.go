package main

import (
	"bufio"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"mipsasm/assembler"
)

var rootCmd = &cobra.Command{
	Use:   "mipsasm source listing instructions",
	Short: "Assemble MIPS source into encoded instruction words",
	Long: `Mipsasm translates a MIPS assembly source file in two passes and
writes two files: a listing with addresses, encoded words, labels,
source tokens, comments and a symbol table, and a plain stream of the
encoded instruction words, one 0x-prefixed word per line.

Malformed lines are reported inside the listing and never abort the
run; the exit status only reflects whether the three files could be
opened.`,
	Args:         cobra.ExactArgs(3),
	SilenceUsage: true,
	RunE:         run,
}

func run(cmd *cobra.Command, args []string) error {
	src, err := os.Open(args[0])
	if err != nil {
		return errors.Wrap(err, "opening source")
	}
	defer src.Close()

	listingFile, err := os.Create(args[1])
	if err != nil {
		return errors.Wrap(err, "creating listing file")
	}
	defer listingFile.Close()

	instrFile, err := os.Create(args[2])
	if err != nil {
		return errors.Wrap(err, "creating instruction file")
	}
	defer instrFile.Close()

	listing := bufio.NewWriter(listingFile)
	instr := bufio.NewWriter(instrFile)

	start := time.Now()
	if err := assembler.New(listing, instr).Assemble(src); err != nil {
		return errors.Wrap(err, "assembling")
	}
	if err := listing.Flush(); err != nil {
		return errors.Wrap(err, "flushing listing")
	}
	if err := instr.Flush(); err != nil {
		return errors.Wrap(err, "flushing instructions")
	}

	log.Printf("assembled %s in %v", args[0], time.Since(start).Round(time.Millisecond))
	return nil
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
