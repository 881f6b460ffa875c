// Command longnum-pi prints π to a user-specified number of decimal digits,
// computed with the longnum/pi package. It is a thin demonstration driver:
// all of the numeric work lives in longnum and longnum/pi; this file only
// parses the one optional argument, drives the computation, and formats the
// result; it is an external collaborator, a thin user of the core rather
// than part of it.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/maximxlss/longnum/pi"
	"github.com/spf13/cobra"
)

const defaultDigits = 100

// newRootCmd builds the command tree. Kept separate from main so tests can
// exercise it with a captured output writer instead of os.Stdout.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "longnum-pi [digits]",
		Short: "Print pi to the given number of decimal digits",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "longnum-pi:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	digits := defaultDigits
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid digit count %q: %w", args[0], err)
		}
		digits = n
	}

	x := pi.ComputeDigits(digits)
	text, err := x.Text(10)
	if err != nil {
		return err
	}

	width := 2 + digits
	if width > len(text) {
		width = len(text)
	}
	fmt.Fprintln(cmd.OutOrStdout(), text[:width])
	return nil
}
