package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machine"
	"github.com/aretw0/turing/pkg/tape"
)

var tapeCmd = &cobra.Command{
	Use:   "tape [moves]",
	Short: "Write input on a tape and walk the pointer",
	Long: `Writes --input on the tape starting at index 0, then applies each move
(L, R or S) and prints the pointer and the symbol under it after every step.`,
	Example: `  turing tape RRLL --input abc`,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		moves := ""
		if len(args) > 0 {
			moves = args[0]
		}
		return runTape(cmd.OutOrStdout(), input, moves)
	},
}

func init() {
	rootCmd.AddCommand(tapeCmd)

	tapeCmd.Flags().String("input", "", "Symbols written from index 0")
}

func runTape(out io.Writer, input, moves string) error {
	// The registry owns the alphabet check; the tape itself accepts anything.
	m, err := settings.cfg.NewMachine()
	if err != nil {
		return err
	}

	t := tape.New(m.Blank())
	for i, sym := range machine.Symbols(input) {
		if !m.HasSymbol(sym) {
			return fmt.Errorf("input position %d: %w", i, &domain.SymbolError{Field: "input", Symbol: sym})
		}
		t.Set(i, sym)
	}

	fmt.Fprintf(out, "%d\t%s\n", t.Pointer(), t.Peek())
	for _, r := range moves {
		d, err := domain.ParseDirection(string(r))
		if err != nil {
			return err
		}
		if err := t.Move(d); err != nil {
			return err
		}
		settings.logger.Debug("tape_moved", "move", d.String(), "pointer", t.Pointer())
		fmt.Fprintf(out, "%d\t%s\n", t.Pointer(), t.Peek())
	}

	lo, hi := t.Bounds()
	cells := make([]string, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		cells = append(cells, t.At(i))
	}
	fmt.Fprintf(out, "cells %d..%d: %s\n", lo, hi, strings.Join(cells, ""))
	return nil
}
