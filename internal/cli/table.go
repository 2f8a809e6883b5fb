package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/punc/internal/encoder"
	"github.com/roach88/punc/internal/verify"
)

// TableOptions holds flags for the table command.
type TableOptions struct {
	*RootOptions
	Check bool // evaluate every entry
}

// TableEntry is one derivation as reported by the table command.
type TableEntry struct {
	Char     string           `json:"char"`
	Strategy encoder.Strategy `json:"strategy"`
	Origin   string           `json:"origin"`
	Expr     string           `json:"expr"`
	Bytes    int              `json:"bytes"`
}

// TableResult is the JSON payload of the table command.
type TableResult struct {
	Entries []TableEntry `json:"entries"`
	Checked bool         `json:"checked"`
}

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TableOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "table",
		Short: "List the character derivation table",
		Long: `List every character the encoder derives directly, in derivation
order, with the strategy and the runtime value it is taken from.

Characters not listed are built with String.fromCharCode.

With --check every entry is evaluated and compared with its character.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Check, "check", false, "evaluate every entry")

	return cmd
}

func runTable(opts *TableOptions, cmd *cobra.Command) error {
	formatter := NewOutputFormatter(opts.RootOptions, cmd)

	table, err := encoder.Build()
	if err != nil {
		return commandError(formatter, ErrCodeConstruction, err.Error(), err)
	}

	if opts.Check {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if err := verify.CheckTable(ctx, table); err != nil {
			var mm *verify.MismatchError
			if !errors.As(err, &mm) {
				return commandError(formatter, ErrCodeGeneric, err.Error(), err)
			}
			details := make([]string, len(mm.Mismatches))
			for i, m := range mm.Mismatches {
				details[i] = m.String()
			}
			_ = formatter.Error(ErrCodeVerifyFailed, err.Error(), details)
			return WrapExitError(ExitFailure, fmt.Sprintf("%s: table check failed", ErrCodeVerifyFailed), err)
		}
	}

	entries := table.Entries()
	if formatter.Format == "json" {
		result := TableResult{Entries: make([]TableEntry, len(entries)), Checked: opts.Check}
		for i, e := range entries {
			result.Entries[i] = TableEntry{
				Char:     string(e.Char),
				Strategy: e.Strategy,
				Origin:   e.Origin,
				Expr:     e.Expr,
				Bytes:    len(e.Expr),
			}
		}
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ Derived %d character(s)\n\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(formatter.Writer, "  %-6q %-9s %s (%d bytes)\n", e.Char, e.Strategy, e.Origin, len(e.Expr))
		if formatter.Verbose {
			fmt.Fprintf(formatter.Writer, "         %s\n", e.Expr)
		}
	}
	if opts.Check {
		fmt.Fprintln(formatter.Writer)
		fmt.Fprintln(formatter.Writer, "✓ All entries evaluate to their character")
	}
	return nil
}
