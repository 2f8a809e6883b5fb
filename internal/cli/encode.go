package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/punc/internal/encoder"
	"github.com/roach88/punc/internal/source"
	"github.com/roach88/punc/internal/verify"
)

// EncodeOptions holds flags for the encode command.
type EncodeOptions struct {
	*RootOptions
	Input  string // input file path
	Output string // output file path
	NFC    bool   // normalize input to NFC
	Verify bool   // evaluate the encoded source before writing
}

// EncodeResult summarizes one encoding run.
type EncodeResult struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	SourceRunes int    `json:"source_runes"`
	Derived     int    `json:"derived_runes"`
	Synthesized int    `json:"synthesized_runes"`
	OutputBytes int    `json:"output_bytes"`
	Verified    bool   `json:"verified"`
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EncodeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "encode --input <file> --output <file>",
		Short: "Encode a program into the restricted alphabet",
		Long: `Encode a JavaScript program into a single expression using only
the characters ()[]{}/+!-=\

The input is read as text and is not parsed. The output file is replaced
with the encoded expression; it is never left half written.

Exit codes:
  0 - Output written
  1 - Verification failed (--verify)
  2 - Command error (unreadable input, unwritable output)

Examples:
  punc encode -i hello.js -o hello.punc.js
  punc encode -i hello.js -o hello.punc.js --verify --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "input file path")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")
	cmd.Flags().BoolVar(&opts.NFC, "nfc", false, "normalize the input to Unicode NFC before encoding")
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "evaluate the encoded text before writing and fail on mismatch")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runEncode(opts *EncodeOptions, cmd *cobra.Command) error {
	formatter := NewOutputFormatter(opts.RootOptions, cmd)

	table, err := encoder.Build()
	if err != nil {
		return commandError(formatter, ErrCodeConstruction, err.Error(), err)
	}

	text, err := source.Read(opts.Input, source.ReadOptions{NFC: opts.NFC})
	if err != nil {
		code := ErrCodeReadFailed
		if source.IsNotExist(err) {
			code = ErrCodeNotFound
		}
		return commandError(formatter, code, err.Error(), err)
	}

	stats := encoder.Measure(table, text)
	formatter.VerboseLog("Read %d rune(s) from %s (%d derived, %d synthesized)",
		stats.Runes, opts.Input, stats.Derived, stats.Synthesized)

	output := encoder.Assemble(table, text)
	if err := encoder.Validate(output); err != nil {
		return commandError(formatter, ErrCodeAlphabet, err.Error(), err)
	}

	if opts.Verify {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if err := verify.CheckString(ctx, table, text); err != nil {
			_ = formatter.Error(ErrCodeVerifyFailed, err.Error(), nil)
			return WrapExitError(ExitFailure, fmt.Sprintf("%s: verification failed", ErrCodeVerifyFailed), err)
		}
		formatter.VerboseLog("Verified encoded text evaluates to the input")
	}

	if err := source.Write(opts.Output, output); err != nil {
		return commandError(formatter, ErrCodeWriteFailed, err.Error(), err)
	}

	result := EncodeResult{
		Input:       opts.Input,
		Output:      opts.Output,
		SourceRunes: stats.Runes,
		Derived:     stats.Derived,
		Synthesized: stats.Synthesized,
		OutputBytes: len(output),
		Verified:    opts.Verify,
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ Encoded %d rune(s) into %d byte(s)\n", result.SourceRunes, result.OutputBytes)
	if result.Synthesized > 0 {
		fmt.Fprintf(formatter.Writer, "  %d rune(s) built with String.fromCharCode\n", result.Synthesized)
	}
	fmt.Fprintf(formatter.Writer, "Wrote %s\n", result.Output)
	return nil
}
