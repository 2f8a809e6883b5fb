package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/punc/internal/encoder"
	"github.com/roach88/punc/internal/verify"
)

// Harness runs scenarios against one derivation table.
type Harness struct {
	table  *encoder.Table
	logger *slog.Logger
}

// New creates a Harness. A nil logger discards log output.
func New(table *encoder.Table, logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{table: table, logger: logger}
}

// Run assembles the scenario's source, evaluates it in a fresh JavaScript
// realm and checks the expectation.
//
// Failed checks are reported in the Result. An error is returned only when
// ctx ends before the scenario finishes.
func (h *Harness) Run(ctx context.Context, s *Scenario) (*Result, error) {
	result := NewResult()

	output := encoder.Assemble(h.table, s.Source)
	result.Output = output
	result.OutputBytes = len(output)
	h.logger.Debug("assembled scenario",
		"scenario", s.Name,
		"source_bytes", len(s.Source),
		"output_bytes", len(output))

	if err := encoder.Validate(output); err != nil {
		result.AddError(err.Error())
	}

	if err := verify.CheckString(ctx, h.table, s.Source); err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		result.AddError(fmt.Sprintf("encoded source: %v", err))
	}

	rt := verify.New()
	value, err := rt.Eval(ctx, output)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		result.AddError(fmt.Sprintf("running program: %v", err))
		return result, nil
	}

	if s.Expect.Global != "" {
		value = rt.Global(s.Expect.Global)
		if value == nil {
			result.AddError(fmt.Sprintf("global %q is not set", s.Expect.Global))
			return result, nil
		}
	}

	result.Observed = value.String()
	want := fmt.Sprint(s.Expect.Value)
	if result.Observed != want {
		result.AddError(fmt.Sprintf("expected %s, got %s", want, result.Observed))
	}

	h.logger.Info("scenario finished",
		"scenario", s.Name,
		"pass", result.Pass)
	return result, nil
}
