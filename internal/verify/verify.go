// Package verify evaluates encoded expressions in an embedded JavaScript
// runtime (goja) and compares the results with what was encoded.
package verify

import (
	"context"
	"errors"
	"fmt"

	"github.com/dop251/goja"
)

// EvalError reports an expression that failed to evaluate.
type EvalError struct {
	Err error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("evaluating expression: %v", e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// Runtime is a single JavaScript realm. Globals set by one evaluation are
// visible to the next. A Runtime is not safe for concurrent use.
type Runtime struct {
	vm *goja.Runtime
}

// New creates a fresh Runtime.
func New() *Runtime {
	return &Runtime{vm: goja.New()}
}

// Eval evaluates expr and returns its value. Evaluation is interrupted when
// ctx is done.
func (r *Runtime) Eval(ctx context.Context, expr string) (goja.Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, &EvalError{Err: err}
	}
	stop := context.AfterFunc(ctx, func() {
		r.vm.Interrupt(ctx.Err())
	})

	v, err := r.vm.RunString("(" + expr + ")")
	if !stop() {
		// The interrupt fired (or is firing); leave the realm reusable.
		r.vm.ClearInterrupt()
	}
	if err != nil {
		var interrupted *goja.InterruptedError
		if errors.As(err, &interrupted) && ctx.Err() != nil {
			return nil, &EvalError{Err: ctx.Err()}
		}
		return nil, &EvalError{Err: err}
	}
	return v, nil
}

// Global returns the value of a global variable, or nil if it is unset.
func (r *Runtime) Global(name string) goja.Value {
	v := r.vm.GlobalObject().Get(name)
	if v == nil || goja.IsUndefined(v) {
		return nil
	}
	return v
}

// EvalString evaluates expr in a fresh Runtime and requires a string result.
func EvalString(ctx context.Context, expr string) (string, error) {
	v, err := New().Eval(ctx, expr)
	if err != nil {
		return "", err
	}
	s, ok := v.Export().(string)
	if !ok {
		return "", &EvalError{Err: fmt.Errorf("result is %s, not a string", typeName(v))}
	}
	return s, nil
}

// EvalInt evaluates expr in a fresh Runtime and requires an integral
// numeric result.
func EvalInt(ctx context.Context, expr string) (int64, error) {
	v, err := New().Eval(ctx, expr)
	if err != nil {
		return 0, err
	}
	switch n := v.Export().(type) {
	case int64:
		return n, nil
	case float64:
		if n == float64(int64(n)) {
			return int64(n), nil
		}
		return 0, &EvalError{Err: fmt.Errorf("result %v is not an integer", n)}
	default:
		return 0, &EvalError{Err: fmt.Errorf("result is %s, not a number", typeName(v))}
	}
}

func typeName(v goja.Value) string {
	if v == nil || goja.IsUndefined(v) {
		return "undefined"
	}
	if goja.IsNull(v) {
		return "null"
	}
	return v.ExportType().String()
}
