// Package machines provides the factory functions that map a machine type to
// its compiler and evaluator implementations.
package machines

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-formula/engine"
	"github.com/robbyt/go-formula/execution/formula"
	"github.com/robbyt/go-formula/machines/arith"
	"github.com/robbyt/go-formula/machines/types"
)

// NewCompiler creates a machine-specific compiler. compilerOptions must be a
// slice of the machine's option type, or nil for defaults.
func NewCompiler(
	handler slog.Handler,
	machineType types.Type,
	compilerOptions any,
) (formula.Compiler, error) {
	switch machineType {
	case types.Arith:
		var opts []arith.CompilerOption
		if compilerOptions != nil {
			var ok bool
			opts, ok = compilerOptions.([]arith.CompilerOption)
			if !ok {
				return nil, fmt.Errorf(
					"invalid compiler options for %s machine: %T", machineType, compilerOptions,
				)
			}
		}
		return arith.NewCompiler(handler, opts...)
	default:
		return nil, fmt.Errorf("unsupported machine type: %s", machineType)
	}
}

// NewEvaluator creates a machine-specific evaluator for the compiled template.
func NewEvaluator(
	handler slog.Handler,
	template *formula.Template,
) (engine.EvaluatorWithPrep, error) {
	if template == nil {
		return nil, fmt.Errorf("template is nil")
	}

	switch template.GetMachineType() {
	case types.Arith:
		return arith.NewBufferEvaluator(handler, template), nil
	default:
		return nil, fmt.Errorf("unsupported machine type: %s", template.GetMachineType())
	}
}
