package engine

import "github.com/robbyt/go-formula/execution/data"

// EvaluatorResponse is the result of a single formula evaluation.
type EvaluatorResponse interface {
	// Type of the result object.
	Type() data.Types

	// Inspect returns a string representation of the result.
	Inspect() string

	// Interface converts the result to a native Go value (float64 for the
	// arith machine).
	Interface() any

	// GetFormulaExeID returns the ID of the template that produced the result.
	GetFormulaExeID() string

	// GetExecTime returns the time it took to evaluate the formula
	GetExecTime() string
}
