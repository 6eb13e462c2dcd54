package engine

import (
	"context"
)

// Evaluator is the interface for the generic formula evaluator.
type Evaluator interface {
	// Eval substitutes the bound value attached to the context into the
	// compiled formula template and evaluates it. The context carries the
	// runtime data (for cancellation and for the data provider).
	Eval(ctx context.Context) (EvaluatorResponse, error)
}

// EvalDataPreparer prepares data for formula evaluation by enriching a context.
// This interface supports separating data preparation from evaluation, enabling
// architectures where these steps occur at different times or on different systems.
type EvalDataPreparer interface {
	// PrepareContext enriches a context with data for formula evaluation.
	// It processes input data according to the machine implementation and stores it
	// in the context using the Template's DataProvider.
	//
	// The variadic data parameter accepts numeric bound values and maps.
	//
	// Example:
	//  enrichedCtx, err := evaluator.PrepareContext(ctx, 42.5)
	//  if err != nil {
	//      return err
	//  }
	//  result, err := evaluator.Eval(enrichedCtx)
	PrepareContext(ctx context.Context, data ...any) (context.Context, error)
}

// EvaluatorWithPrep combines the Evaluator and EvalDataPreparer interfaces,
// providing a unified API for data preparation and formula evaluation.
// It allows these steps to be performed separately while maintaining their
// logical connection.
type EvaluatorWithPrep interface {
	Evaluator
	EvalDataPreparer
}
