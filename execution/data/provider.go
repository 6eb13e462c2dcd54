package data

import (
	"context"
)

// Getter defines the interface for retrieving evaluation data from a context.
type Getter interface {
	GetData(ctx context.Context) (map[string]any, error)
}

// Setter prepares data for formula evaluation by enriching a context.
// This interface supports separating data preparation from evaluation, so the
// bound value can be attached to a context long before the formula runs.
type Setter interface {
	// AddDataToContext enriches a context with data for formula evaluation.
	// It processes input data according to the provider implementation and
	// stores it in the context for later retrieval with GetData.
	//
	// The variadic data parameter accepts numeric values (bound under the
	// "value" key) and maps with string keys.
	//
	// Example:
	//  enrichedCtx, err := provider.AddDataToContext(ctx, 42.5)
	//  if err != nil {
	//      return err
	//  }
	//  result, err := evaluator.Eval(enrichedCtx)
	AddDataToContext(ctx context.Context, data ...any) (context.Context, error)
}

// Provider defines the interface for accessing runtime data during formula evaluation.
type Provider interface {
	// Getter retrieves associated data from a context during evaluation.
	Getter

	// Setter enriches a context with data, allowing the evaluator to access
	// it through the Template's DataProvider.
	Setter
}
