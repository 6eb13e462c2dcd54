package data

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/robbyt/go-formula/execution/constants"
)

// ContextProvider retrieves and stores evaluation data in the context using a
// specified key.
type ContextProvider struct {
	contextKey constants.ContextKey
}

// NewContextProvider creates a new ContextProvider with the given context key.
func NewContextProvider(contextKey constants.ContextKey) *ContextProvider {
	return &ContextProvider{
		contextKey: contextKey,
	}
}

// GetData extracts a map[string]any from the context using the configured key.
func (p *ContextProvider) GetData(ctx context.Context) (map[string]any, error) {
	if p.contextKey == "" {
		return nil, fmt.Errorf("context key is empty")
	}

	value := ctx.Value(p.contextKey)
	if value == nil {
		return make(map[string]any), nil
	}

	inputData, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid input data type: expected map[string]any, got %T", value)
	}

	return inputData, nil
}

// AddDataToContext stores data in the context for formula evaluation.
// Numeric values are bound under the "value" key (the placeholder value);
// maps are merged into the general input data. Prioritizes a consistent data
// shape for the evaluator over error propagation.
//
// Example:
//
//	ctx := context.Background()
//	provider := NewContextProvider(constants.EvalData)
//	ctx, err := provider.AddDataToContext(ctx, 42.5, map[string]any{"unit": "px"})
func (p *ContextProvider) AddDataToContext(
	ctx context.Context,
	data ...any,
) (context.Context, error) {
	if p.contextKey == "" {
		return ctx, fmt.Errorf("context key is empty")
	}

	// Collect errors during processing
	var errz []error

	// Initialize the data storage map. Each call builds a fresh map, so
	// re-binding a value for a later evaluation replaces the earlier one.
	toStore := make(map[string]any)

	// Process each data item based on its type
	for _, item := range data {
		if item == nil {
			continue
		}

		if num, ok := toFloat64(item); ok {
			if existingValue, exists := toStore[constants.Value]; exists {
				errz = append(errz, fmt.Errorf("bound value already set: %v", existingValue))
				continue
			}
			toStore[constants.Value] = num
			continue
		}

		switch v := item.(type) {
		case map[string]any:
			// Handle general data - store the object under the input_data key
			inputData := make(map[string]any)

			// Reuse existing map if available
			if existingInputData, ok := toStore[constants.InputData].(map[string]any); ok {
				inputData = existingInputData
			}

			// Copy new data into the map (overwriting any existing keys)
			maps.Copy(inputData, v)
			toStore[constants.InputData] = inputData
		default:
			// For unhandled types, record an error and continue
			errz = append(errz, fmt.Errorf("unsupported data type for ContextProvider: %T", item))
			continue
		}
	}

	// Always create a new context with whatever data we were able to process
	newCtx := context.WithValue(ctx, p.contextKey, toStore)

	// Return any errors that occurred (errors.Join returns nil if errz is empty)
	// Even with errors, we return the updated context
	return newCtx, errors.Join(errz...)
}

// toFloat64 normalizes the numeric types a caller is likely to bind.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
