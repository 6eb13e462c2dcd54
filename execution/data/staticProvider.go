package data

import (
	"context"
	"errors"
	"maps"

	"github.com/robbyt/go-formula/execution/constants"
)

// ErrStaticProviderNoRuntimeUpdates is returned when attempting to add data to a StaticProvider
var ErrStaticProviderNoRuntimeUpdates = errors.New("StaticProvider doesn't support adding data at runtime")

// StaticProvider is a simple provider that returns a predefined map of data.
// It's useful for testing and for cases where the bound value is known in
// advance and doesn't need to be retrieved from the context.
type StaticProvider struct {
	// data is the static map of data that will be returned by GetData
	data map[string]any
}

// NewStaticProvider creates a new StaticProvider with the provided data map
func NewStaticProvider(data map[string]any) *StaticProvider {
	if data == nil {
		data = make(map[string]any)
	}
	return &StaticProvider{
		data: data,
	}
}

// NewValueProvider creates a StaticProvider carrying a single bound value,
// stored under the key the arith machine reads the placeholder value from.
func NewValueProvider(value float64) *StaticProvider {
	return NewStaticProvider(map[string]any{constants.Value: value})
}

// GetData implements Provider.GetData
// It simply returns the static data map regardless of the context
func (p *StaticProvider) GetData(_ context.Context) (map[string]any, error) {
	// Return a clone of the data to prevent modification of the original
	return maps.Clone(p.data), nil
}

// AddDataToContext implements Provider.AddDataToContext
// StaticProvider is immutable after construction, so this always fails.
func (p *StaticProvider) AddDataToContext(
	ctx context.Context,
	data ...any,
) (context.Context, error) {
	return ctx, ErrStaticProviderNoRuntimeUpdates
}
