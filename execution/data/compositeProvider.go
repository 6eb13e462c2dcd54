package data

import (
	"context"
	"errors"
	"fmt"
	"maps"
)

// CompositeProvider combines multiple providers and merges their results
// Later providers in the chain can override values from earlier providers
type CompositeProvider struct {
	// providers is the ordered list of providers to query
	providers []Provider
}

// NewCompositeProvider creates a new CompositeProvider with the given providers
// The providers will be queried in the order they are provided
func NewCompositeProvider(providers ...Provider) *CompositeProvider {
	return &CompositeProvider{
		providers: providers,
	}
}

// GetData implements Provider.GetData
// It calls each provider in sequence and merges the results
func (p *CompositeProvider) GetData(ctx context.Context) (map[string]any, error) {
	// Start with an empty result
	result := make(map[string]any)

	// Process each provider and merge results
	for i, provider := range p.providers {
		if provider == nil {
			continue
		}

		// Get data from this provider
		data, err := provider.GetData(ctx)
		if err != nil {
			return nil, fmt.Errorf("error from provider %d: %w", i, err)
		}

		// Merge data into the result (overwrites existing keys)
		maps.Copy(result, data)
	}

	return result, nil
}

// AddDataToContext implements Provider.AddDataToContext
// The data is offered to each provider in order; providers that don't accept
// runtime updates (e.g. StaticProvider) are skipped. It fails only when no
// provider in the chain accepted the data.
func (p *CompositeProvider) AddDataToContext(
	ctx context.Context,
	data ...any,
) (context.Context, error) {
	var errz []error
	accepted := false

	currentCtx := ctx
	for _, provider := range p.providers {
		if provider == nil {
			continue
		}

		newCtx, err := provider.AddDataToContext(currentCtx, data...)
		if err != nil {
			if errors.Is(err, ErrStaticProviderNoRuntimeUpdates) {
				continue
			}
			errz = append(errz, err)
			continue
		}

		currentCtx = newCtx
		accepted = true
	}

	if !accepted && len(errz) == 0 {
		return ctx, fmt.Errorf("no provider in the composite chain accepts runtime data")
	}

	return currentCtx, errors.Join(errz...)
}
