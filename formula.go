// Package formula is a small formula evaluation engine for display and
// formatting pipelines: a template containing the @VALUE placeholder is
// compiled once and evaluated many times with different bound values,
// strictly left-to-right, with parentheses as the only grouping mechanism.
package formula

import (
	"context"
	"fmt"

	"github.com/robbyt/go-formula/engine"
	"github.com/robbyt/go-formula/execution/data"
	exec "github.com/robbyt/go-formula/execution/formula"
	"github.com/robbyt/go-formula/execution/formula/loader"
	"github.com/robbyt/go-formula/machines"
	"github.com/robbyt/go-formula/machines/arith"
	"github.com/robbyt/go-formula/machines/types"
	"github.com/robbyt/go-formula/options"
)

// EvaluatorWrapper wraps a machine-specific evaluator and stores the Template
// This allows callers to follow the "compile once, run many times" pattern
type EvaluatorWrapper struct {
	delegate engine.EvaluatorWithPrep
	template *exec.Template
}

// NewEvaluatorWrapper creates a new evaluator wrapper
func NewEvaluatorWrapper(delegate engine.EvaluatorWithPrep, template *exec.Template) engine.EvaluatorWithPrep {
	return &EvaluatorWrapper{
		delegate: delegate,
		template: template,
	}
}

// Eval implements the engine.Evaluator interface
// It delegates to the wrapped evaluator using the stored Template
func (e *EvaluatorWrapper) Eval(ctx context.Context) (engine.EvaluatorResponse, error) {
	return e.delegate.Eval(ctx)
}

// PrepareContext implements the engine.EvalDataPreparer interface
func (e *EvaluatorWrapper) PrepareContext(ctx context.Context, d ...any) (context.Context, error) {
	return e.delegate.PrepareContext(ctx, d...)
}

// GetTemplate returns the stored Template
// This is useful for examining or modifying the unit
func (e *EvaluatorWrapper) GetTemplate() *exec.Template {
	return e.template
}

// WithTemplate returns a new evaluator wrapper with the specified Template
// This is useful for creating evaluator variants with different data providers
func (e *EvaluatorWrapper) WithTemplate(template *exec.Template) (engine.EvaluatorWithPrep, error) {
	machineEvaluator, err := machines.NewEvaluator(nil, template)
	if err != nil {
		return nil, err
	}
	return &EvaluatorWrapper{
		delegate: machineEvaluator,
		template: template,
	}, nil
}

// NewArithEvaluator creates a new evaluator for arithmetic formula templates
func NewArithEvaluator(opts ...options.Option) (engine.EvaluatorWithPrep, error) {
	// Initialize with arith defaults
	cfg := options.DefaultConfig(types.Arith)

	// Apply all options
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}

	// Apply defaults option as final step to fill in any missing values
	if err := options.WithDefaults()(cfg); err != nil {
		return nil, fmt.Errorf("error applying defaults: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return createEvaluator(cfg)
}

// createEvaluator is a helper function to create an evaluator from a config
func createEvaluator(cfg *options.Config) (engine.EvaluatorWithPrep, error) {
	// Create compiler
	compiler, err := machines.NewCompiler(cfg.GetHandler(), cfg.GetMachineType(), cfg.GetCompilerOptions())
	if err != nil {
		return nil, err
	}

	// Create template ID from source URL
	templateID := ""
	sourceURL := cfg.GetLoader().GetSourceURL()
	if sourceURL != nil {
		templateID = sourceURL.String()
	}

	// Create the template (this will compile the formula internally)
	var dataProvider data.Provider = cfg.GetDataProvider()

	template, err := exec.NewTemplate(
		cfg.GetHandler(),
		templateID,
		cfg.GetLoader(),
		compiler,
		dataProvider,
	)
	if err != nil {
		return nil, err
	}

	// Create the machine-specific evaluator
	machineEvaluator, err := machines.NewEvaluator(cfg.GetHandler(), template)
	if err != nil {
		return nil, err
	}

	// Wrap the evaluator to store the template
	return NewEvaluatorWrapper(machineEvaluator, template), nil
}

// FromString creates an arith evaluator from an inline formula template
func FromString(content string, opts ...options.Option) (engine.EvaluatorWithPrep, error) {
	// Create a string loader
	l, err := loader.NewFromString(content)
	if err != nil {
		return nil, err
	}

	// Combine options, adding the loader
	allOpts := append([]options.Option{options.WithLoader(l)}, opts...)

	return NewArithEvaluator(allOpts...)
}

// FromFile creates an arith evaluator from a formula template file
func FromFile(filePath string, opts ...options.Option) (engine.EvaluatorWithPrep, error) {
	// Create a file loader
	l, err := loader.NewFromDisk(filePath)
	if err != nil {
		return nil, err
	}

	// Combine options, adding the loader
	allOpts := append([]options.Option{options.WithLoader(l)}, opts...)

	return NewArithEvaluator(allOpts...)
}

// FromHTTP creates an arith evaluator from a formula template served over HTTP(S)
func FromHTTP(rawURL string, opts ...options.Option) (engine.EvaluatorWithPrep, error) {
	// Create an HTTP loader
	l, err := loader.NewFromHTTP(rawURL)
	if err != nil {
		return nil, err
	}

	// Combine options, adding the loader
	allOpts := append([]options.Option{options.WithLoader(l)}, opts...)

	return NewArithEvaluator(allOpts...)
}

// Evaluate substitutes boundValue into the formula template and evaluates it,
// returning typed errors (arith.ErrMalformedNumber and friends) on failure.
// For the fail-soft boundary that never returns an error, see
// arith.ValueConverter.
func Evaluate(boundValue float64, template string) (float64, error) {
	return arith.Evaluate(boundValue, template)
}
