package arith

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/robbyt/go-formula/engine"
	"github.com/robbyt/go-formula/execution/constants"
	"github.com/robbyt/go-formula/execution/data"
	"github.com/robbyt/go-formula/execution/formula"
	"github.com/robbyt/go-formula/internal/helpers"
)

// BufferEvaluator evaluates a compiled formula template against the bound
// value supplied by the template's data provider. The name refers to the
// pending-values buffer the machine collapses during evaluation.
type BufferEvaluator struct {
	// template contains the compiled formula and data provider
	template *formula.Template

	logHandler slog.Handler
	logger     *slog.Logger
}

// NewBufferEvaluator creates a new BufferEvaluator object
func NewBufferEvaluator(
	handler slog.Handler,
	template *formula.Template,
) *BufferEvaluator {
	handler, logger := helpers.SetupLogger(handler, "arith", "BufferEvaluator")

	return &BufferEvaluator{
		template:   template,
		logHandler: handler,
		logger:     logger,
	}
}

func (be *BufferEvaluator) String() string {
	return "arith.BufferEvaluator"
}

// loadInputData retrieves input data using the data provider in the template.
// Returns the map the bound value is read from.
func (be *BufferEvaluator) loadInputData(ctx context.Context) (map[string]any, error) {
	logger := be.logger.WithGroup("loadInputData")

	// If no template or data provider, return empty map
	if be.template == nil || be.template.GetDataProvider() == nil {
		logger.WarnContext(ctx, "no data provider available, using empty data")
		return make(map[string]any), nil
	}

	// Get input data from provider
	inputData, err := be.template.GetDataProvider().GetData(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get input data from provider", "error", err)
		return nil, err
	}

	if len(inputData) == 0 {
		logger.WarnContext(ctx, "empty input data returned from provider")
	}
	logger.DebugContext(ctx, "input data loaded from provider", "inputData", inputData)
	return inputData, nil
}

// exec substitutes the bound value text into the normalized template and
// runs the evaluation, timing it.
func (be *BufferEvaluator) exec(
	ctx context.Context,
	exe *Executable,
	valueText string,
) (*execResult, error) {
	logger := be.logger.WithGroup("exec")

	substituted := strings.ReplaceAll(exe.GetNormalizedString(), Placeholder, valueText)

	startTime := time.Now()
	result, err := evaluate(substituted, exe.GetMaxNestingDepth())
	execTime := time.Since(startTime)

	if err != nil {
		return nil, fmt.Errorf("formula evaluation error: %w", err)
	}

	logger.InfoContext(ctx, "evaluation complete", "result", result)
	return newEvalResult(be.logHandler, result, execTime, ""), nil
}

// Eval evaluates the compiled template, reading the bound value from the data
// provider under the "value" key. A template without a placeholder evaluates
// without any bound value present.
func (be *BufferEvaluator) Eval(ctx context.Context) (engine.EvaluatorResponse, error) {
	logger := be.logger.WithGroup("Eval")
	if be.template == nil {
		return nil, fmt.Errorf("template is nil")
	}

	if be.template.GetContent() == nil {
		return nil, fmt.Errorf("content is nil")
	}

	// Get execution ID
	exeID := be.template.GetID()
	if exeID == "" {
		return nil, fmt.Errorf("exeID is empty")
	}
	logger = logger.With("exeID", exeID)

	// 1. Type assert the content into an arith Executable
	exe, ok := be.template.GetContent().(*Executable)
	if !ok {
		return nil, fmt.Errorf(
			"unable to type assert content into *arith.Executable for ID: %s",
			exeID,
		)
	}

	// 2. Get the raw input data
	rawInputData, err := be.loadInputData(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get input data: %w", err)
	}

	// 3. Render the bound value to its decimal text
	valueText := ""
	if exe.HasPlaceholder() {
		bound, exists := rawInputData[constants.Value]
		if !exists {
			return nil, fmt.Errorf(
				"template references %s but no bound value was provided", Placeholder,
			)
		}
		valueText, err = renderValue(bound)
		if err != nil {
			return nil, err
		}
	}

	// 4. Substitute and evaluate
	result, err := be.exec(ctx, exe, valueText)
	if err != nil {
		return nil, err
	}

	// 5. Collect results
	result.formulaExeID = exeID

	logger.DebugContext(ctx, "evaluation complete", "result", result)
	return result, nil
}

// PrepareContext implements the EvalDataPreparer interface for arith
// formulas. It enriches the provided context with the bound value (and any
// auxiliary maps), using the Template's DataProvider to store the data.
func (be *BufferEvaluator) PrepareContext(
	ctx context.Context,
	d ...any,
) (context.Context, error) {
	logger := be.logger.WithGroup("PrepareContext")

	if be.template == nil || be.template.GetDataProvider() == nil {
		return ctx, fmt.Errorf("no data provider available")
	}

	return data.PrepareContextHelper(
		ctx,
		logger,
		be.template.GetDataProvider(),
		d...,
	)
}
