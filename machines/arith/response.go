package arith

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/robbyt/go-formula/execution/data"
)

// execResult carries the float64 result of one evaluation, implementing
// engine.EvaluatorResponse.
type execResult struct {
	value        float64
	execTime     time.Duration
	formulaExeID string
	logHandler   slog.Handler
	logger       *slog.Logger
}

func newEvalResult(handler slog.Handler, value float64, execTime time.Duration, versionID string) *execResult {
	if handler == nil {
		defaultHandler := slog.NewTextHandler(os.Stdout, nil)
		handler = defaultHandler.WithGroup("arith")
		// Create a logger from the handler rather than using slog directly
		defaultLogger := slog.New(handler)
		defaultLogger.Warn("Handler is nil, using the default logger configuration.")
	}

	return &execResult{
		value:        value,
		execTime:     execTime,
		formulaExeID: versionID,
		logHandler:   handler,
		logger:       slog.New(handler.WithGroup("execResult")),
	}
}

func (r *execResult) String() string {
	return fmt.Sprintf(
		"ExecResult{Type: %s, Value: %v, ExecTime: %s, FormulaExeID: %s}",
		r.Type(), r.value, r.GetExecTime(), r.GetFormulaExeID())
}

func (r *execResult) Type() data.Types {
	return data.FLOAT
}

func (r *execResult) Inspect() string {
	return strconv.FormatFloat(r.value, 'f', -1, 64)
}

func (r *execResult) Interface() any {
	return r.value
}

func (r *execResult) GetFormulaExeID() string {
	return r.formulaExeID
}

func (r *execResult) GetExecTime() string {
	return r.execTime.String()
}
