package arith

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/robbyt/go-formula/internal/helpers"
)

// noConversionSentinel is the type of the NoConversion sentinel.
type noConversionSentinel struct{}

func (noConversionSentinel) String() string { return "<no conversion>" }

// NoConversion is the sentinel returned by ValueConverter when a formula
// cannot be evaluated for any reason. Compare with ==.
var NoConversion = noConversionSentinel{}

// ValueConverter is the fail-soft boundary of the formula engine: it accepts
// a raw bound value and a formula template and returns either a float64
// result or the NoConversion sentinel. No failure ever propagates to the
// caller as an error; a bad formula degrades to "unconverted", which is the
// contract a formatting/display pipeline wants.
type ValueConverter struct {
	logHandler slog.Handler
	logger     *slog.Logger
}

// NewValueConverter creates a new ValueConverter. A nil handler falls back to
// the default text handler.
func NewValueConverter(handler slog.Handler) *ValueConverter {
	handler, logger := helpers.SetupLogger(handler, "arith", "ValueConverter")
	return &ValueConverter{
		logHandler: handler,
		logger:     logger,
	}
}

func (vc *ValueConverter) String() string {
	return "arith.ValueConverter"
}

// Convert renders the bound value to its canonical decimal text, substitutes
// it for every placeholder occurrence in the template, and evaluates the
// result. On success it returns a float64; on any failure it returns
// NoConversion. Division by zero is a success (±Inf or NaN), per float64
// semantics.
func (vc *ValueConverter) Convert(value any, template string) any {
	result, err := vc.convert(value, template)
	if err != nil {
		vc.logger.Debug("conversion failed", "template", template, "error", err)
		return NoConversion
	}
	return result
}

// ConvertBack is unsupported: a formula is not invertible in general, so the
// reverse direction fails unconditionally.
func (vc *ValueConverter) ConvertBack(value any, template string) any {
	vc.logger.Debug("ConvertBack is not supported", "template", template)
	return NoConversion
}

func (vc *ValueConverter) convert(value any, template string) (float64, error) {
	text, err := renderValue(value)
	if err != nil {
		return 0, err
	}

	substituted := strings.ReplaceAll(stripWhitespace(template), Placeholder, text)
	return evaluate(substituted, 0)
}

// renderValue converts a bound value to its canonical decimal-string
// representation. Values that cannot be rendered to a finite numeral fail
// with ErrPlaceholderSubstitution.
func renderValue(value any) (string, error) {
	var num float64

	switch v := value.(type) {
	case float64:
		num = v
	case float32:
		num = float64(v)
	case int:
		num = float64(v)
	case int8:
		num = float64(v)
	case int16:
		num = float64(v)
	case int32:
		num = float64(v)
	case int64:
		num = float64(v)
	case uint:
		num = float64(v)
	case uint8:
		num = float64(v)
	case uint16:
		num = float64(v)
	case uint32:
		num = float64(v)
	case uint64:
		num = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrPlaceholderSubstitution, v)
		}
		num = parsed
	case nil:
		return "", fmt.Errorf("%w: value is nil", ErrPlaceholderSubstitution)
	default:
		return "", fmt.Errorf("%w: unsupported type %T", ErrPlaceholderSubstitution, value)
	}

	if math.IsInf(num, 0) || math.IsNaN(num) {
		return "", fmt.Errorf("%w: value is not finite", ErrPlaceholderSubstitution)
	}

	return strconv.FormatFloat(num, 'f', -1, 64), nil
}
