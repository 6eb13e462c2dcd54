package arith

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/robbyt/go-formula/execution/formula"
	"github.com/robbyt/go-formula/internal/helpers"
)

// Compiler validates formula templates for the arith machine. Compilation
// strips whitespace, checks the character set, and verifies the numeric
// fragments with a probe substitution of the placeholder, so malformed
// templates fail before any bound value exists. Grouping balance is a
// property of evaluation and is checked there.
type Compiler struct {
	maxNestingDepth int
	logHandler      slog.Handler
	logger          *slog.Logger
}

// NewCompiler creates a new arith Compiler with the given options.
func NewCompiler(handler slog.Handler, opts ...CompilerOption) (*Compiler, error) {
	handler, logger := helpers.SetupLogger(handler, "arith", "Compiler")

	c := &Compiler{
		logHandler: handler,
		logger:     logger,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("error applying compiler option: %w", err)
		}
	}

	return c, nil
}

func (c *Compiler) String() string {
	return "arith.Compiler"
}

// Compile implements formula.Compiler. It reads the template, normalizes it,
// and validates that every numeric fragment parses once the placeholder is
// substituted.
func (c *Compiler) Compile(templateReader io.ReadCloser) (formula.ExecutableContent, error) {
	if templateReader == nil {
		return nil, ErrContentNil
	}

	raw, err := io.ReadAll(templateReader)
	closeErr := templateReader.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to close template reader: %w", closeErr)
	}

	source := strings.TrimSpace(string(raw))
	if source == "" {
		return nil, ErrContentNil
	}

	normalized := stripWhitespace(source)

	// Probe with a zero bound value: after substitution only digits, dots,
	// operators and grouping marks may remain, and every fragment must parse.
	probe := strings.ReplaceAll(normalized, Placeholder, "0")
	if err := validateCharacters(probe); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	if _, err := splitPending(probe); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	exe := NewExecutable(source, normalized, c.maxNestingDepth)
	if exe == nil {
		return nil, ErrContentNil
	}

	c.logger.Debug("formula template compiled", "source", source)
	return exe, nil
}

// validateCharacters rejects any character outside the formula alphabet:
// digits, '.', the five operators, and the grouping marks.
func validateCharacters(s string) error {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			continue
		}
		if c == '.' || strings.IndexByte(operatorChars, c) >= 0 {
			continue
		}
		return fmt.Errorf("%w: unexpected character %q", ErrMalformedNumber, string(c))
	}
	return nil
}
