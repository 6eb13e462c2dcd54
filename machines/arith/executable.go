package arith

import (
	"strings"

	machineTypes "github.com/robbyt/go-formula/machines/types"
)

// Executable is a validated, whitespace-normalized formula template ready for
// repeated evaluation with different bound values. It implements
// formula.ExecutableContent.
type Executable struct {
	source          string
	normalized      string
	maxNestingDepth int
}

// NewExecutable creates an Executable from the original source and its
// normalized form. Returns nil if either is empty.
func NewExecutable(source, normalized string, maxNestingDepth int) *Executable {
	if source == "" || normalized == "" {
		return nil
	}
	return &Executable{
		source:          source,
		normalized:      normalized,
		maxNestingDepth: maxNestingDepth,
	}
}

// GetSource returns the original template text, before normalization.
func (e *Executable) GetSource() string {
	return e.source
}

// GetNormalized returns the whitespace-free template with the placeholder
// intact, typed as any to satisfy formula.ExecutableContent.
func (e *Executable) GetNormalized() any {
	return e.normalized
}

// GetNormalizedString returns the normalized template as a string.
func (e *Executable) GetNormalizedString() string {
	return e.normalized
}

// GetMachineType returns the machine type of this executable.
func (e *Executable) GetMachineType() machineTypes.Type {
	return machineTypes.Arith
}

// GetMaxNestingDepth returns the grouping recursion limit; zero means unlimited.
func (e *Executable) GetMaxNestingDepth() int {
	return e.maxNestingDepth
}

// HasPlaceholder reports whether the template references the bound value.
func (e *Executable) HasPlaceholder() bool {
	return strings.Contains(e.normalized, Placeholder)
}
