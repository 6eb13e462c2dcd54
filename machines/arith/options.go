package arith

import "fmt"

// CompilerOption is a functional option for the arith Compiler.
type CompilerOption func(*Compiler) error

// WithMaxNestingDepth bounds how deeply groups may nest during evaluation.
// Recursion depth is linear in nesting depth, so callers compiling untrusted
// formulas should set a limit. Zero (the default) means unlimited, matching
// the engine's historical behavior.
func WithMaxNestingDepth(depth int) CompilerOption {
	return func(c *Compiler) error {
		if depth < 0 {
			return fmt.Errorf("max nesting depth must be >= 0, got %d", depth)
		}
		c.maxNestingDepth = depth
		return nil
	}
}
