package formula

import "io"

// Compiler defines the interface for validating formula templates before
// evaluation. It normalizes the template (whitespace removal), checks the
// character set, and verifies every numeric fragment parses, returning the
// validated template as ExecutableContent.
//
// Example usage:
//
//	var comp Compiler = arith.NewCompiler(handler)
//	content, err := comp.Compile(templateReader)
//	if err != nil {
//	    // Handle validation error
//	}
type Compiler interface {
	// Compile checks if a formula template is valid and returns it as
	// executable content, ready for repeated evaluation with different
	// bound values.
	Compile(templateReader io.ReadCloser) (ExecutableContent, error)
}
