// Package types defines the set of evaluation machines this module can build.
package types

import "fmt"

// Type identifies an evaluation machine implementation.
type Type string

const (
	// Arith is the left-to-right arithmetic formula machine.
	Arith Type = "arith"
)

// FromString converts a string to a machine Type.
func FromString(s string) (Type, error) {
	switch Type(s) {
	case Arith:
		return Arith, nil
	default:
		return "", fmt.Errorf("unsupported machine type: %s", s)
	}
}
