package formula

import (
	machineTypes "github.com/robbyt/go-formula/machines/types"
)

// ExecutableContent represents a validated formula template that is ready for
// evaluation. It provides access to the original source and the normalized
// form the machine consumes.
type ExecutableContent interface {
	// GetSource returns the original template content as a string, before
	// whitespace normalization.
	GetSource() string

	// GetNormalized returns the machine-ready template in a machine-specific
	// format. The value is asserted into the type the target machine
	// requires, so the MachineType and normalized form must be compatible.
	GetNormalized() any

	// GetMachineType returns the machine type this template is intended to run on.
	GetMachineType() machineTypes.Type
}
