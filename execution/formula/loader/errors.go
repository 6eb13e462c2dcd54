package loader

import "errors"

var (
	ErrSchemeUnsupported   = errors.New("unsupported scheme")
	ErrFormulaNotAvailable = errors.New("formula not available")
	ErrFormulaTooLarge     = errors.New("formula exceeds size limit")
)
