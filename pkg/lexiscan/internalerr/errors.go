package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTaxonomy   = errors.New("invalid taxonomy")
	ErrInvalidConfig     = errors.New("invalid configuration")
)
