package booking

import "errors"

var (
	ErrNotFound          = errors.New("booking not found")
	ErrValidation        = errors.New("invalid booking data")
	ErrInvalidStatus     = errors.New("status must be pending, confirmed or cancelled")
	ErrZeroClaim         = errors.New("claim amount must be non-zero")
	ErrForbidden         = errors.New("not allowed to modify this booking")
	ErrReferenceConflict = errors.New("could not generate a unique booking reference")
)
