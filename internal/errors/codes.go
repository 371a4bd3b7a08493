package errors

// Error code constants attached to user-facing failures.
const (
	// Generation errors
	ErrValidation = "VALIDATION_ERROR"
	ErrEncoding   = "ENCODING_ERROR"
	ErrIO         = "IO_ERROR"

	// System errors
	ErrConfig   = "CONFIG_ERROR"
	ErrInternal = "INTERNAL_ERROR"
)
