package errors

import stderrors "errors"

// Error is a classified failure. Code is one of the constants in this
// package, Message is safe to show to the user, Err is the underlying
// cause (may be nil).
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error with no underlying cause.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap classifies an underlying error with a code and user-visible message.
func Wrap(code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf returns the code of the first classified error in err's chain.
// Unclassified errors report ErrInternal; nil reports the empty string.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ErrInternal
}

// HasCode reports whether err classifies as code.
func HasCode(err error, code string) bool {
	return err != nil && CodeOf(err) == code
}

// UserMessage returns the message suitable for display. Unclassified
// errors fall back to their full Error() text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
