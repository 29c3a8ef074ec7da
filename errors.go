package tooldef

import (
	"errors"
	"fmt"
)

// Sentinel errors for tooldef. Use errors.Is to check; every reason wraps ErrValidation.
var (
	ErrValidation         = errors.New("validation failed")
	ErrMissingDoc         = fmt.Errorf("%w: docstring missing", ErrValidation)
	ErrMissingAnnotation  = fmt.Errorf("%w: parameter missing annotation", ErrValidation)
	ErrMissingDescription = fmt.Errorf("%w: parameter missing description annotation", ErrValidation)
	ErrBadReturn          = fmt.Errorf("%w: return type is not string", ErrValidation)
	ErrMissingName        = fmt.Errorf("%w: function missing a name", ErrValidation)
	ErrDuplicateParam     = fmt.Errorf("%w: parameter declared more than once", ErrValidation)
)

// ValidationError reports a callable whose declaration cannot be turned into a definition.
// These are programmer errors: fix the descriptor, do not retry.
// Err is one of the reason sentinels (ErrMissingDoc, ErrBadReturn, ...).
type ValidationError struct {
	Function string // best-effort identity of the callable
	Param    string // offending parameter, if any
	Err      error
}

func (e *ValidationError) Error() string {
	fn := e.Function
	if fn == "" {
		fn = "<anonymous>"
	}
	if e.Param != "" {
		return fmt.Sprintf("tooldef: %s: parameter %q: %v", fn, e.Param, e.Err)
	}
	return fmt.Sprintf("tooldef: %s: %v", fn, e.Err)
}

// Unwrap supports errors.Is on both the reason sentinel and ErrValidation.
func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidationError returns true if err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
