package tooldef

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	tests := []struct {
		name   string
		err    *ValidationError
		expect string
	}{
		{"function", &ValidationError{Function: "add", Err: ErrMissingDoc}, "tooldef: add: validation failed: docstring missing"},
		{"parameter", &ValidationError{Function: "add", Param: "a", Err: ErrMissingAnnotation}, `tooldef: add: parameter "a": validation failed: parameter missing annotation`},
		{"anonymous", &ValidationError{Err: ErrMissingName}, "tooldef: <anonymous>: validation failed: function missing a name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.err.Error())
		})
	}
}

func TestErrorsIs_As(t *testing.T) {
	reasons := []error{ErrMissingDoc, ErrMissingAnnotation, ErrMissingDescription, ErrBadReturn, ErrMissingName, ErrDuplicateParam}
	for _, reason := range reasons {
		t.Run(reason.Error(), func(t *testing.T) {
			err := fmt.Errorf("wrap: %w", &ValidationError{Function: "f", Err: reason})
			assert.ErrorIs(t, err, reason)
			assert.ErrorIs(t, err, ErrValidation)
			assert.True(t, IsValidationError(err))
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "f", ve.Function)
		})
	}
}

func TestReasonsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrMissingDoc, ErrMissingName))
	assert.False(t, errors.Is(ErrBadReturn, ErrMissingDescription))
}

func TestIsValidationError(t *testing.T) {
	require.True(t, IsValidationError(&ValidationError{Err: ErrBadReturn}))
	require.False(t, IsValidationError(ErrBadReturn))
	require.False(t, IsValidationError(errors.New("x")))
	require.False(t, IsValidationError(nil))
}
