package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_IsMatchesCopies(t *testing.T) {
	withDetails := ErrCVRequired.WithDetails(map[string]string{"cv": "missing"})
	wrapped := fmt.Errorf("apply: %w", ErrFileTooLarge.WithError(errors.New("read limit")))

	assert.True(t, errors.Is(withDetails, ErrCVRequired))
	assert.True(t, errors.Is(wrapped, ErrFileTooLarge))
	assert.False(t, errors.Is(withDetails, ErrFileTooLarge))
	assert.Nil(t, ErrCVRequired.Details, "WithDetails must not touch the original")
}

func TestAppError_Status(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, (&AppError{Code: CodeInternalError}).Status())
	assert.Equal(t, ErrInvalidCredentials.HTTPCode, ErrInvalidCredentials.Status())
}
