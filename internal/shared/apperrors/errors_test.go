package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("quantity must be at least 1"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("payment not found"), ErrorTypeNotFound, http.StatusNotFound},
		{"unavailable", NewUnavailableError("store unavailable"), ErrorTypeUnavailable, http.StatusServiceUnavailable},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
		{"bad request", NewBadRequestError("malformed payload"), ErrorTypeBadRequest, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := GetAppError(tt.err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantType, appErr.Type)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestErrorDetails(t *testing.T) {
	err := NewNotFoundError("instrument not found", "ZOMATO")
	appErr := GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "ZOMATO", appErr.Details)
}

func TestPredicatesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("execute purchase: %w", NewValidationError("bad quantity"))

	assert.True(t, IsAppError(wrapped))
	assert.True(t, IsValidationError(wrapped))
	assert.False(t, IsNotFoundError(wrapped))
	assert.False(t, IsAppError(errors.New("plain")))
	assert.Nil(t, GetAppError(errors.New("plain")))
}
