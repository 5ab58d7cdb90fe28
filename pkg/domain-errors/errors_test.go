package dErrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	assert.Equal(t, "not_found: document not found",
		New(CodeNotFound, "document not found").Error())

	wrapped := Wrap(CodeExtractionFailed, "calendar extraction failed", errors.New("timeout"))
	assert.Equal(t, "extraction_failed: calendar extraction failed: timeout", wrapped.Error())
	assert.EqualError(t, errors.Unwrap(wrapped), "timeout")
}

func TestHasCodeAndCodeOf(t *testing.T) {
	err := New(CodeNoDataExtracted, "empty report")

	assert.True(t, HasCode(err, CodeNoDataExtracted))
	assert.False(t, HasCode(err, CodeNotFound))
	assert.Equal(t, CodeNoDataExtracted, CodeOf(err))

	// Codes survive further wrapping by callers.
	deep := fmt.Errorf("handling request: %w", err)
	assert.True(t, HasCode(deep, CodeNoDataExtracted))
	assert.Equal(t, CodeNoDataExtracted, CodeOf(deep))

	assert.False(t, HasCode(errors.New("plain"), CodeNotFound))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
	assert.Equal(t, CodeInternal, CodeOf(nil))
}

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeBadRequest, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeNoDataExtracted, http.StatusUnprocessableEntity},
		{CodeServiceUnavailable, http.StatusInternalServerError},
		{CodeExtractionFailed, http.StatusInternalServerError},
		{CodeMalformedResponse, http.StatusInternalServerError},
		{CodeRegistryUnavailable, http.StatusInternalServerError},
		{CodeInternal, http.StatusInternalServerError},
		{Code("unknown"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToHTTPStatus(tt.code), "code %s", tt.code)
	}
}
