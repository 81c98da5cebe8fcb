//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ErrorEnvelope mirrors the API error payload: a top-level message plus
// optional per-field sub-messages.
type ErrorEnvelope struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	var envelope ErrorEnvelope
	err := json.Unmarshal(w.Body.Bytes(), &envelope)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if expectedMsg != "" {
		assert.Contains(t, envelope.Message, expectedMsg,
			"Response error message doesn't contain expected text")
	}
}

// AssertFieldError additionally checks a per-field sub-message.
func AssertFieldError(t *testing.T, w *httptest.ResponseRecorder, field, expectedMsg string) {
	t.Helper()

	var envelope ErrorEnvelope
	err := json.Unmarshal(w.Body.Bytes(), &envelope)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	got, ok := envelope.Errors[field]
	if assert.True(t, ok, fmt.Sprintf("Expected field error for %q, got %v", field, envelope.Errors)) {
		assert.Contains(t, got, expectedMsg)
	}
}
