package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wortle/wortle-server/internal/model"
	"github.com/wortle/wortle-server/internal/services/example"
)

// ErrorResponse is the uniform error envelope: a short error label plus
// an optional diagnostic detail string
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// Error labels
const (
	LabelMethodNotAllowed = "Method not allowed"
	LabelRateLimited      = "Rate limited"
	LabelAuthFailed       = "Authentication failed"
	LabelGenerationFailed = "Generation failed"
	LabelConfigError      = "Configuration error"
)

// httpError combines an HTTP status code with an error envelope
type httpError struct {
	status   int
	response ErrorResponse
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.response.Error
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(he.response)
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrRateLimited):
		return &httpError{http.StatusTooManyRequests,
			ErrorResponse{LabelRateLimited, "Too many requests"}}
	case errors.Is(err, example.ErrNotConfigured):
		return &httpError{http.StatusInternalServerError,
			ErrorResponse{LabelConfigError, "OpenAI API key not set. Add OPENAI_API_KEY to environment variables."}}
	default:
		return &httpError{http.StatusInternalServerError,
			ErrorResponse{"Internal error", err.Error()}}
	}
}

// NewInvalidRequestError creates a 400 error with the given label
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, ErrorResponse{Error: message}}
}

// NewMethodNotAllowedError creates a 405 error
func NewMethodNotAllowedError() error {
	return &httpError{http.StatusMethodNotAllowed, ErrorResponse{Error: LabelMethodNotAllowed}}
}

// NewAuthFailedError wraps a verification or store failure into the
// generic authentication failure envelope
func NewAuthFailedError(err error) error {
	return &httpError{http.StatusInternalServerError,
		ErrorResponse{LabelAuthFailed, err.Error()}}
}

// NewGenerationFailedError wraps an upstream generation failure
func NewGenerationFailedError(err error) error {
	return &httpError{http.StatusInternalServerError,
		ErrorResponse{LabelGenerationFailed, err.Error()}}
}
