package lukrum

import (
	"fmt"
	"net/http"
)

// APIError is the base error returned for any non-2xx response from the
// Lukrum Models API. More specific failures (authentication, validation,
// not-found, rate limiting) embed it so callers can match either the broad
// or the narrow type with errors.As.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("lukrum api error %d on %s: %s", e.StatusCode, e.Endpoint, e.Message)
}

// ValidationDetail is one field-level validation failure as reported by the API.
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AuthenticationError is returned for 401 and 403 responses.
type AuthenticationError struct {
	APIError
}

func (e *AuthenticationError) Unwrap() error { return &e.APIError }

// ValidationError is returned for 400 and 422 responses and carries the
// field-level details from the response body when present.
type ValidationError struct {
	APIError
	Details []ValidationDetail
}

func (e *ValidationError) Unwrap() error { return &e.APIError }

// NotFoundError is returned for 404 responses.
type NotFoundError struct {
	APIError
}

func (e *NotFoundError) Unwrap() error { return &e.APIError }

// RateLimitError is returned for 429 responses.
type RateLimitError struct {
	APIError
}

func (e *RateLimitError) Unwrap() error { return &e.APIError }

// errorBody is the error envelope the API uses for non-2xx responses.
type errorBody struct {
	Error   string             `json:"error"`
	Message string             `json:"message"`
	Details []ValidationDetail `json:"details"`
}

func (b *errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Error
}

// newAPIError maps a response status to the matching error type.
func newAPIError(status int, endpoint string, body *errorBody) error {
	msg := http.StatusText(status)
	var details []ValidationDetail
	if body != nil {
		if t := body.text(); t != "" {
			msg = t
		}
		details = body.Details
	}

	base := APIError{StatusCode: status, Message: msg, Endpoint: endpoint}
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &AuthenticationError{APIError: base}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &ValidationError{APIError: base, Details: details}
	case http.StatusNotFound:
		return &NotFoundError{APIError: base}
	case http.StatusTooManyRequests:
		return &RateLimitError{APIError: base}
	default:
		return &base
	}
}
