package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-success response from the remote service.
// Detail carries the server-supplied human-readable message when the error
// body could be parsed.
type APIError struct {
	Status int
	Detail string
}

// Error prefers the server detail, falling back to a generic description
// carrying the numeric status.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("HTTP error! status: %d", e.Status)
}

// IsAuthError reports whether err represents a failed authentication.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
}

// decodeAPIError extracts the error detail from a failed response. A body
// that is not valid JSON yields an APIError with only the status filled in.
func decodeAPIError(resp *http.Response) *APIError {
	var envelope struct {
		Detail string `json:"detail"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&envelope)

	return &APIError{
		Status: resp.StatusCode,
		Detail: envelope.Detail,
	}
}
