package api

import (
	"errors"
	"fmt"
)

// APIError is a logical failure reported by the backend: the HTTP
// exchange succeeded but the response carried success:false (or a
// non-2xx status with no decodable body). It is distinct from
// transport errors, which surface as wrapped *url.Error values.
// Both kinds are retryable by the user; neither is fatal.
type APIError struct {
	Status  int    // HTTP status code of the response
	Message string // Backend-supplied message, or the status text
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// IsAPIError reports whether err (or anything it wraps) is a logical
// backend failure, returning the typed error when so.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
