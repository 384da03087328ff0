// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse is returned when a response decodes but lacks the
// structure the client expects.
var ErrMalformedResponse = errors.New("malformed E-utilities response")

// maxErrorBody bounds how much of a failed response body is kept on APIError.
const maxErrorBody = 512

// APIError reports a non-200 response from an E-utilities endpoint.
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s returned HTTP %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s returned HTTP %d: %s", e.Endpoint, e.StatusCode, e.Body)
}
