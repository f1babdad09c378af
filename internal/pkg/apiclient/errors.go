// internal/pkg/apiclient/errors.go
package apiclient

import "fmt"

// APIError is a non-2xx HTTP response. Message carries the response body text,
// or the standard reason phrase for the status when the body is empty.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[API Error] %d: %s", e.Status, e.Message)
}

// ParseError is a successful HTTP response whose body failed JSON decoding.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse JSON response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NetworkError is a transport-level failure, distinct from an HTTP error
// response (DNS failure, refused connection, cancelled context).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
