package allen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidUsernamePassword is returned when credentials are missing or rejected by the server.
	ErrInvalidUsernamePassword = errors.New("invalid username or password entered")
	// ErrMissingField ...
	ErrMissingField = errors.New("field is missing")
	// ErrMalformedField ...
	ErrMalformedField = errors.New("field has an unexpected type or value")
	// ErrInvariant is wrapped by a FieldError when a decoded value breaks a record invariant.
	ErrInvariant = errors.New("field value out of range")
)

// ResponseUnavailableError is returned when the API answers with a status other than 200.
type ResponseUnavailableError struct {
	URL        string
	StatusCode int
	Body       string
}

// Error implements error interface
func (e *ResponseUnavailableError) Error() string {
	return fmt.Sprintf("%s : (HTTP Status: %d)", e.URL, e.StatusCode)
}

// InvalidResponseError is returned when a response body lacks the expected
// envelope or one of the required fields.
type InvalidResponseError struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

// Error implements error interface
func (e *InvalidResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (Status Code : %d): %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s (Status Code : %d)", e.URL, e.StatusCode)
}

func (e *InvalidResponseError) Unwrap() error {
	return e.Err
}

// FieldError describes a single field a decoder could not use.
type FieldError struct {
	Key   string
	Value interface{}
	Err   error
}

// Error implements error interface
func (e *FieldError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("field %q: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("field %q (%v): %v", e.Key, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func missing(key string) error {
	return &FieldError{Key: key, Err: ErrMissingField}
}

func malformed(key string, v interface{}) error {
	return &FieldError{Key: key, Value: v, Err: ErrMalformedField}
}

func outOfRange(key string, v interface{}) error {
	return &FieldError{Key: key, Value: v, Err: ErrInvariant}
}
