package generator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingAPIKey means no draft-generation API key is configured. The
// bulk analyze flow treats this as "skip"; the explicit describe action
// surfaces it to the user.
var ErrMissingAPIKey = errors.New("draft-generation API key is not configured")

// RequestError is a non-success response from the completion API.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("draft request failed with status %d: %s", e.Status, e.Message)
}

// ParseError means the model reply could not be decoded as JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse model response as JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError means the decoded object had a field of the wrong shape.
type SchemaError struct {
	Field string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("model response field %q has the wrong shape", e.Field)
}

// IsAuthFailure reports whether the error looks like an invalid or expired
// API key, which should prompt the user to reconfigure it.
func IsAuthFailure(err error) bool {
	if err == nil {
		return false
	}
	var re *RequestError
	if errors.As(err, &re) {
		if re.Status == 401 {
			return true
		}
		return strings.Contains(strings.ToLower(re.Message), "invalid api key")
	}
	return strings.Contains(strings.ToLower(err.Error()), "invalid api key")
}
