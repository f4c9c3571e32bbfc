package githost

import (
	"errors"
	"fmt"
)

// ErrInvalidURL is returned when a repository URL does not have the
// https://github.com/owner/repo shape.
var ErrInvalidURL = errors.New("invalid GitHub repository URL format, expected https://github.com/owner/repo")

// NotFoundError is returned when the host reports 404 for a repository.
type NotFoundError struct {
	Owner string
	Repo  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("repository not found: %s/%s", e.Owner, e.Repo)
}

// RequestError is returned for any other non-success host response.
type RequestError struct {
	Status int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("github request failed with status %d", e.Status)
}
