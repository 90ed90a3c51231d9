package services

import "errors"

// ErrNotFound signals that a slug does not resolve to an existing post.
var ErrNotFound = errors.New("blog post not found")

// ValidationError carries one message per invalid payload field. Handlers
// turn it into a 400 with the errors array.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation error"
}
