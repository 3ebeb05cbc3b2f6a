package utils

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that knows which status it maps to.
type HTTPError interface {
	error
	HTTPStatus() int
}

// ValidationError reports malformed input or a violated business rule.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) HTTPStatus() int { return http.StatusBadRequest }

// NotFoundError reports a referenced record that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) HTTPStatus() int { return http.StatusNotFound }

func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}
