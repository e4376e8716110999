// Package errors contains helper functions and types to work with errors
package errors

import (
	"errors"
	"net/http"
)

// Category defines error category
type Category int

// Client-caused categories come first; everything from
// CategoryDependencyFailure on is a server side failure.
const (
	// CategoryDataError The client sent invalid data in the body or parameters
	CategoryDataError Category = iota + 1
	// CategoryUnauthorized The client is not authenticated, or its credential expired
	CategoryUnauthorized
	// CategoryForbidden The client is authenticated but may not act on the resource
	CategoryForbidden
	// CategoryResourceNotFound The client asked for a resource that does not exist
	CategoryResourceNotFound
	// CategoryDataConflict The request conflicts with data that already exists
	CategoryDataConflict
	// CategoryTooManyRequests The client exceeded its request budget
	CategoryTooManyRequests
	// CategoryDependencyFailure A dependent service answered with something unusable
	CategoryDependencyFailure
	// CategoryUnavailable A dependent service could not be reached
	CategoryUnavailable
	// CategoryConnectionTimeout A dependent service did not answer in time
	CategoryConnectionTimeout
	// CategoryGeneralError The service failed in an unexpected way
	CategoryGeneralError
)

type categoryInfo struct {
	name     string
	status   int
	fallback string
}

var categories = map[Category]categoryInfo{
	CategoryDataError:         {"CategoryDataError", http.StatusBadRequest, "bad request"},
	CategoryUnauthorized:      {"CategoryUnauthorized", http.StatusUnauthorized, "unauthorized"},
	CategoryForbidden:         {"CategoryForbidden", http.StatusForbidden, "request forbidden"},
	CategoryResourceNotFound:  {"CategoryResourceNotFound", http.StatusNotFound, "resource not found"},
	CategoryDataConflict:      {"CategoryDataConflict", http.StatusConflict, "conflict"},
	CategoryTooManyRequests:   {"CategoryTooManyRequests", http.StatusTooManyRequests, "too many requests"},
	CategoryDependencyFailure: {"CategoryDependencyFailure", http.StatusBadGateway, "dependency failure"},
	CategoryUnavailable:       {"CategoryUnavailable", http.StatusServiceUnavailable, "dependency unavailable"},
	CategoryConnectionTimeout: {"CategoryConnectionTimeout", http.StatusGatewayTimeout, "dependency timeout"},
	CategoryGeneralError:      {"CategoryGeneralError", http.StatusInternalServerError, "internal server error"},
}

func (c Category) info() categoryInfo {
	if info, ok := categories[c]; ok {
		return info
	}
	return categories[CategoryGeneralError]
}

func (c Category) String() string {
	return c.info().name
}

// ServiceError is the error type services hand to the HTTP layer.
// Message and Errors are returned to the client, Err is only logged.
type ServiceError struct {
	Category Category
	Message  string
	Errors   []string
	Err      error
}

func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	return err.Category.info().status
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

// IsInternalError reports whether err should be treated as a server side failure.
// Anything that is not a client-caused ServiceError counts.
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Category >= CategoryDependencyFailure
	}
	return true
}

// New builds a ServiceError. A nil err is replaced by one describing the
// category and message, so the logged cause is never empty.
func New(cat Category, err error, message string, details ...string) error {
	if err == nil {
		err = errors.New(cat.info().fallback + ": " + message)
	}
	return &ServiceError{
		Category: cat,
		Message:  message,
		Errors:   details,
		Err:      err,
	}
}

// GeneralError hides err behind a generic message. err is only logged.
func GeneralError(err error) error {
	return New(CategoryGeneralError, err, "Internal Server Error")
}

// ResourceNotFoundError returns an error with category ResourceNotFound.
// message is returned to the user, err is logged.
func ResourceNotFoundError(err error, message string) error {
	return New(CategoryResourceNotFound, err, message)
}

// BadRequestError returns an error with category DataError
func BadRequestError(err error, message string) error {
	return New(CategoryDataError, err, message)
}

// ValidationError is a DataError with one detail per rejected field.
func ValidationError(err error, message string, details ...string) error {
	return New(CategoryDataError, err, message, details...)
}

// ForbiddenError returns an error with category CategoryForbidden
func ForbiddenError(err error, message string) error {
	return New(CategoryForbidden, err, message)
}

// UnAuthorizedError returns an error with category CategoryUnauthorized
func UnAuthorizedError(err error, message string) error {
	return New(CategoryUnauthorized, err, message)
}

// ConflictError returns an error with category CategoryDataConflict
func ConflictError(err error, message string) error {
	return New(CategoryDataConflict, err, message)
}

// TooManyRequestsError returns an error with category CategoryTooManyRequests
func TooManyRequestsError(err error, message string) error {
	return New(CategoryTooManyRequests, err, message)
}

// DependencyFailureError reports an unusable answer from a dependency (502).
func DependencyFailureError(err error, message string) error {
	return New(CategoryDependencyFailure, err, message)
}

// UnavailableError reports an unreachable dependency (503).
func UnavailableError(err error, message string) error {
	return New(CategoryUnavailable, err, message)
}

// TimeoutError reports a dependency that did not answer in time (504).
func TimeoutError(err error, message string) error {
	return New(CategoryConnectionTimeout, err, message)
}
