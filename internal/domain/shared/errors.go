package shared

import "errors"

// DomainError is an error with a stable machine-readable code. The HTTP
// layer maps codes to status responses; everything below it compares codes,
// not messages.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches any DomainError carrying the same code, so wrapped and
// freshly-constructed errors compare equal under errors.Is.
func (e *DomainError) Is(target error) bool {
	var de *DomainError
	if errors.As(target, &de) {
		return e.Code == de.Code
	}
	return false
}

// NewDomainError creates a domain error with the given code and message
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// ErrNotFound is returned by repositories when the requested row does not
// exist. Handlers translate it to 404.
var ErrNotFound = NewDomainError("NOT_FOUND", "Resource not found")
