package shared

import (
	"errors"
	"net/http"
)

// ErrorKind classifies the synchronous failures the core produces. Every
// rejected operation carries a human-readable reason so the UI can explain
// the rejection without knowing the rules.
type ErrorKind string

const (
	ErrorKindAuthorization ErrorKind = "authorization"
	ErrorKindValidation    ErrorKind = "validation"
	ErrorKindNotFound      ErrorKind = "notFound"
	ErrorKindUpstream      ErrorKind = "upstream"
)

type DomainError struct {
	Kind   ErrorKind
	Reason string
	cause  error
}

func (e *DomainError) Error() string {
	return e.Reason
}

func (e *DomainError) Unwrap() error {
	return e.cause
}

func NewAuthorizationError(reason string) error {
	return &DomainError{Kind: ErrorKindAuthorization, Reason: reason}
}

func NewValidationError(reason string) error {
	return &DomainError{Kind: ErrorKindValidation, Reason: reason}
}

func NewNotFoundError(reason string) error {
	return &DomainError{Kind: ErrorKindNotFound, Reason: reason}
}

func NewUpstreamError(reason string, cause error) error {
	return &DomainError{Kind: ErrorKindUpstream, Reason: reason, cause: cause}
}

func KindOf(err error) ErrorKind {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return ErrorKindUpstream
}

// HTTPStatus maps a core error to the status code the API surfaces.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case ErrorKindAuthorization:
		return http.StatusForbidden
	case ErrorKindValidation:
		return http.StatusBadRequest
	case ErrorKindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
