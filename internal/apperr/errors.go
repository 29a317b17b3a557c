package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so controllers can map it to an HTTP status
// without inspecting error strings.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindNoCompanyAssociation
	KindOwnership
	KindValidation
	KindCatalogEmpty
	KindNoData
	KindMalformedAIResponse
	KindExternalCapability
	KindNotFound
	KindConflict
	KindForbidden
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the Kind carried by err, or KindInternal for plain errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the user-visible message for err. Internal detail stays in
// the wrapped cause, which is logged but never sent to clients.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return "Internal server error"
}

// HTTPStatus maps an error to the response status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindNoCompanyAssociation, KindValidation, KindNoData:
		return http.StatusBadRequest
	case KindOwnership, KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindCatalogEmpty, KindMalformedAIResponse, KindExternalCapability:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
