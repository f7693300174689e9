// internal/apperr/apperr.go
// Package apperr defines the closed set of error kinds surfaced to API
// clients and the translation of store-level failures into that set.
package apperr

import (
	"errors"
	"net/http"

	"github.com/lib/pq"
)

// Kind identifies one of the error categories a client can observe.
type Kind int

const (
	Unauthorized Kind = iota
	BadRequest
	NotFound
	InternalServerError
)

// String returns the PascalCase name of the kind.
func (k Kind) String() string {
	switch k {
	case Unauthorized:
		return "Unauthorized"
	case BadRequest:
		return "BadRequest"
	case NotFound:
		return "NotFound"
	case InternalServerError:
		return "InternalServerError"
	default:
		return "InternalServerError"
	}
}

// WireCode converts the kind name to UPPER_SNAKE_CASE for the response body.
// The conversion splits on ASCII capital letters only; no Unicode handling.
func (k Kind) WireCode() string {
	name := k.String()
	buf := make([]byte, 0, len(name)+4)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			if i != 0 {
				buf = append(buf, '_')
			}
			buf = append(buf, c)
			continue
		}
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// HTTPStatus returns the HTTP status code associated with the kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case Unauthorized:
		return http.StatusUnauthorized
	case BadRequest:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a typed failure carrying exactly one taxonomy kind and an optional
// underlying cause. The cause is for logs only and never crosses the wire.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns a typed error with no underlying cause.
func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

// Wrap attaches an underlying cause to a typed error.
func Wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// From returns err as a typed error, classifying anything untyped as an
// internal server error. This is the last line of defense above the DAL.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(InternalServerError, err)
}

// FromStore classifies a raw store failure. Constraint violations and data
// exceptions are attributable to bad input; everything else (connectivity,
// malformed SQL) is internal. No raw store error may escape the DAL without
// passing through here.
func FromStore(err error) *Error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "22", "23":
			return Wrap(BadRequest, err)
		}
	}
	return Wrap(InternalServerError, err)
}

// Body is the single-field JSON envelope every error response renders as.
type Body struct {
	Code string `json:"code"`
}

// Body returns the wire representation of the error.
func (e *Error) Body() Body {
	return Body{Code: e.Kind.WireCode()}
}
