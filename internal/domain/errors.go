package domain

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind classifies a failure for the HTTP error normalizer. The set is closed.
type Kind int

const (
	// KindUnexpected is anything the API cannot attribute to the client.
	KindUnexpected Kind = iota
	// KindValidation is malformed or missing input detected before any store call.
	KindValidation
	// KindNotFound means a referenced entity is absent.
	KindNotFound
	// KindStoreType means the store rejected a value's type or format,
	// e.g. a non-numeric identifier for an integer column.
	KindStoreType
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindStoreType:
		return "store_type"
	default:
		return "unexpected"
	}
}

// Error is the structured failure returned by the service layer. Msg is
// safe to show to clients; Err (optional) keeps the underlying cause for logs.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Validation builds a KindValidation error.
func Validation(msg string) *Error { return &Error{Kind: KindValidation, Msg: msg} }

// NotFound builds a KindNotFound error.
func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Msg: msg} }

// StoreType builds a KindStoreType error wrapping cause.
func StoreType(msg string, cause error) *Error {
	return &Error{Kind: KindStoreType, Msg: msg, Err: cause}
}

// Postgres SQLSTATE class 22 ("data exception") codes that indicate the
// client supplied a value of the wrong shape for a column.
var pgDataExceptions = map[string]struct{}{
	"22P02": {}, // invalid_text_representation
	"22003": {}, // numeric_value_out_of_range
	"22007": {}, // invalid_datetime_format
	"22008": {}, // datetime_field_overflow
}

// Classify returns the Kind of err. Structured *Error values keep their
// kind; Postgres data exceptions map to KindStoreType; everything else,
// including nil-safe unknowns, is KindUnexpected.
func Classify(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if _, ok := pgDataExceptions[pgErr.Code]; ok {
			return KindStoreType
		}
	}
	return KindUnexpected
}
