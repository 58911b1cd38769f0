package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure at the data-access or request boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindDuplicate
	KindForeignKey
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindDuplicate:
		return "duplicate"
	case KindForeignKey:
		return "foreign_key"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E tags err with a kind. A nil err yields a bare tagged error.
func E(kind Kind, err error) error {
	return &Error{Kind: kind, Err: err}
}

func Validation(format string, args ...any) error {
	return E(KindValidation, fmt.Errorf(format, args...))
}

func NotFound(format string, args ...any) error {
	return E(KindNotFound, fmt.Errorf(format, args...))
}

// KindOf reports the kind of the first tagged error in err's chain,
// KindInternal when none is found.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Permanent reports whether err is a failure retrying cannot fix:
// bad input, constraint violation or a missing record.
func Permanent(err error) bool {
	switch KindOf(err) {
	case KindValidation, KindDuplicate, KindForeignKey, KindNotFound:
		return true
	default:
		return false
	}
}
