// Package schema turns untyped request payloads into validated domain inputs.
package schema

import (
	"github.com/SscSPs/ledgerbook/internal/apperrors"
)

// Parser converts a decoded JSON payload into T or fails with a validation error.
type Parser[T any] func(raw any) (T, error)

// Pair bundles the create and update parsers of one resource.
type Pair[C, U any] struct {
	Create Parser[C]
	Update Parser[U]
}

// ParseCreate parses a create payload.
func (p Pair[C, U]) ParseCreate(raw any) (C, error) {
	return p.Create(raw)
}

// ParseUpdate parses a partial update payload.
func (p Pair[C, U]) ParseUpdate(raw any) (U, error) {
	return p.Update(raw)
}

func parseCreate[T any](raw any, read func(r *Reader) T) (T, error) {
	var zero T
	r, err := NewReader(raw)
	if err != nil {
		return zero, err
	}
	in := read(r)
	validateInto(r, in)
	if err := r.Err(); err != nil {
		return zero, err
	}
	return in, nil
}

func parseUpdate[T any](raw any, read func(r *Reader) T) (T, error) {
	var zero T
	r, err := NewReader(raw)
	if err != nil {
		return zero, err
	}
	in := read(r)
	if r.Present() == 0 {
		return zero, apperrors.NewValidationError(apperrors.Issue{Path: "", Message: MsgNoFields})
	}
	validateInto(r, in)
	if err := r.Err(); err != nil {
		return zero, err
	}
	return in, nil
}

func enumPtr[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}
