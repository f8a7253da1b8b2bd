package domain

import "time"

// AuditFields holds the server-assigned timestamps shared by every record.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Nullable is an update field for a nullable column. It separates three states:
// absent (Set == false, leave unchanged), explicit null (Set && !Valid, clear)
// and a value (Set && Valid).
type Nullable[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// NullOf returns an explicit null.
func NullOf[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// ValueOf returns a set, non-null value.
func ValueOf[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Valid: true, Value: v}
}

// Ptr returns nil for null or absent, otherwise a pointer to a copy of the value.
func (n Nullable[T]) Ptr() *T {
	if !n.Set || !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// PtrOrNil is Ptr boxed for reflection-based callers such as validators.
func (n Nullable[T]) PtrOrNil() any {
	return n.Ptr()
}

// Apply returns the effective value after applying n on top of current.
func (n Nullable[T]) Apply(current *T) *T {
	if !n.Set {
		return current
	}
	return n.Ptr()
}
