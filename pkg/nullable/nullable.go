// Package nullable distinguishes a JSON field that was left out from one that
// was sent as null, which pointer fields cannot do.
package nullable

import (
	"bytes"
	"encoding/json"
)

// Field holds an optional, possibly-null value decoded from JSON.
type Field[T any] struct {
	Present bool
	Null    bool
	Value   T
}

// Of returns a present, non-null field.
func Of[T any](v T) Field[T] {
	return Field[T]{Present: true, Value: v}
}

// Null returns a present field that was explicitly set to null.
func Null[T any]() Field[T] {
	return Field[T]{Present: true, Null: true}
}

// IsSet reports whether the field carries a non-null value.
func (f Field[T]) IsSet() bool {
	return f.Present && !f.Null
}

// Ptr returns nil for null, or a pointer to the value.
func (f Field[T]) Ptr() *T {
	if f.Null {
		return nil
	}
	v := f.Value
	return &v
}

// UnmarshalJSON is only invoked for keys that appear in the input.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Present || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}
