package service

import "encoding/json"

// Nullable is a partial-update field that distinguishes an absent JSON
// key from an explicit null. A plain pointer cannot: encoding/json
// leaves it nil in both cases, which would make nullable fields
// impossible to clear. Set reports whether the key was present; a
// present key with a null value leaves Value nil.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// NullableOf wraps a value for building update requests in code.
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

// NullableNull is an explicit null: the field is present and clears.
func NullableNull[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// UnmarshalJSON runs only for present keys, including null values.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

// MarshalJSON renders the wrapped value, or null when cleared.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}
