package dto

import "encoding/json"

// Optional is a JSON field that remembers whether it was present in the
// request body at all, and if so whether it carried null or a value.
// The zero value means the field was absent.
type Optional[T any] struct {
	Value T
	Valid bool
	Set   bool
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true

	if string(data) == "null" {
		o.Valid = false

		return nil
	}

	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}

	o.Valid = true

	return nil
}

// IsNull reports an explicit JSON null, as opposed to the field being absent.
func (o Optional[T]) IsNull() bool {
	return o.Set && !o.Valid
}

// Ptr returns a pointer to the carried value, nil when the field was absent
// or null.
func (o Optional[T]) Ptr() *T {
	if o.Set && o.Valid {
		return &o.Value
	}

	return nil
}
