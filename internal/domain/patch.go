package domain

import "encoding/json"

// Patch is a JSON field for partial updates. A field absent from the payload
// leaves Set false; an explicit null sets Set and Null; any other value sets
// Set and Value.
type Patch[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Of returns a Patch holding v.
func Of[T any](v T) Patch[T] {
	return Patch[T]{Set: true, Value: v}
}

// Null returns a Patch that clears the field.
func Null[T any]() Patch[T] {
	return Patch[T]{Set: true, Null: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Patch[T]) UnmarshalJSON(b []byte) error {
	p.Set = true
	if string(b) == "null" {
		var zero T
		p.Null = true
		p.Value = zero
		return nil
	}
	p.Null = false
	return json.Unmarshal(b, &p.Value)
}

// Apply writes the patch into a non-nullable field. Null resets it to the zero
// value, which required-field validation then rejects.
func (p Patch[T]) Apply(dst *T) {
	if !p.Set {
		return
	}
	if p.Null {
		var zero T
		*dst = zero
		return
	}
	*dst = p.Value
}

// ApplyNullable writes the patch into a nullable field.
func (p Patch[T]) ApplyNullable(dst **T) {
	if !p.Set {
		return
	}
	if p.Null {
		*dst = nil
		return
	}
	v := p.Value
	*dst = &v
}
