package types

import (
	"slices"
)

// Record is a flat mapping from field name to value. Keys are unique and
// the last assignment to a key wins; Keys keeps first-insertion order.
type Record struct {
	keys   []string
	fields map[string]Value
}

// NewRecord returns an empty record
func NewRecord() *Record {
	return &Record{fields: make(map[string]Value)}
}

// Set assigns value to name, replacing any earlier assignment
func (r *Record) Set(name string, value Value) {
	if _, ok := r.fields[name]; !ok {
		r.keys = append(r.keys, name)
	}
	r.fields[name] = value
}

// Get returns the value stored under name
func (r *Record) Get(name string) (Value, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// Len returns the number of fields
func (r *Record) Len() int {
	return len(r.keys)
}

// Keys returns field names in the order they were first assigned
func (r *Record) Keys() []string {
	return slices.Clone(r.keys)
}

// SortedKeys returns field names in alphabetical (byte) order
func (r *Record) SortedKeys() []string {
	keys := slices.Clone(r.keys)
	slices.Sort(keys)
	return keys
}

// Map returns the record as a plain map of natural Go values
func (r *Record) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(r.keys))
	for _, k := range r.keys {
		m[k] = r.fields[k].Interface()
	}
	return m
}
