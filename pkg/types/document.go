package types

import (
	"slices"
)

// Document is the ordered, append-only list of records produced by one parse
type Document struct {
	records []*Record
}

// NewDocument returns an empty document
func NewDocument() *Document {
	return &Document{}
}

// Append adds a closed record to the end of the document
func (d *Document) Append(r *Record) {
	d.records = append(d.records, r)
}

// Records returns the records in parse order
func (d *Document) Records() []*Record {
	return slices.Clone(d.records)
}

// Len returns the number of records
func (d *Document) Len() int {
	return len(d.records)
}
