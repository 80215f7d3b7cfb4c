package parser

import (
	"github.com/arthur-debert/confc/pkg/types"
)

// State of the record accumulator
type State int

const (
	Idle State = iota
	Accumulating
)

func (s State) String() string {
	if s == Accumulating {
		return "accumulating"
	}
	return "idle"
}

// accumulator owns the single open-record slot. There is no stack: a
// section only adds a placeholder to whatever record is open.
type accumulator struct {
	open *types.Record
	doc  *types.Document
}

func newAccumulator() *accumulator {
	return &accumulator{doc: types.NewDocument()}
}

func (a *accumulator) state() State {
	if a.open != nil {
		return Accumulating
	}
	return Idle
}

// begin opens a record; it reports false when one was already open
func (a *accumulator) begin() bool {
	if a.open != nil {
		return false
	}
	a.open = types.NewRecord()
	return true
}

// end moves the open record into the document and returns it, or returns
// nil when idle
func (a *accumulator) end() *types.Record {
	r := a.open
	if r == nil {
		return nil
	}
	a.doc.Append(r)
	a.open = nil
	return r
}

// assign sets a field on the open record; it reports false when idle
func (a *accumulator) assign(name string, v types.Value) bool {
	if a.open == nil {
		return false
	}
	a.open.Set(name, v)
	return true
}

// section stores an empty-mapping placeholder, opening a record if needed
func (a *accumulator) section(name string) {
	a.begin()
	a.open.Set(name, types.Section())
}

// finish returns the document and whatever record was left open, which is
// not part of the document
func (a *accumulator) finish() (*types.Document, *types.Record) {
	dropped := a.open
	a.open = nil
	return a.doc, dropped
}
