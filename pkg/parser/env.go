package parser

import (
	"slices"

	"github.com/arthur-debert/confc/pkg/types"
)

// Env is the constant table of one parse run. Later definitions of a name
// replace earlier ones.
type Env struct {
	values map[string]types.Value
}

// NewEnv returns an empty environment
func NewEnv() *Env {
	return &Env{values: make(map[string]types.Value)}
}

// Define stores value under name
func (e *Env) Define(name string, value types.Value) {
	e.values[name] = value
}

// Lookup returns the value stored under name
func (e *Env) Lookup(name string) (types.Value, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Len returns the number of defined constants
func (e *Env) Len() int {
	return len(e.values)
}

// Names returns the defined names in sorted order
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.values))
	for k := range e.values {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}
