package types

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValueKind identifies which member of the Value union is populated
type ValueKind int

const (
	// KindText is a string literal or an unrecognised bare token
	KindText ValueKind = iota
	// KindInteger is a non-negative decimal literal
	KindInteger
	// KindBoolean is a true/false literal
	KindBoolean
	// KindArray is an ordered list of strings written as #( a, b )
	KindArray
	// KindSection is the empty-mapping placeholder of a "name := begin" line
	KindSection
)

// String returns the kind name used in logs and diagnostics
func (k ValueKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindBoolean:
		return "boolean"
	case KindArray:
		return "array"
	case KindSection:
		return "section"
	default:
		return "unknown"
	}
}

// Value is a typed literal. Only the field matching Kind is meaningful.
type Value struct {
	Kind  ValueKind
	Text  string
	Int   int64
	Bool  bool
	Items []string
}

// Text builds a KindText value
func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// Integer builds a KindInteger value
func Integer(n int64) Value {
	return Value{Kind: KindInteger, Int: n}
}

// Boolean builds a KindBoolean value
func Boolean(b bool) Value {
	return Value{Kind: KindBoolean, Bool: b}
}

// Array builds a KindArray value holding a copy of items
func Array(items ...string) Value {
	return Value{Kind: KindArray, Items: slices.Clone(items)}
}

// Section builds the empty-mapping placeholder
func Section() Value {
	return Value{Kind: KindSection}
}

// Equal reports whether two values have the same kind and content
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindText:
		return v.Text == o.Text
	case KindInteger:
		return v.Int == o.Int
	case KindBoolean:
		return v.Bool == o.Bool
	case KindArray:
		return slices.Equal(v.Items, o.Items)
	case KindSection:
		return true
	}
	return false
}

// Interface returns the natural Go representation of the value
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindInteger:
		return v.Int
	case KindBoolean:
		return v.Bool
	case KindArray:
		return slices.Clone(v.Items)
	case KindSection:
		return map[string]interface{}{}
	default:
		return v.Text
	}
}

// String renders the value in its natural textual form
func (v Value) String() string {
	switch v.Kind {
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindBoolean:
		return strconv.FormatBool(v.Bool)
	case KindArray:
		return fmt.Sprintf("[%s]", strings.Join(v.Items, ", "))
	case KindSection:
		return "{}"
	default:
		return v.Text
	}
}
