// Package types holds the data model shared by the confc packages: typed
// values, flat records and the document a parse produces.
//
// A Record is a flat, insertion-ordered mapping. Section placeholders are
// values of KindSection and never hold fields of their own; fields that follow
// a section line in the source are stored next to the placeholder in the same
// record.
package types
