// Package parser turns decoded configuration text into a types.Document.
//
// The source format is line oriented. Every trimmed, non-empty line is
// classified by the first pattern it matches:
//
//	{{!-- ...            comment (any line starting with the marker)
//	# ...                comment, including top-level #( ... ) arrays
//	def NAME = VALUE;    constant definition
//	begin                open a record unless one is open
//	end                  append the open record to the document
//	NAME := VALUE;       field of the open record, or a constant when idle
//	NAME := begin        section placeholder in the open record
//
// There is a single open-record slot. A section line does not start a nested
// scope: it stores an empty mapping under NAME and the following fields keep
// landing in the same record, next to the placeholder. The first "end" after
// it closes the whole record. A record still open at end of input is dropped.
package parser
