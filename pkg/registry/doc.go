// Package registry provides a generic, thread-safe name registry. Names are
// matched case-insensitively and an item may be reachable under several
// aliases; confc uses it for the table of known input encodings.
package registry
