// Package ir provides the in-memory representation of JSON documents.
//
// # Overview
//
// A [Document] is a JSON object or array. Its contents are [Value]s,
// a tagged union over null, bool, int64, float64, string and a nested
// Document. The Type field of a Value says which payload field is live.
//
// Objects keep their entries sorted by key, so two documents with the
// same entries print identically regardless of how they were built.
//
// # Paths
//
// Nested values are addressed with path strings compiled by package
// [github.com/signadot/jsondoc/ir/kpath]:
//
//	d := ir.NewObject()
//	d.Set("servers[1].port", ir.FromInt(8080))
//	v, ok, err := d.Get("servers[1].port")
//
// Get distinguishes a value that is not there (ok is false) from a
// malformed path (err is non-nil). Set creates whatever containers the
// path needs and fails only on malformed paths or existing containers
// of the wrong kind.
//
// # Errors
//
//   - [ErrBadAccess]: the operation needs the other kind of Document.
//   - [ErrBadPath]: the path is malformed or its index too large.
//   - [ErrOutOfRange]: a direct array index is outside the array.
//
// # Strings
//
// String values hold their escaped JSON form, exactly as parsed. Use
// [Value.Decoded] for the text itself and [Escape] to build a string
// Value from arbitrary text.
//
// # Related Packages
//
//   - github.com/signadot/jsondoc/parse - text to Document
//   - github.com/signadot/jsondoc/encode - Document to text
package ir
