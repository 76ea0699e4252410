// Package kpath compiles path strings into a chain of key and index
// segments addressing a value inside a document.
//
// # Syntax
//
//	"a.b.c"      // object key, then key, then key
//	"a[0][1]"    // key, then array index, then array index
//	"[2].name"   // a path may start with an index
//	`a\[0\]`     // the single key "a[0]"
//	`a\.b`       // the single key "a.b"
//
// A backslash escapes the following '.', '[', ']' or '\'. A backslash
// before any other character is kept as written together with that
// character. Indices are non-negative decimal integers.
//
// The empty string compiles to the nil path, which addresses the
// document itself.
package kpath
