// Package token provides the scalar lexing support for JSON text.
//
// [Keyword] recognizes the literals null, true and false. [Number] scans a
// number and reports whether it is integral. [Quoted] scans a double quoted
// string, checking its escape sequences.
//
// None of these functions allocate a document; the parse package turns
// their results into values.
package token
