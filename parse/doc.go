// Package parse turns JSON text into [ir.Document]s.
//
// The parser is a recursive descent over the bytes of the input. Each
// container parser returns the document it built together with the
// number of bytes it consumed, so its caller can continue after it.
//
// # Accepted input
//
// A document is an object or an array, optionally surrounded by
// whitespace, that consumes the whole input. Within it:
//
//   - Numbers follow the JSON grammar: no leading zeros, no leading '+',
//     digits required after '.' and in exponents. Integers become int64,
//     numbers with a fraction or exponent become float64. Numbers
//     outside those ranges are rejected.
//   - Strings accept the escapes \" \\ \b \f \n \r \t and \uXXXX.
//     Their content is kept in escaped form; see [ir.Value.Decoded].
//   - Trailing commas are rejected.
//   - When an object repeats a key the last value wins.
//
// # Failure
//
// [Parse] never panics. On failure it returns an invalid document, see
// [ir.Document.Valid], together with an [*Error] locating the problem.
package parse
