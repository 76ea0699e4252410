// Package eval connects documents to Go values and to expressions.
//
// [ToAny] and [FromAny] convert between [ir.Value]s and the plain Go
// values encoding/json works with: map[string]any, []any, string,
// float64 or int64, bool and nil. String values are decoded on the way
// out and escaped on the way in.
//
// [Eval] runs an expr-lang expression with the document bound to the
// name doc:
//
//	v, err := eval.Eval(d, `len(doc.items) > 2`, nil)
//
// Expressions can also call these functions:
//
//   - getpath(path) returns the value at path in doc, or nil.
//   - haspath(path) reports whether doc has a value at path.
//   - getenv(name) returns the named variable from the environment of
//     the running process, or "" if it is unset. Any variable can be
//     read, so expressions from untrusted sources should not be run
//     in a process whose environment holds secrets.
//
// [Filter] keeps the elements of an array for which an expression over
// the element, bound to it, is truthy.
package eval
