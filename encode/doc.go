// Package encode prints [ir.Document]s as JSON text.
//
// # Usage
//
//	doc := ir.NewObject()
//	doc.Set("name", ir.FromString("alice"))
//	err := encode.Encode(doc, os.Stdout)
//
//	// compact output
//	err = encode.Encode(doc, os.Stdout, encode.EncodeWire(true))
//
//	// as a string, for logs and tests
//	s := encode.MustString(doc)
//
// The default layout puts every element and entry on its own line,
// indented by one tab per level, with ": " after keys. Empty
// containers print as [] and {}. Parsing the output yields a document
// equal to the input.
//
// # Related Packages
//
//   - github.com/signadot/jsondoc/ir - document model
//   - github.com/signadot/jsondoc/parse - text to document
package encode
