// Package jsondoc reads, queries, edits and prints JSON documents.
//
// A document is an object or an array held as an [ir.Document]. Parse
// text with [Parse] or, for positioned errors, with [parse.Parse]; read
// and write nested values by path with [ir.Document.Get] and
// [ir.Document.Set]; print with [String] or the encode package.
//
//	doc := jsondoc.Parse(`{"a": {"b": [1, 2]}}`)
//	v, ok, err := doc.Get("a.b[1]")
//	err = doc.Set("a.c[2]", ir.FromBool(true))
//	fmt.Println(jsondoc.String(doc))
//
// The package also applies RFC 6902 and RFC 7386 patches and converts
// documents to and from YAML.
package jsondoc
