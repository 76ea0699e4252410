package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsondoc"
	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/eval"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/parse"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

// getObjFile reads the document in path, or standard input for "-".
func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.Document, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	if cfg.inFormat(path).IsYAML() {
		return jsondoc.FromYAML(d)
	}
	doc, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("read %s:\n%s\n", path, doc)
	}
	return doc, nil
}

// eachObjFile calls fn with the document of each file, or of standard
// input when there are no files.
func eachObjFile(cfg *MainConfig, cc *cli.Context, files []string, fn func(string, *ir.Document) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		doc, err := getObjFile(cfg, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := fn(file, doc); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func writeDoc(cfg *MainConfig, w io.Writer, doc *ir.Document) error {
	return writeValue(cfg, w, ir.FromDoc(doc))
}

func writeValue(cfg *MainConfig, w io.Writer, v ir.Value) error {
	if !cfg.outFormat().IsYAML() {
		return encode.EncodeValue(v, w, cfg.encOpts(w)...)
	}
	var (
		d   []byte
		err error
	)
	if v.Type == ir.DocType {
		d, err = jsondoc.ToYAML(v.Doc)
	} else {
		d, err = yaml.Marshal(eval.ToAny(v))
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// writeSep separates documents in yaml output.
func writeSep(cfg *MainConfig, w io.Writer, i int) error {
	if i == 0 || !cfg.outFormat().IsYAML() {
		return nil
	}
	_, err := io.WriteString(w, "---\n")
	return err
}

// parseArgValue reads a command line value as json, falling back to
// yaml for plain words, so name=bob sets the string "bob".
func parseArgValue(a string) (ir.Value, error) {
	if v, err := parse.ParseValue([]byte(a)); err == nil {
		return v, nil
	}
	var x any
	if err := yaml.Unmarshal([]byte(a), &x); err != nil {
		return ir.Value{}, err
	}
	return eval.FromAny(x)
}
