package eval

import (
	"fmt"

	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env holds extra variables for expressions.
type Env map[string]any

// Eval runs the expression src with doc bound to the name doc and the
// entries of env bound to their keys, and converts the result with FromAny.
func Eval(doc *ir.Document, src string, env Env) (ir.Value, error) {
	if debug.Eval() {
		debug.Logf("eval %q on %s\n", src, doc)
	}
	prg, err := compile(doc, src)
	if err != nil {
		return ir.Value{}, err
	}
	res, err := expr.Run(prg, bind(doc, env))
	if err != nil {
		return ir.Value{}, fmt.Errorf("eval %q: %w", src, err)
	}
	return FromAny(res)
}

// Filter returns a new array holding the elements of the array at path
// for which src is truthy. Each element is bound to the name it.
func Filter(doc *ir.Document, path, src string, env Env) (*ir.Document, error) {
	v, ok, err := doc.Get(path)
	if err != nil {
		return nil, err
	}
	arr, isDoc := ir.As[*ir.Document](v)
	if !ok || !isDoc || !arr.IsArray() {
		return nil, fmt.Errorf("%w: %q is not an array", ir.ErrBadAccess, path)
	}
	prg, err := compile(doc, src)
	if err != nil {
		return nil, err
	}
	vars := bind(doc, env)
	res := ir.NewArray()
	for i, e := range arr.Elems() {
		vars["it"] = ToAny(e)
		out, err := expr.Run(prg, vars)
		if err != nil {
			return nil, fmt.Errorf("filter %q at [%d]: %w", src, i, err)
		}
		ov, err := FromAny(out)
		if err != nil {
			return nil, err
		}
		if debug.Eval() {
			debug.Logf("filter [%d] %s -> %v\n", i, e, ir.Truth(ov))
		}
		if !ir.Truth(ov) {
			continue
		}
		if err := res.PushBack(e); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func compile(doc *ir.Document, src string) (*vm.Program, error) {
	prg, err := expr.Compile(src, exprOpts(doc)...)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	return prg, nil
}

func bind(doc *ir.Document, env Env) map[string]any {
	vars := make(map[string]any, len(env)+2)
	for k, v := range env {
		vars[k] = v
	}
	vars["doc"] = DocToAny(doc)
	return vars
}
