package main

import (
	"fmt"
	"strings"

	"github.com/signadot/jsondoc/eval"
	"github.com/signadot/jsondoc/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func jdocEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	src := args[0]
	i := 0
	return eachObjFile(cfg.MainConfig, cc, args[1:], func(_ string, doc *ir.Document) error {
		var res ir.Value
		if cfg.Filter != "" {
			arr, err := eval.Filter(doc, cfg.Filter, src, cfg.Env)
			if err != nil {
				return err
			}
			res = ir.FromDoc(arr)
		} else {
			res, err = eval.Eval(doc, src, cfg.Env)
			if err != nil {
				return err
			}
		}
		if err := writeSep(cfg.MainConfig, cc.Out, i); err != nil {
			return err
		}
		i++
		return writeValue(cfg.MainConfig, cc.Out, res)
	})
}

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

// envFunc binds key=val in env. A dotted key binds into nested maps,
// and val is read as yaml.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
