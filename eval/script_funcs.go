package eval

import (
	"os"

	"github.com/signadot/jsondoc/ir"

	"github.com/expr-lang/expr"
)

func exprOpts(doc *ir.Document) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[0].(string)
			v, ok, err := doc.Get(path)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, nil
			}
			return ToAny(v), nil
		},
			new(func(string) any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			path := params[0].(string)
			_, ok, err := doc.Get(path)
			if err != nil {
				return nil, err
			}
			return ok, nil
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
