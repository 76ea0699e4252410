package parse

// DefaultMaxDepth is the nesting limit used unless MaxDepth is given.
const DefaultMaxDepth = 10000

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

// MaxDepth limits how deeply objects and arrays may nest. Values
// below 1 restore the default.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}

func newOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}
