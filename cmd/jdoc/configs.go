package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsondoc/encode"
	"github.com/signadot/jsondoc/format"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool   `cli:"name=color desc='encode with color'"`
	WireOut  bool   `cli:"name=wire desc='output in compact format'"`
	Indent   string `cli:"name=indent desc='indentation unit, a tab by default'"`
	MaxDepth int    `cli:"name=depth desc='maximum nesting depth of input'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat gives the format for reading path: the -I option, then -y
// or -j, then the suffix of path, then json.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	switch {
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	}
	if f, ok := format.FromPath(path); ok {
		return f
	}
	return format.JSONFormat
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.Y {
		return format.YAMLFormat
	}
	return format.JSONFormat
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.MaxDepth <= 0 {
		return nil
	}
	return []parse.ParseOption{parse.MaxDepth(cfg.MaxDepth)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Indent != "" {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type assign struct {
	path string
	val  ir.Value
}

type SetConfig struct {
	*MainConfig
	Assigns []assign

	Set *cli.Command
}

type DeleteConfig struct {
	*MainConfig

	Delete *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse   bool `cli:"name=r desc='reverse the diff'"`
	JSONPatch bool `cli:"name=p desc='output a json patch'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=m aliases=merge desc='apply a json merge patch'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env    map[string]any
	Filter string `cli:"name=f aliases=filter desc='filter the array at this path, binding each element to it'"`

	Eval *cli.Command
}
