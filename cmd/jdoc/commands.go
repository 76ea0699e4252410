package main

import (
	"fmt"
	"strings"

	"github.com/signadot/jsondoc/parse"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{MaxDepth: parse.DefaultMaxDepth}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "jdoc").
		WithSynopsis("jdoc [opts] command [opts]").
		WithDescription("jdoc reads, queries, edits and prints json documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jdocMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			DeleteCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			EvalCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("pretty print json documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription(pathDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts := []*cli.Opt{
		&cli.Opt{
			Name:        "e",
			Description: "assign val, json or a plain word, at path",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.assignOpt), "(path=val)"),
		},
	}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set -e path=val [-e path2=val2]... [files]").
		WithDescription("set values in json documents, creating containers along the path").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func (cfg *SetConfig) assignOpt(_ *cli.Context, a string) (any, error) {
	path, val, ok := strings.Cut(a, "=")
	if !ok {
		return nil, fmt.Errorf("%w: argument %q expected path=val", cli.ErrUsage, a)
	}
	v, err := parseArgValue(val)
	if err != nil {
		return nil, fmt.Errorf("%w: value of %q: %w", cli.ErrUsage, a, err)
	}
	cfg.Assigns = append(cfg.Assigns, assign{path: path, val: v})
	return 0, nil
}

func DeleteCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DeleteConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Delete, "delete").
		WithAliases("del", "rm").
		WithSynopsis("delete <path> [files]").
		WithDescription("remove the value at path from json documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return del(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-r] [-p] a b").
		WithDescription("list the changes turning document a into document b").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-m] <patchfile> [files]").
		WithDescription("apply a json patch (RFC 6902) or, with -m, a merge patch (RFC 7386)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "e",
			Description: "bind a variable for the expression",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(name=val)"),
		})
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-e name=val]... [-f path] <expr> [files]").
		WithDescription(evalDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jdocEval(cfg, cc, args)
		})
}

const pathDescription = `get prints the value at a path.

A path is a sequence of keys and indices: keys are separated by '.' and
indices are written '[n]', so 'a.b[2].c' is key c of the third element
of the array at a.b. A key holding '.', '[', ']' or '\' escapes them
with '\'. A path that leads nowhere exits with status 1.`

const evalDescription = `eval evaluates an expression over each document.

The document is bound to 'doc'. The functions getpath(path),
haspath(path) and getenv(name) read the document and the environment.
With -f, the array at path is filtered, keeping the elements for which
the expression, with the element bound to 'it', is true.`
