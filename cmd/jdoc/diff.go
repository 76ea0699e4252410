package main

import (
	"fmt"
	"io"

	"github.com/signadot/jsondoc"
	"github.com/signadot/jsondoc/libdiff"

	"github.com/scott-cotton/cli"
)

// diff exits with status 1 when the documents differ, as diff(1) does.
func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if cfg.Reverse {
		a, b = b, a
	}
	changes := jsondoc.Diff(a, b)
	if len(changes) == 0 {
		return nil
	}
	if cfg.JSONPatch {
		p, err := jsondoc.DiffPatch(a, b)
		if err != nil {
			return err
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, p); err != nil {
			return err
		}
		return cli.ExitCodeErr(1)
	}
	if err := writeChanges(cc.Out, changes); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func writeChanges(w io.Writer, changes []libdiff.Change) error {
	for _, c := range changes {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}
	return nil
}
