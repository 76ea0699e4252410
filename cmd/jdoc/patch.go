package main

import (
	"fmt"

	"github.com/signadot/jsondoc"
	"github.com/signadot/jsondoc/ir"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	p, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	apply := jsondoc.ApplyPatch
	if cfg.Merge {
		apply = jsondoc.MergePatch
	}
	i := 0
	return eachObjFile(cfg.MainConfig, cc, args[1:], func(_ string, doc *ir.Document) error {
		res, err := apply(doc, p)
		if err != nil {
			return err
		}
		if err := writeSep(cfg.MainConfig, cc.Out, i); err != nil {
			return err
		}
		i++
		return writeDoc(cfg.MainConfig, cc.Out, res)
	})
}
