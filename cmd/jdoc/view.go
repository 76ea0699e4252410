package main

import (
	"github.com/signadot/jsondoc/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	i := 0
	return eachObjFile(cfg.MainConfig, cc, args, func(_ string, doc *ir.Document) error {
		if err := writeSep(cfg.MainConfig, cc.Out, i); err != nil {
			return err
		}
		i++
		return writeDoc(cfg.MainConfig, cc.Out, doc)
	})
}
