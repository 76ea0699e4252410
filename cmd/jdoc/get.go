package main

import (
	"fmt"

	"github.com/signadot/jsondoc/debug"
	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/ir/kpath"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	kp, err := kpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	missed := false
	i := 0
	err = eachObjFile(cfg.MainConfig, cc, args[1:], func(file string, doc *ir.Document) error {
		v, ok := doc.GetKPath(kp)
		if debug.Path() {
			debug.Logf("get %q in %s: found %t\n", kp, file, ok)
		}
		if !ok {
			missed = true
			return nil
		}
		if err := writeSep(cfg.MainConfig, cc.Out, i); err != nil {
			return err
		}
		i++
		return writeValue(cfg.MainConfig, cc.Out, v)
	})
	if err != nil {
		return err
	}
	if missed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(cfg.Assigns) == 0 {
		return fmt.Errorf("%w: set requires at least one -e path=val", cli.ErrUsage)
	}
	i := 0
	return eachObjFile(cfg.MainConfig, cc, args, func(file string, doc *ir.Document) error {
		for _, a := range cfg.Assigns {
			if debug.Set() {
				debug.Logf("set %q in %s to %v\n", a.path, file, a.val)
			}
			if err := doc.Set(a.path, a.val); err != nil {
				return fmt.Errorf("set %q: %w", a.path, err)
			}
		}
		if err := writeSep(cfg.MainConfig, cc.Out, i); err != nil {
			return err
		}
		i++
		return writeDoc(cfg.MainConfig, cc.Out, doc)
	})
}

func del(cfg *DeleteConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Delete.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: delete requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	i := 0
	return eachObjFile(cfg.MainConfig, cc, args[1:], func(file string, doc *ir.Document) error {
		ok, err := doc.Delete(path)
		if err != nil {
			return fmt.Errorf("delete %q: %w", path, err)
		}
		if debug.Set() {
			debug.Logf("delete %q in %s: found %t\n", path, file, ok)
		}
		if err := writeSep(cfg.MainConfig, cc.Out, i); err != nil {
			return err
		}
		i++
		return writeDoc(cfg.MainConfig, cc.Out, doc)
	})
}
