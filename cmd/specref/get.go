package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/specref"
	"github.com/signadot/specref/encode"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires at least one reference", cli.ErrUsage)
	}
	g, err := cfg.registry()
	if err != nil {
		return err
	}
	for i, arg := range args {
		f, err := specref.Resolve(g, arg)
		if err != nil {
			return fmt.Errorf("error resolving %s: %w", arg, err)
		}
		if i > 0 && !cfg.J {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := encode.Encode(f.Node(), cc.Out, cfg.encOpts()...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
