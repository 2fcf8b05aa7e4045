package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/specref/bundle"
	"github.com/signadot/specref/encode"
)

func specrefBundle(cfg *BundleConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Bundle.Parse(cc, args)
	if err != nil {
		cfg.Bundle.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: bundle requires exactly one document", cli.ErrUsage)
	}
	g, err := cfg.registry()
	if err != nil {
		return err
	}
	n, err := bundle.Build(g, args[0])
	if err != nil {
		return fmt.Errorf("error bundling %s: %w", args[0], err)
	}
	d, err := encode.Bytes(n, cfg.encOpts()...)
	if err != nil {
		return err
	}
	if cfg.Check == "" {
		_, err := cc.Out.Write(d)
		return err
	}
	want, err := os.ReadFile(cfg.Check)
	if err != nil {
		return err
	}
	if bytes.Equal(want, d) {
		fmt.Fprintf(cc.Out, "%s is up to date\n", cfg.Check)
		return nil
	}
	writeDiff(cc.Out, string(want), string(d), cfg.colorEnabled(cc.Out))
	return cli.ExitCodeErr(1)
}

// writeDiff renders from -> to. Colored output shows inserts green and
// deletes red inline; otherwise changes are bracketed with +/-.
func writeDiff(w io.Writer, from, to string, colored bool) {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	ins := sprintf(colored, color.FgGreen)
	del := sprintf(colored, color.FgRed)
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			if colored {
				fmt.Fprint(w, ins("%s", d.Text))
			} else {
				fmt.Fprintf(w, "[+%s]", d.Text)
			}
		case diffpatch.DiffDelete:
			if colored {
				fmt.Fprint(w, del("%s", d.Text))
			} else {
				fmt.Fprintf(w, "[-%s]", d.Text)
			}
		case diffpatch.DiffEqual:
			fmt.Fprint(w, d.Text)
		}
	}
}
