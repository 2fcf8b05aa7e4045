package main

import (
	"fmt"
	"path"
	"strings"
	"text/tabwriter"

	"github.com/scott-cotton/cli"

	"github.com/signadot/specref/ref"
	"github.com/signadot/specref/schema"
)

func types(cfg *TypesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Types.Parse(cc, args)
	if err != nil {
		cfg.Types.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: types requires at least one reference", cli.ErrUsage)
	}
	g, err := cfg.registry()
	if err != nil {
		return err
	}
	x := schema.NewIndex()
	for _, arg := range args {
		r, err := ref.Parse(arg)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		f, err := g.Get(r)
		if err != nil {
			return fmt.Errorf("error resolving %s: %w", arg, err)
		}
		if err := x.Add(schema.New(f), rootHint(r)); err != nil {
			return fmt.Errorf("error indexing %s: %w", arg, err)
		}
	}
	tw := tabwriter.NewWriter(cc.Out, 2, 8, 2, ' ', 0)
	for _, r := range x.Refs() {
		name, _ := x.Name(r)
		fmt.Fprintf(tw, "%s\t%s\n", name, r)
	}
	return tw.Flush()
}

// rootHint names the position of a root schema: its last segment, or
// the document file stem at a document root.
func rootHint(r ref.Reference) string {
	if segs := r.Segments(); len(segs) > 0 {
		return segs[len(segs)-1]
	}
	base := path.Base(r.Document())
	return strings.TrimSuffix(base, path.Ext(base))
}
