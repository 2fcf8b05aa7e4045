package main

import (
	"fmt"
	"io"

	"github.com/expr-lang/expr"
	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/signadot/specref/inspect"
)

func refs(cfg *RefsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Refs.Parse(cc, args)
	if err != nil {
		cfg.Refs.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: refs requires at least one document", cli.ErrUsage)
	}
	g, err := cfg.registry()
	if err != nil {
		return err
	}
	var edges []inspect.Edge
	if cfg.Recursive {
		gr, err := inspect.Walk(g, args...)
		if err != nil {
			return err
		}
		edges = gr.Edges
	} else {
		for _, doc := range args {
			es, err := inspect.Edges(g, doc)
			if err != nil {
				return fmt.Errorf("error scanning %s: %w", doc, err)
			}
			edges = append(edges, es...)
		}
	}
	filter, err := compileWhere(cfg.Where)
	if err != nil {
		return err
	}
	for _, e := range edges {
		if filter != nil {
			keep, err := filter(e)
			if err != nil {
				return fmt.Errorf("error filtering %s: %w", e.Source, err)
			}
			if !keep {
				continue
			}
		}
		writeEdge(cc.Out, e, cfg.colorEnabled(cc.Out))
	}
	return nil
}

func writeEdge(w io.Writer, e inspect.Edge, colored bool) {
	if e.Broken() {
		bad := sprintf(colored, color.FgRed)
		fmt.Fprintf(w, "%s %s -> %q: %v\n", bad("broken"), e.Source, e.Raw, e.Err)
		return
	}
	ok := sprintf(colored, color.FgGreen)
	fmt.Fprintf(w, "%s %s -> %q => %s\n", ok("ok"), e.Source, e.Raw, e.Resolved)
}

// edgeEnv is the expression environment of -where, one value per edge.
type edgeEnv struct {
	Doc      string `expr:"doc"`
	Source   string `expr:"source"`
	Raw      string `expr:"raw"`
	Target   string `expr:"target"`
	Resolved string `expr:"resolved"`
	Broken   bool   `expr:"broken"`
	Error    string `expr:"error"`
}

func compileWhere(s string) (func(inspect.Edge) (bool, error), error) {
	if s == "" {
		return nil, nil
	}
	prg, err := expr.Compile(s, expr.Env(edgeEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return func(e inspect.Edge) (bool, error) {
		env := edgeEnv{
			Doc:      e.Source.Document(),
			Source:   e.Source.String(),
			Raw:      e.Raw,
			Target:   e.Target.String(),
			Resolved: e.Resolved.String(),
			Broken:   e.Broken(),
		}
		if e.Err != nil {
			env.Error = e.Err.Error()
		}
		out, err := expr.Run(prg, env)
		if err != nil {
			return false, err
		}
		b, ok := out.(bool)
		if !ok {
			return false, fmt.Errorf("where expression returned %T, not bool", out)
		}
		return b, nil
	}, nil
}
