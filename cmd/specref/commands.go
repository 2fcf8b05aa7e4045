package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "specref").
		WithSynopsis("specref [opts] command [opts]").
		WithDescription("specref is a tool for working with cross-document references.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return specrefMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			RefsCommand(cfg),
			LintCommand(cfg),
			BundleCommand(cfg),
			TypesCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path#pointer> [more references]").
		WithDescription("resolve references and print their values").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func RefsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RefsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Refs, "refs").
		WithSynopsis("refs [-r] [-where expr] [documents]").
		WithDescription("list the reference edges of documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return refs(cfg, cc, args)
		})
}

func LintCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LintConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Lint, "lint").
		WithSynopsis("lint [documents]").
		WithDescription("report dangling and circular references").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lint(cfg, cc, args)
		})
}

func BundleCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BundleConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Bundle, "bundle").
		WithAliases("b").
		WithSynopsis("bundle [-check file] <document>").
		WithDescription("inline a document graph into one self-contained document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return specrefBundle(cfg, cc, args)
		})
}

func TypesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TypesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Types, "types").
		WithSynopsis("types <path#pointer> [more references]").
		WithDescription("name the object schemas reachable from references").
		WithRun(func(cc *cli.Context, args []string) error {
			return types(cfg, cc, args)
		})
}
