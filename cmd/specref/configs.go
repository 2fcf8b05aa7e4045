package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/specref/encode"
	"github.com/signadot/specref/format"
	"github.com/signadot/specref/load"
	"github.com/signadot/specref/overlay"
	"github.com/signadot/specref/registry"
)

type MainConfig struct {
	C       string `cli:"name=C desc='base directory for documents (default .)'"`
	Overlay string `cli:"name=overlay desc='overlay file patching documents at load time'"`
	Depth   int    `cli:"name=depth desc='max reference chain length'"`

	J bool `cli:"name=j aliases=json desc='output in json'"`
	Y bool `cli:"name=y aliases=yaml desc='output in yaml'"`

	Compact bool `cli:"name=compact desc='compact json output'"`
	Color   bool `cli:"name=color desc='colored status output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) baseDir() string {
	if cfg.C == "" {
		return "."
	}
	return cfg.C
}

func (cfg *MainConfig) registry() (*registry.Registry, error) {
	var ldr load.Loader = load.NewDir(cfg.baseDir())
	if cfg.Overlay != "" {
		o, err := overlay.File(cfg.Overlay)
		if err != nil {
			return nil, err
		}
		ldr = overlay.NewLoader(ldr, o)
	}
	var opts []registry.Option
	if cfg.Depth > 0 {
		opts = append(opts, registry.WithMaxDepth(cfg.Depth))
	}
	return registry.New(ldr, opts...), nil
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	f := format.YAMLFormat
	if cfg.J {
		f = format.JSONFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
	}
	if cfg.Compact {
		res = append(res, encode.Compact())
	}
	return res
}

// colorEnabled decides whether status output to w gets colored: an
// explicit -color setting wins, otherwise color turns on when w is a
// terminal.
func (cfg *MainConfig) colorEnabled(w io.Writer) bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return cfg.Color
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func sprintf(enabled bool, attrs ...color.Attribute) func(string, ...any) string {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintfFunc()
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type RefsConfig struct {
	*MainConfig

	Recursive bool   `cli:"name=r aliases=recursive desc='follow references into other documents'"`
	Where     string `cli:"name=where desc='filter edges with an expression'"`

	Refs *cli.Command
}

type LintConfig struct {
	*MainConfig

	Refs bool `cli:"name=refs desc='also list intact references'"`

	Lint *cli.Command
}

type BundleConfig struct {
	*MainConfig

	Check string `cli:"name=check desc='diff the bundle against a file instead of writing'"`

	Bundle *cli.Command
}

type TypesConfig struct {
	*MainConfig

	Types *cli.Command
}
