package config

// This file registers CLI flags on a pflag.FlagSet (cobra's flag type) and
// resolves the final configuration.
// Negated flags (--no-color) are applied after parsing so Config defaults
// hold unless the user passes them.

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flags holds flag values that do not map one-to-one onto Config fields.
type Flags struct {
	forceColor bool
	noColor    bool
}

// DefineFlags registers all configuration flags on fs, bound to cfg.
// Values in cfg at call time become the flag defaults.
func DefineFlags(fs *pflag.FlagSet, cfg *Config) *Flags {
	f := &Flags{}
	definePruneFlags(fs, cfg)
	defineIOFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, f)
	return f
}

// definePruneFlags registers -n/--max-folders, -p/--prefer, -a/--avoid, -t/--template.
func definePruneFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.MaxFolders, "max-folders", "n", cfg.MaxFolders,
		"Folders to process: N > 0 first N, N < 0 protect last |N|, 0 only before //")
	fs.StringVarP(&cfg.PriorityWords, "prefer", "p", cfg.PriorityWords,
		"Preferred values, comma-separated (first match wins)")
	fs.StringVarP(&cfg.AvoidWords, "avoid", "a", cfg.AvoidWords,
		"Avoided values, comma-separated")
	fs.StringVarP(&cfg.Template, "template", "t", cfg.Template,
		"Rename template, used to locate a // marker")
}

// defineIOFlags registers -f/--from, --format, -j/--jobs, -c/--config.
func defineIOFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.InputFile, "from", "f", cfg.InputFile,
		"Read paths from file, one per line (- for stdin)")
	fs.Var(&formatValue{&cfg.Format}, "format", "Output format: plain | diff | json | tree")
	fs.IntVarP(&cfg.Jobs, "jobs", "j", cfg.Jobs, "Parallel workers")
	fs.StringVarP(&cfg.ConfigFile, "config", "c", cfg.ConfigFile, "YAML config file")
}

// defineDisplayFlags registers --color, --no-color, -v/--verbose, -l/--log.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, f *Flags) {
	fs.BoolVar(&f.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", cfg.LogFile, "Append logs to file")
}

// Resolve layers configuration sources onto cfg after fs has been parsed.
// Precedence: defaults < config file < environment < flags set on the
// command line. args become cfg.Paths. The result is validated.
func Resolve(fs *pflag.FlagSet, cfg *Config, f *Flags, args []string) error {
	// Flags are bound to cfg's fields, so remember what the user actually
	// typed before cfg is rebuilt underneath them.
	changed := make(map[string]string)
	fs.Visit(func(fl *pflag.Flag) {
		changed[fl.Name] = fl.Value.String()
	})

	base := DefaultConfig()
	if cfg.ConfigFile != "" {
		loaded, err := Load(cfg.ConfigFile)
		if err != nil {
			return err
		}
		base = loaded
	} else {
		base.applyEnvOverrides()
	}
	*cfg = base

	for name, value := range changed {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("--%s: %w", name, err)
		}
	}

	applyNegatedFlags(cfg, f)
	cfg.Paths = args
	return cfg.Validate()
}

// applyNegatedFlags copies color flags into cfg. --no-color wins.
func applyNegatedFlags(cfg *Config, f *Flags) {
	if f == nil {
		return
	}
	if f.noColor {
		cfg.ColorMode = ColorNever
	} else if f.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// pflag.Value adapter so Format can be used with fs.Var.

type formatValue struct{ p *Format }

func (v *formatValue) String() string { return string(*v.p) }
func (v *formatValue) Type() string   { return "format" }
func (v *formatValue) Set(s string) error {
	f := Format(s)
	switch f {
	case FormatPlain, FormatDiff, FormatJSON, FormatTree:
		*v.p = f
		return nil
	}
	return fmt.Errorf("invalid format %q (use 'plain', 'diff', 'json' or 'tree')", s)
}
