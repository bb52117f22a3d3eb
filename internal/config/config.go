// Package config holds runtime configuration: defaults, the optional YAML
// file, environment overrides, CLI flags, and validation. Defaults match
// the rename plugin the tool grew out of.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/backmassage/pathprune/internal/prune"
)

// Sentinel errors returned by Validate.
var (
	ErrUnknownFormat = errors.New("invalid format (use 'plain', 'diff', 'json' or 'tree')")
	ErrUnknownColor  = errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	ErrJobs          = errors.New("jobs must be at least 1")
)

// --- Enum types for validated string fields ---

// Format selects how rewritten paths are printed.
type Format string

const (
	FormatPlain Format = "plain" // One rewritten path per line (default).
	FormatDiff  Format = "diff"  // "old -> new" for changed paths only.
	FormatJSON  Format = "json"  // Array of {from, to, changed}.
	FormatTree  Format = "tree"  // Folder tree preview of the new layout.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then [Resolve] layers the YAML file, environment and flags on top before
// it is passed (by pointer) to packages that need it.
type Config struct {
	// Pruning rules.
	MaxFolders    string `yaml:"max_folders"`    // Default: "2". Free text; parsed by prune.ParseCount.
	PriorityWords string `yaml:"priority_words"` // Comma-separated, first match wins.
	AvoidWords    string `yaml:"avoid_words"`    // Comma-separated.
	Template      string `yaml:"template"`       // Unsubstituted rename pattern, for // detection.

	// Input and output.
	InputFile string `yaml:"input"`  // Paths file ("-" or empty: args, then stdin).
	Format    Format `yaml:"format"` // Default: "plain".
	Jobs      int    `yaml:"jobs"`   // Default: runtime.NumCPU().

	// Display and logging.
	Verbose   bool      `yaml:"verbose"`
	ColorMode ColorMode `yaml:"color"`    // Default: "auto".
	LogFile   string    `yaml:"log_file"` // Optional log file path.

	// Set from flags only.
	ConfigFile string   `yaml:"-"`
	Paths      []string `yaml:"-"` // Positional arguments.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// the config file, environment, and flags are applied.
func DefaultConfig() Config {
	return Config{
		MaxFolders: "2",
		Format:     FormatPlain,
		Jobs:       runtime.NumCPU(),
		ColorMode:  ColorAuto,
	}
}

// Settings returns the pruning settings in the form the prune package
// consumes.
func (c *Config) Settings() prune.Settings {
	return prune.Settings{
		MaxFolders:    c.MaxFolders,
		PriorityWords: c.PriorityWords,
		AvoidWords:    c.AvoidWords,
		Template:      c.Template,
	}
}

// Validate checks enum fields and the worker count. MaxFolders is not
// checked here: an unparsable count is a warning handled by the rewriter,
// never a startup failure.
func (c *Config) Validate() error {
	c.Format = Format(strings.ToLower(strings.TrimSpace(string(c.Format))))
	switch c.Format {
	case FormatPlain, FormatDiff, FormatJSON, FormatTree:
		// valid
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}

	c.ColorMode = ColorMode(strings.ToLower(strings.TrimSpace(string(c.ColorMode))))
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("%w: %q", ErrUnknownColor, c.ColorMode)
	}

	if c.Jobs < 1 {
		return ErrJobs
	}
	return nil
}
