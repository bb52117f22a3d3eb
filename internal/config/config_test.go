package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "2", cfg.MaxFolders)
	assert.Equal(t, FormatPlain, cfg.Format)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
	assert.GreaterOrEqual(t, cfg.Jobs, 1)
	require.NoError(t, cfg.Validate())
}

func TestValidate_Format(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		wantErr bool
	}{
		{"plain is valid", FormatPlain, false},
		{"diff is valid", FormatDiff, false},
		{"json is valid", FormatJSON, false},
		{"tree is valid", FormatTree, false},
		{"upper case is normalized", "JSON", false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "csv", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Format = tt.format
			err := cfg.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnknownFormat), "err = %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_ColorAndJobs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ColorMode = "sometimes"
	assert.True(t, errors.Is(cfg.Validate(), ErrUnknownColor))

	cfg = DefaultConfig()
	cfg.Jobs = 0
	assert.True(t, errors.Is(cfg.Validate(), ErrJobs))
}

func TestValidate_InvalidMaxFoldersIsNotFatal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxFolders = "abc"
	assert.NoError(t, cfg.Validate())
}

func TestSettings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxFolders = "-1"
	cfg.PriorityWords = "rock"
	cfg.AvoidWords = "live"
	cfg.Template = "<genre>//<artist>"
	s := cfg.Settings()
	assert.Equal(t, "-1", s.MaxFolders)
	assert.Equal(t, "rock", s.PriorityWords)
	assert.Equal(t, "live", s.AvoidWords)
	assert.Equal(t, "<genre>//<artist>", s.Template)
	assert.Nil(t, s.Chooser)
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pathprune.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "max_folders: \"-1\"\npriority_words: rock, jazz\navoid_words: live\nformat: tree\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "-1", cfg.MaxFolders)
	assert.Equal(t, "rock, jazz", cfg.PriorityWords)
	assert.Equal(t, "live", cfg.AvoidWords)
	assert.Equal(t, FormatTree, cfg.Format)
	assert.Equal(t, ColorAuto, cfg.ColorMode, "missing keys keep defaults")
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "max_folders: [unclosed\n"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv(EnvPriorityWords, "metal")
		t.Setenv(EnvMaxFolders, "3")
		cfg, err := Load(writeFile(t, "priority_words: rock\nmax_folders: \"1\"\n"))
		require.NoError(t, err)
		assert.Equal(t, "metal", cfg.PriorityWords)
		assert.Equal(t, "3", cfg.MaxFolders)
	})

	t.Run("empty env is ignored", func(t *testing.T) {
		t.Setenv(EnvAvoidWords, "")
		cfg, err := Load(writeFile(t, "avoid_words: live\n"))
		require.NoError(t, err)
		assert.Equal(t, "live", cfg.AvoidWords)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PriorityWords = "rock"
	cfg.Template = "<genre>//<artist>/<title>"
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.PriorityWords, loaded.PriorityWords)
	assert.Equal(t, cfg.Template, loaded.Template)
	assert.Equal(t, cfg.MaxFolders, loaded.MaxFolders)
}

func parse(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("pathprune", pflag.ContinueOnError)
	f := DefineFlags(fs, &cfg)
	require.NoError(t, fs.Parse(args))
	return &cfg, Resolve(fs, &cfg, f, fs.Args())
}

func TestResolve_Precedence(t *testing.T) {
	path := writeFile(t, "max_folders: \"5\"\npriority_words: rock\navoid_words: live\n")
	t.Setenv(EnvAvoidWords, "demo")

	cfg, err := parse(t, "--config", path, "-n", "-1", "a/b", "c/d")
	require.NoError(t, err)
	assert.Equal(t, "-1", cfg.MaxFolders, "flag beats file")
	assert.Equal(t, "rock", cfg.PriorityWords, "file beats default")
	assert.Equal(t, "demo", cfg.AvoidWords, "env beats file")
	assert.Equal(t, []string{"a/b", "c/d"}, cfg.Paths)
}

func TestResolve_Flags(t *testing.T) {
	cfg, err := parse(t, "--format", "diff", "--no-color", "--color", "-j", "3", "-v")
	require.NoError(t, err)
	assert.Equal(t, FormatDiff, cfg.Format)
	assert.Equal(t, ColorNever, cfg.ColorMode, "--no-color wins")
	assert.Equal(t, 3, cfg.Jobs)
	assert.True(t, cfg.Verbose)
	assert.Empty(t, cfg.Paths)
}

func TestResolve_Errors(t *testing.T) {
	_, err := parse(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	_, err = parse(t, "-j", "0")
	assert.True(t, errors.Is(err, ErrJobs))
}

func TestFormatFlag_RejectsUnknown(t *testing.T) {
	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("pathprune", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	DefineFlags(fs, &cfg)
	assert.Error(t, fs.Parse([]string{"--format", "xml"}))
}
