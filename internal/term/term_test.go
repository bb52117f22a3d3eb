package term

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/pathprune/internal/config"
)

func TestNewPalette_Never(t *testing.T) {
	p := NewPalette(config.ColorNever, os.Stderr)
	assert.Equal(t, "[WARN]", p.Yellow.Render("[WARN]"))
}

func TestNewPalette_Always(t *testing.T) {
	p := NewPalette(config.ColorAlways, nil)
	assert.True(t, strings.Contains(p.Red.Render("x"), "\x1b["))
}

func TestNewPalette_AutoOnRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
	assert.Equal(t, "x", NewPalette(config.ColorAuto, f).Red.Render("x"))
}

func TestIsTerminal_Nil(t *testing.T) {
	assert.False(t, IsTerminal(nil))
}
