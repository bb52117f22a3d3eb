package prune

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Count
		wantErr bool
	}{
		{"positive", "2", 2, false},
		{"negative", "-1", -1, false},
		{"zero", "0", 0, false},
		{"whitespace", " 3 ", 3, false},
		{"plus sign", "+4", 4, false},
		{"empty means zero", "", 0, false},
		{"blank means zero", "   ", 0, false},
		{"huge positive saturates", "99999999999999999999", Count(math.MaxInt), false},
		{"huge negative saturates", "-99999999999999999999", Count(math.MinInt), false},
		{"letters", "abc", 0, true},
		{"float", "1.5", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCount(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidCount))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveWindow(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		n          Count
		tmplMarker int
		wantLimit  int
		wantMarker int
	}{
		{"zero is empty", "a/b/c/f", 0, -1, 0, -1},
		{"positive relative", "a/b/c/f", 2, -1, 2, -1},
		{"positive absolute skips root", "/a/b/c/f", 2, -1, 3, -1},
		{"positive clamps to folders", "a/b/f", 10, -1, 2, -1},
		{"positive absolute clamps", "/a/b/f", 10, -1, 3, -1},
		{"negative protects tail", "a/b/c/d/f", -1, -1, 3, -1},
		{"negative absolute", "/a/b/c/d/f", -2, -1, 3, -1},
		{"negative clamps to zero", "a/b/f", -5, -1, 0, -1},
		{"saturated positive clamps", "/a/b/f", Count(math.MaxInt), -1, 3, -1},
		{"saturated negative clamps", "a/b/f", Count(math.MinInt), -1, 0, -1},
		{"leaf only", "f", 3, -1, 0, -1},
		{"empty path", "", 3, -1, 0, -1},
		{"path marker overrides count", "a/b//c/f", 0, -1, 2, 2},
		{"path marker overrides negative count", "/a/b//c/f", -3, -1, 3, 3},
		{"template marker overrides count", "a/b/c/f", 5, 1, 1, -1},
		{"path marker beats template marker", "a//b/c/f", 5, 2, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ResolveWindow(ParsePath(tt.path), tt.n, tt.tmplMarker)
			assert.Equal(t, tt.wantLimit, w.Limit, "limit")
			assert.Equal(t, tt.wantMarker, w.Marker, "marker")
		})
	}
}

func TestWindow_NeverContainsLeaf(t *testing.T) {
	p := ParsePath("a,b/c,d")
	w := Window{Limit: 100, Marker: -1}
	assert.True(t, w.Contains(p, 0))
	assert.False(t, w.Contains(p, 1))
	assert.False(t, w.Contains(p, -1))
}

func TestTemplateMarker(t *testing.T) {
	tests := []struct {
		template string
		want     int
	}{
		{"", -1},
		{"<genre>/<artist>/<title>", -1},
		{"<genre>/<grouping>//<artist>/<year> - <album>", 2},
		{"/music/<genre>//<artist>/<title>", 3},
		{"<genre>//<artist>", 1},
	}
	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			assert.Equal(t, tt.want, TemplateMarker(tt.template))
		})
	}
}

func TestCount_Describe(t *testing.T) {
	assert.Equal(t, "the first 2 folders", Count(2).Describe())
	assert.Equal(t, "the first folder", Count(1).Describe())
	assert.Equal(t, "all folders except the last 3", Count(-3).Describe())
	assert.Equal(t, "only folders before a // marker", Count(0).Describe())
	assert.Equal(t, fmt.Sprintf("all folders except the last %d", uint(math.MaxInt)+1), Count(math.MinInt).Describe())
}
