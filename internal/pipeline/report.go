package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/backmassage/pathprune/internal/config"
	"github.com/backmassage/pathprune/internal/display"
	"github.com/backmassage/pathprune/internal/term"
)

// WriteReport writes entries to w in the given format.
//
//	plain  one rewritten path per line, same order as the input
//	diff   "old -> new" for changed paths only
//	json   array of {from, to, changed}
//	tree   folder tree of the rewritten paths
func WriteReport(w io.Writer, format config.Format, entries []Entry, p term.Palette) error {
	switch format {
	case config.FormatDiff:
		for _, e := range entries {
			if !e.Changed {
				continue
			}
			if _, err := fmt.Fprintf(w, "%s %s %s\n", e.From, p.Faint.Render("->"), p.Green.Render(e.To)); err != nil {
				return err
			}
		}
		return nil

	case config.FormatJSON:
		if entries == nil {
			entries = []Entry{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)

	case config.FormatTree:
		tos := make([]string, len(entries))
		for i, e := range entries {
			tos[i] = e.To
		}
		root := display.BuildTree(tos, dirExists)
		if len(root.Children) == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w, display.RenderTree(root, p))
		return err

	default:
		for _, e := range entries {
			if _, err := fmt.Fprintln(w, e.To); err != nil {
				return err
			}
		}
		return nil
	}
}

// dirExists reports whether path names an existing directory.
func dirExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
