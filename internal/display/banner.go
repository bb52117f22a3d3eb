package display

import (
	"fmt"
	"io"

	"github.com/backmassage/pathprune/internal/term"
)

const banner = `               _   _
 _ __  __ _ __| |_| |_  _ __ _ _ _  _ _ _  ___
| '_ \/ _` + "`" + ` |  _| ' \| '_ \ '_| || | ' \/ -_)
| .__/\__,_|\__|_||_| .__/_|  \_,_|_||_\___|
|_|                 |_|`

// PrintBanner writes the ASCII art banner to w in the palette's magenta.
func PrintBanner(w io.Writer, p term.Palette) {
	fmt.Fprintln(w, p.Magenta.Render(banner))
}
