package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/backmassage/pathprune/internal/config"
)

// maxLineSize bounds a single input path line.
const maxLineSize = 1024 * 1024

// ReadPaths reads one path per line from r. Blank lines are kept as empty
// paths so output lines stay aligned with input lines. A trailing "\r" is
// stripped.
func ReadPaths(r io.Reader) ([]string, error) {
	var paths []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		paths = append(paths, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read paths: %w", err)
	}
	return paths, nil
}

// LoadInput returns the batch for cfg: positional paths when given,
// otherwise the --from file, otherwise stdin. "-" as the file name means
// stdin.
func LoadInput(cfg *config.Config, stdin io.Reader) ([]string, error) {
	if len(cfg.Paths) > 0 {
		return append([]string(nil), cfg.Paths...), nil
	}
	if cfg.InputFile == "" || cfg.InputFile == "-" {
		return ReadPaths(stdin)
	}
	f, err := os.Open(cfg.InputFile)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return ReadPaths(f)
}
