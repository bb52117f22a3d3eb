package pipeline

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// ErrCollision marks a warning about distinct inputs that prune to the
// same output path.
var ErrCollision = errors.New("paths collide after pruning")

// Collision is one output path claimed by more than one distinct input.
type Collision struct {
	Output string
	Inputs []string
}

// Err wraps [ErrCollision] with the details of c.
func (c Collision) Err() error {
	return fmt.Errorf("%w: %d inputs -> %s", ErrCollision, len(c.Inputs), c.Output)
}

// FindCollisions tracks which input owns each output path and returns every
// output claimed by two or more distinct inputs, ordered by output path.
// Collisions already present before pruning (identical inputs) are not
// reported.
func FindCollisions(entries []Entry) []Collision {
	owners := make(map[string][]string) // output path -> distinct inputs
	for _, e := range entries {
		if e.To == "" {
			continue
		}
		inputs := owners[e.To]
		if !slices.Contains(inputs, e.From) {
			owners[e.To] = append(inputs, e.From)
		}
	}

	var out []Collision
	for output, inputs := range owners {
		if len(inputs) > 1 {
			out = append(out, Collision{Output: output, Inputs: inputs})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Output < out[j].Output })
	return out
}
