package cipher

import "fmt"

// RailFence writes the text in a zigzag across depth rails and reads the rails
// out top to bottom. Every character, alphabetic or not, occupies a zigzag
// position. A depth of at least 2 is required; depths at or beyond the text
// length degenerate naturally to the identity.
type RailFence struct {
	depth int
}

func NewRailFence(depth int) (*RailFence, error) {
	if depth < 2 {
		return nil, fmt.Errorf("%w: rail depth must be at least 2, got %d", ErrInvalidKey, depth)
	}
	return &RailFence{depth: depth}, nil
}

func (r *RailFence) Name() string { return NameRailFence }

func (r *RailFence) Encrypt(text string) (string, error) {
	rails := make([][]byte, r.depth)
	for i, rail := range r.pattern(len(text)) {
		rails[rail] = append(rails[rail], text[i])
	}
	out := make([]byte, 0, len(text))
	for _, rail := range rails {
		out = append(out, rail...)
	}
	return string(out), nil
}

func (r *RailFence) Decrypt(text string) (string, error) {
	pattern := r.pattern(len(text))
	counts := make([]int, r.depth)
	for _, rail := range pattern {
		counts[rail]++
	}
	// starts[k] is the offset of rail k within the ciphertext
	starts := make([]int, r.depth)
	for k := 1; k < r.depth; k++ {
		starts[k] = starts[k-1] + counts[k-1]
	}
	out := make([]byte, len(text))
	for i, rail := range pattern {
		out[i] = text[starts[rail]]
		starts[rail]++
	}
	return string(out), nil
}

// pattern returns the rail index for each character position.
func (r *RailFence) pattern(n int) []int {
	pattern := make([]int, n)
	rail, direction := 0, 1
	for i := 0; i < n; i++ {
		pattern[i] = rail
		rail += direction
		if rail == r.depth-1 {
			direction = -1
		} else if rail == 0 {
			direction = 1
		}
	}
	return pattern
}
