package cipher

import (
	"fmt"
	"sort"
)

// Columnar is a keyed columnar transposition. The text (every character, not
// just letters) fills a grid row-wise, one column per key letter; columns are
// read out in the order of the sorted key letters, ties broken by original
// position. The final row stays ragged: no padding character is ever written,
// so decryption recovers the text exactly.
type Columnar struct {
	// order[c] is the read-out rank of original column c.
	order []int
}

func NewColumnar(keyword string) (*Columnar, error) {
	letters := keywordLetters(keyword)
	if len(letters) == 0 {
		return nil, fmt.Errorf("%w: columnar keyword needs at least one letter", ErrInvalidKey)
	}
	return &Columnar{order: columnOrder(letters)}, nil
}

// columnOrder derives the permutation of column read ranks from the key
// letters: sort by letter, ties by original left-to-right position.
func columnOrder(letters []byte) []int {
	idx := make([]int, len(letters))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return letters[idx[a]] < letters[idx[b]]
	})
	order := make([]int, len(letters))
	for rank, col := range idx {
		order[col] = rank
	}
	return order
}

func (c *Columnar) Name() string { return NameColumnar }

func (c *Columnar) Encrypt(text string) (string, error) {
	cols := len(c.order)
	// byRank[r] collects the content of the column read out r-th.
	byRank := make([][]byte, cols)
	for i := 0; i < len(text); i++ {
		rank := c.order[i%cols]
		byRank[rank] = append(byRank[rank], text[i])
	}
	out := make([]byte, 0, len(text))
	for _, column := range byRank {
		out = append(out, column...)
	}
	return string(out), nil
}

func (c *Columnar) Decrypt(text string) (string, error) {
	cols := len(c.order)
	base := len(text) / cols
	extra := len(text) % cols
	// Row-wise filling puts the extra characters in the leftmost columns.
	height := func(col int) int {
		if col < extra {
			return base + 1
		}
		return base
	}
	// starts[rank] is the ciphertext offset of the column with that rank.
	colByRank := make([]int, cols)
	for col := 0; col < cols; col++ {
		colByRank[c.order[col]] = col
	}
	starts := make([]int, cols)
	offset := 0
	for rank := 0; rank < cols; rank++ {
		starts[rank] = offset
		offset += height(colByRank[rank])
	}
	out := make([]byte, 0, len(text))
	taken := make([]int, cols)
	for i := 0; i < len(text); i++ {
		col := i % cols
		rank := c.order[col]
		out = append(out, text[starts[rank]+taken[col]])
		taken[col]++
	}
	return string(out), nil
}
