package zerobytes

import (
	"github.com/forestrie/go-merkleaccumulator/hasher"
)

// Generate computes a zero value table of the requested number of levels.
//
// The canonical leaf is paired with itself once, and then each entry is the
// self pair hash of the previous one:
//
//	prev     = H(leaf || leaf)
//	table[0] = H(prev || prev)
//	table[i] = H(table[i-1] || table[i-1])
func Generate(h hasher.Hasher, leaf hasher.Hash, levels int) (Table, error) {
	if levels <= 0 {
		return nil, ErrBadLevels
	}

	prev, err := h.HashV(leaf[:], leaf[:])
	if err != nil {
		return nil, err
	}

	table := make(Table, levels)
	for i := 0; i < levels; i++ {
		if prev, err = h.HashV(prev[:], prev[:]); err != nil {
			return nil, err
		}
		table[i] = prev
	}
	return table, nil
}
