package accumulator

import (
	"github.com/forestrie/go-merkleaccumulator/hasher"
)

// LastRoot returns the root produced by the most recent insertion, or the
// empty tree root if there has been none.
func (t *MerkleTree) LastRoot() hasher.Hash {
	return t.Roots[t.CurrentRootIndex]
}

// IsKnownRoot reports whether root is still retained in the history.
//
// The scan starts at the newest root and walks backwards through the ring,
// wrapping past slot 0, over every populated slot. Once the ring has wrapped
// this includes the older roots above CurrentRootIndex which have not yet
// been overwritten.
func (t *MerkleTree) IsKnownRoot(root hasher.Hash) bool {
	i := t.CurrentRootIndex
	for n := t.retained(); n > 0; n-- {
		if t.Roots[i] == root {
			return true
		}
		i = (i + HistorySize - 1) % HistorySize
	}
	return false
}

// History returns the retained roots, newest first.
func (t *MerkleTree) History() []hasher.Hash {
	n := t.retained()
	roots := make([]hasher.Hash, 0, n)
	i := t.CurrentRootIndex
	for ; n > 0; n-- {
		roots = append(roots, t.Roots[i])
		i = (i + HistorySize - 1) % HistorySize
	}
	return roots
}

// retained is the number of populated history slots: the empty tree root
// plus one per insertion, capped by the ring size.
func (t *MerkleTree) retained() uint64 {
	n := t.NextIndex/2 + 1
	if n > HistorySize {
		return HistorySize
	}
	return n
}
