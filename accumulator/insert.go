package accumulator

import (
	"github.com/forestrie/go-merkleaccumulator/hasher"
)

// Combine returns the parent digest of a left and right child.
func (t *MerkleTree) Combine(left, right hasher.Hash) (hasher.Hash, error) {
	if t.hasher == nil {
		return hasher.Hash{}, ErrNotInitialized
	}
	return t.hasher.HashV(left[:], right[:])
}

// Insert adds the pair of leaves at the next free position and records the
// resulting root.
//
// The pair's parent sits at level 1, index NextIndex/2. Walking up, an even
// index means the running hash is a left child: it becomes the filled subtree
// for the level and is paired with the zero value. An odd index means it is a
// right child and is paired with the filled subtree already stored.
//
// Either every update is applied or, on error, none is.
func (t *MerkleTree) Insert(leafA, leafB hasher.Hash) error {
	if t.hasher == nil {
		return ErrNotInitialized
	}
	if t.NextIndex >= LeafCapacity(t.Height) {
		return ErrCapacityExceeded
	}

	currentIndex := t.NextIndex / 2
	running, err := t.Combine(leafA, leafB)
	if err != nil {
		return err
	}

	filled := t.FilledSubtrees
	for i := 1; i < int(t.Height); i++ {
		if currentIndex%2 == 0 {
			filled[i] = running
			running, err = t.Combine(running, t.zeroBytes[i])
		} else {
			running, err = t.Combine(filled[i], running)
		}
		if err != nil {
			return err
		}
		currentIndex /= 2

		if t.log != nil {
			t.log.Debugf("insert: next=%d level=%d v=%x", t.NextIndex, i, running[:])
		}
	}

	t.FilledSubtrees = filled
	t.CurrentRootIndex = (t.CurrentRootIndex + 1) % HistorySize
	t.Roots[t.CurrentRootIndex] = running
	t.NextIndex += 2
	return nil
}
