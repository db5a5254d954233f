package accumulator

import "math/bits"

// LeafCapacity returns the number of leaves a tree of the given height holds.
// Leaves arrive in pairs, so this is twice the number of Insert calls the
// tree accepts.
func LeafCapacity(height uint8) uint64 {
	return uint64(1) << height
}

// MinHeight returns the smallest height able to hold leafCount leaves.
func MinHeight(leafCount uint64) (uint8, error) {
	if leafCount <= 2 {
		return 1, nil
	}
	height := uint8(bits.Len64(leafCount - 1))
	if height > MaxHeight {
		return 0, ErrInvalidHeight
	}
	return height, nil
}
