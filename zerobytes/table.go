// Package zerobytes holds the zero value tables consumed by the accumulator.
//
// Entry i of a table is the digest of a perfectly empty subtree at level i
// under one hash function. Tables are produced offline (see cmd/zerogen) and
// are immutable once handed to an accumulator.
package zerobytes

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/forestrie/go-merkleaccumulator/hasher"
)

// Levels is the number of entries a generated table carries. It is one more
// than the tallest tree an accumulator supports.
const Levels = 19

// Table is a height indexed sequence of empty subtree digests.
type Table []hasher.Hash

var (
	ErrTableTooShort = errors.New("zerobytes: table has fewer levels than the tree height")
	ErrBadLevels     = errors.New("zerobytes: level count must be positive")
)

// DefaultLeaf is the canonical empty leaf the generated tables start from.
var DefaultLeaf = UniformLeaf(0x01)

// UniformLeaf returns a leaf with every byte set to b.
func UniformLeaf(b byte) hasher.Hash {
	var leaf hasher.Hash
	copy(leaf[:], bytes.Repeat([]byte{b}, hasher.HashBytes))
	return leaf
}

// Validate checks the table can serve a tree of the given height.
func Validate(table Table, height int) error {
	if len(table) < height {
		return fmt.Errorf("%w: have %d, need %d", ErrTableTooShort, len(table), height)
	}
	return nil
}
