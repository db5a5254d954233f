package accumulatortesting

import (
	"errors"

	"github.com/forestrie/go-merkleaccumulator/hasher"
	"github.com/forestrie/go-merkleaccumulator/zerobytes"
)

var ErrFullTreeOverflow = errors.New("accumulatortesting: too many leaves for the tree height")

// FullTree keeps every leaf and recomputes the root from scratch, as a
// reference for the incremental engine.
//
// It uses the same conventions as the engine: the empty sibling of a node at
// level i is zeroBytes[i], and the root of a tree with no leaves is
// zeroBytes[height-1].
type FullTree struct {
	Height    uint8
	Leaves    []hasher.Hash
	hasher    hasher.Hasher
	zeroBytes zerobytes.Table
}

func NewFullTree(height uint8, h hasher.Hasher, zeroBytes zerobytes.Table) *FullTree {
	return &FullTree{Height: height, hasher: h, zeroBytes: zeroBytes}
}

func (ft *FullTree) Insert(leafA, leafB hasher.Hash) error {
	if uint64(len(ft.Leaves))+2 > uint64(1)<<ft.Height {
		return ErrFullTreeOverflow
	}
	ft.Leaves = append(ft.Leaves, leafA, leafB)
	return nil
}

// Root rebuilds every level from the leaves.
func (ft *FullTree) Root() (hasher.Hash, error) {
	if len(ft.Leaves) == 0 {
		return ft.zeroBytes[ft.Height-1], nil
	}

	// level 1: one node per leaf pair
	nodes := make([]hasher.Hash, 0, len(ft.Leaves)/2)
	for i := 0; i < len(ft.Leaves); i += 2 {
		h, err := ft.hasher.HashV(ft.Leaves[i][:], ft.Leaves[i+1][:])
		if err != nil {
			return hasher.Hash{}, err
		}
		nodes = append(nodes, h)
	}

	for level := 1; level < int(ft.Height); level++ {
		if len(nodes)%2 == 1 {
			nodes = append(nodes, ft.zeroBytes[level])
		}
		parents := make([]hasher.Hash, 0, len(nodes)/2)
		for i := 0; i < len(nodes); i += 2 {
			h, err := ft.hasher.HashV(nodes[i][:], nodes[i+1][:])
			if err != nil {
				return hasher.Hash{}, err
			}
			parents = append(parents, h)
		}
		nodes = parents
	}
	return nodes[0], nil
}
