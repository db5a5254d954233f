// Package accumulator implements an incremental, append only Merkle tree of
// fixed height.
//
// Leaves are admitted two at a time. Rather than the full node set the tree
// keeps one digest per level, the most recently completed left subtree at
// that level, which is all that is needed to extend it. Positions that have
// not been filled yet are represented by the zero value table for their
// level. Every insertion produces a new root which is recorded in a fixed
// size ring, so verifiers can accept a root that is recent but not the latest.
//
//	level 2              root
//	                  /        \
//	level 1       h(a,b)        z[1]     <- filled_subtrees[1] = h(a,b)
//	             /     \
//	level 0     a       b
//
// The tree is designed for a single writer. There is no internal locking:
// callers sharing a tree must serialize Insert against everything else.
// IsKnownRoot and LastRoot may run concurrently with each other.
package accumulator

import (
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-merkleaccumulator/hasher"
	"github.com/forestrie/go-merkleaccumulator/zerobytes"
)

// State is the fixed size record a host persists or embeds. The zero value
// table and the hasher are supplied again on every Restore, only the hasher
// kind is recorded.
type State struct {
	Height uint8
	// FilledSubtrees[i] is the latest left subtree completed at level i. Only
	// the first Height entries are used.
	FilledSubtrees [MaxHeight]hasher.Hash
	// Roots is the ring of recent roots, Roots[CurrentRootIndex] is the newest.
	Roots            [HistorySize]hasher.Hash
	NextIndex        uint64
	CurrentRootIndex uint64
	HashKind         hasher.Kind
}

// MerkleTree is the accumulator engine.
type MerkleTree struct {
	State

	hasher    hasher.Hasher
	zeroBytes zerobytes.Table
	log       logger.Logger
}

// New constructs a fresh, empty tree.
func New(height uint8, h hasher.Hasher, zeroBytes zerobytes.Table, opts ...Option) (*MerkleTree, error) {
	t := &MerkleTree{}
	if err := t.Init(height, h, zeroBytes, opts...); err != nil {
		return nil, err
	}
	return t, nil
}

// NewForKind constructs a fresh tree using the default zero value table for
// kind.
func NewForKind(height uint8, kind hasher.Kind, opts ...Option) (*MerkleTree, error) {
	h, err := hasher.New(kind)
	if err != nil {
		return nil, err
	}
	zeroBytes, err := zerobytes.For(kind)
	if err != nil {
		return nil, err
	}
	return New(height, h, zeroBytes, opts...)
}

// Init re-initializes t in place, discarding any previous state. On error t
// is left unchanged.
func (t *MerkleTree) Init(height uint8, h hasher.Hasher, zeroBytes zerobytes.Table, opts ...Option) error {
	if err := checkParams(height, h, zeroBytes); err != nil {
		return err
	}

	t.State = State{
		Height:   height,
		HashKind: h.Kind(),
	}
	copy(t.FilledSubtrees[:height], zeroBytes[:height])
	t.Roots[0] = zeroBytes[height-1]

	t.attach(h, zeroBytes, opts...)
	return nil
}

// Restore rebuilds a tree from a previously captured State.
func Restore(state State, h hasher.Hasher, zeroBytes zerobytes.Table, opts ...Option) (*MerkleTree, error) {
	if err := checkParams(state.Height, h, zeroBytes); err != nil {
		return nil, err
	}
	if state.HashKind != h.Kind() {
		return nil, ErrHasherMismatch
	}
	if err := state.validate(); err != nil {
		return nil, err
	}

	t := &MerkleTree{State: state}
	t.attach(h, zeroBytes, opts...)
	return t, nil
}

// Snapshot returns a copy of the tree state.
func (t *MerkleTree) Snapshot() State {
	return t.State
}

func (t *MerkleTree) Kind() hasher.Kind { return t.HashKind }

// TreeHeight returns the height fixed at construction.
func (t *MerkleTree) TreeHeight() uint8 { return t.Height }

// Inserted returns the number of leaves inserted so far.
func (t *MerkleTree) Inserted() uint64 { return t.NextIndex }

// Capacity returns the total number of leaves the tree can hold.
func (t *MerkleTree) Capacity() uint64 { return LeafCapacity(t.Height) }

func (t *MerkleTree) attach(h hasher.Hasher, zeroBytes zerobytes.Table, opts ...Option) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	t.hasher = h
	t.zeroBytes = zeroBytes
	t.log = o.Log
}

func checkParams(height uint8, h hasher.Hasher, zeroBytes zerobytes.Table) error {
	if height == 0 || height > MaxHeight {
		return ErrInvalidHeight
	}
	if h == nil {
		return ErrNilHasher
	}
	return zerobytes.Validate(zeroBytes, int(height))
}

// validate checks the invariants the engine maintains between insertions.
func (s State) validate() error {
	if s.NextIndex%2 != 0 || s.NextIndex > LeafCapacity(s.Height) {
		return ErrStateInvalid
	}
	if s.CurrentRootIndex != (s.NextIndex/2)%HistorySize {
		return ErrStateInvalid
	}
	return nil
}
