// Package checkpoint publishes signed commitments to accumulator roots.
//
// A writer signs the state of its tree after some insertions and hands the
// COSE Sign1 message to verifiers. A verifier accepts the message only if
// the signature checks out and the committed root is still retained in its
// own copy of the root history, so commitments that are a little stale are
// still honored while ones that have aged out are not.
package checkpoint

import (
	"errors"
	"time"

	"github.com/forestrie/go-merkleaccumulator/accumulator"
	"github.com/forestrie/go-merkleaccumulator/hasher"
	"github.com/google/uuid"
)

var (
	ErrRootSize         = errors.New("checkpoint: root must be 32 bytes")
	ErrRootNotKnown     = errors.New("checkpoint: root is not in the retained history")
	ErrHashKindMismatch = errors.New("checkpoint: state was produced with a different hash kind")
	ErrStateMismatch    = errors.New("checkpoint: signed state is not possible for the local tree")
	ErrClaimsMissing    = errors.New("checkpoint: signed message has no issuer and subject claims")
)

// RootState defines the details included in a signed commitment to a tree.
type RootState struct {
	// LogID identifies the tree, it is the 16 bytes of a uuid.
	LogID    []byte `cbor:"1,keyasint"`
	HashKind uint8  `cbor:"2,keyasint"`
	Height   uint8  `cbor:"3,keyasint"`
	// NextIndex is the number of leaves committed to by Root.
	NextIndex uint64 `cbor:"4,keyasint"`
	Root      []byte `cbor:"5,keyasint"`
	// Timestamp is the unix time (milliseconds) read when the state was
	// captured. Including it allows for the same root to be re-signed.
	Timestamp int64 `cbor:"6,keyasint"`
}

// NewRootState captures the latest root of tree.
func NewRootState(logID uuid.UUID, tree *accumulator.MerkleTree, now time.Time) RootState {
	root := tree.LastRoot()
	return RootState{
		LogID:     logID[:],
		HashKind:  uint8(tree.Kind()),
		Height:    tree.TreeHeight(),
		NextIndex: tree.NextIndex,
		Root:      root[:],
		Timestamp: now.UnixMilli(),
	}
}

// LogUUID returns the tree identifier.
func (s RootState) LogUUID() (uuid.UUID, error) {
	return uuid.FromBytes(s.LogID)
}

// RootHash returns the committed root as a fixed size digest.
func (s RootState) RootHash() (hasher.Hash, error) {
	var h hasher.Hash
	if len(s.Root) != hasher.HashBytes {
		return h, ErrRootSize
	}
	copy(h[:], s.Root)
	return h, nil
}
