package accumulator

import (
	"errors"

	"github.com/forestrie/go-merkleaccumulator/zerobytes"
)

const (
	// MaxHeight bounds the tree height and so the size of the filled subtree
	// cache. A generated zero table carries one more level than this.
	MaxHeight = zerobytes.Levels - 1
	// HistorySize is the number of recent roots retained for IsKnownRoot.
	HistorySize = 256
)

var (
	ErrInvalidHeight    = errors.New("accumulator: height must be between 1 and MaxHeight")
	ErrCapacityExceeded = errors.New("accumulator: the tree is full")
	ErrNotInitialized   = errors.New("accumulator: the tree has no hasher, use New or Init")
	ErrNilHasher        = errors.New("accumulator: a hasher is required")
	ErrHasherMismatch   = errors.New("accumulator: state was produced with a different hash kind")
	ErrStateInvalid     = errors.New("accumulator: state fields are inconsistent")

	ErrStateBadSize    = errors.New("accumulator: state buffer size invalid")
	ErrStateBadMagic   = errors.New("accumulator: state magic invalid")
	ErrStateBadVersion = errors.New("accumulator: state version invalid")
)
