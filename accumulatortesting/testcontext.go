package accumulatortesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-merkleaccumulator/hasher"
)

type TestContext struct {
	Log logger.Logger
	T   *testing.T
	rng *rand.Rand
}

type TestConfig struct {
	// Seed fixes the leaf generator so the same data is produced from run to
	// run. It is normal to force it to some fixed value.
	Seed            int64
	TestLabelPrefix string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T:   t,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
	logger.New("INFO")
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

// Leaf returns a single pseudo random leaf.
func (c *TestContext) Leaf() hasher.Hash {
	var leaf hasher.Hash
	_, _ = c.rng.Read(leaf[:])
	return leaf
}

// LeafPairs returns n pseudo random leaf pairs, in insertion order.
func (c *TestContext) LeafPairs(n int) [][2]hasher.Hash {
	pairs := make([][2]hasher.Hash, n)
	for i := range pairs {
		pairs[i] = [2]hasher.Hash{c.Leaf(), c.Leaf()}
	}
	return pairs
}

// NumberedLeaf returns a leaf holding i in its last 8 bytes, big endian.
func NumberedLeaf(i uint64) hasher.Hash {
	var leaf hasher.Hash
	for b := 0; b < 8; b++ {
		leaf[hasher.HashBytes-1-b] = byte(i >> (8 * b))
	}
	return leaf
}
