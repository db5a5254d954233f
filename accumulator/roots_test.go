package accumulator

import (
	"testing"

	"github.com/forestrie/go-merkleaccumulator/accumulatortesting"
	"github.com/forestrie/go-merkleaccumulator/hasher"
	"github.com/forestrie/go-merkleaccumulator/zerobytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsKnownRootBeforeWrap(t *testing.T) {
	tc := accumulatortesting.NewTestContext(t, accumulatortesting.TestConfig{
		Seed: 3, TestLabelPrefix: "TestIsKnownRootBeforeWrap"})
	tree := newSHA256Tree(t, 6)

	empty := tree.LastRoot()
	assert.True(t, tree.IsKnownRoot(empty))

	var produced []hasher.Hash
	for _, pair := range tc.LeafPairs(10) {
		require.NoError(t, tree.Insert(pair[0], pair[1]))
		produced = append(produced, tree.LastRoot())
	}

	assert.True(t, tree.IsKnownRoot(empty))
	for i, root := range produced {
		assert.True(t, tree.IsKnownRoot(root), "root %d", i)
	}
	assert.False(t, tree.IsKnownRoot(tc.Leaf()))
	assert.False(t, tree.IsKnownRoot(hasher.Hash{}))
}

func TestIsKnownRootAfterWrap(t *testing.T) {
	const inserts = 300

	tc := accumulatortesting.NewTestContext(t, accumulatortesting.TestConfig{
		Seed: 4, TestLabelPrefix: "TestIsKnownRootAfterWrap"})
	tree := newSHA256Tree(t, 10)
	empty := tree.LastRoot()

	// produced[k] is the root after k+1 insertions
	var produced []hasher.Hash
	for _, pair := range tc.LeafPairs(inserts) {
		require.NoError(t, tree.Insert(pair[0], pair[1]))
		produced = append(produced, tree.LastRoot())
	}
	require.Equal(t, uint64(inserts%HistorySize), tree.CurrentRootIndex)

	// the most recent HistorySize roots are retained, including those in
	// slots above CurrentRootIndex
	oldest := inserts - HistorySize
	for k := oldest; k < inserts; k++ {
		assert.True(t, tree.IsKnownRoot(produced[k]), "root after %d insertions", k+1)
	}
	for k := 0; k < oldest; k++ {
		assert.False(t, tree.IsKnownRoot(produced[k]), "root after %d insertions", k+1)
	}
	assert.False(t, tree.IsKnownRoot(empty))
}

func TestIsKnownRootIgnoresUnpopulatedSlots(t *testing.T) {
	tree := newSHA256Tree(t, 4)
	require.NoError(t, tree.Insert(leafOf(1), leafOf(2)))

	// plant a value in a slot the tree has never written
	planted := leafOf(0xee)
	tree.Roots[HistorySize-1] = planted
	assert.False(t, tree.IsKnownRoot(planted))
}

func TestHistoryNewestFirst(t *testing.T) {
	tree := newSHA256Tree(t, 4)
	empty := tree.LastRoot()
	assert.Equal(t, []hasher.Hash{empty}, tree.History())

	require.NoError(t, tree.Insert(leafOf(1), leafOf(2)))
	first := tree.LastRoot()
	require.NoError(t, tree.Insert(leafOf(3), leafOf(4)))
	second := tree.LastRoot()

	assert.Equal(t, []hasher.Hash{second, first, empty}, tree.History())
}

func TestHistoryCappedAtRingSize(t *testing.T) {
	tree := newSHA256Tree(t, 10)
	for i := uint64(0); i < HistorySize+5; i++ {
		require.NoError(t, tree.Insert(
			accumulatortesting.NumberedLeaf(2*i), accumulatortesting.NumberedLeaf(2*i+1)))
	}
	history := tree.History()
	require.Len(t, history, HistorySize)
	assert.Equal(t, tree.LastRoot(), history[0])
	for _, root := range history {
		assert.True(t, tree.IsKnownRoot(root))
	}
}

func TestLastRootEmptyTreeUsesTableConvention(t *testing.T) {
	for height := uint8(1); height <= MaxHeight; height++ {
		tree, err := New(height, hasher.SHA256{}, zerobytes.SHA256)
		require.NoError(t, err)
		assert.Equal(t, zerobytes.SHA256[height-1], tree.LastRoot())
	}
}
