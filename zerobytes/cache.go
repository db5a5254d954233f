package zerobytes

import (
	"sync"

	"github.com/forestrie/go-merkleaccumulator/hasher"
)

// generated caches the tables of kinds which have no precomputed source file.
// Generation is cheap but not free, and the tables never change.
var generated = new(sync.Map)

// For returns the default table for kind: the precomputed table where one
// ships with the package, otherwise a table generated (once) from DefaultLeaf.
//
// The returned table is shared; callers must not modify it.
func For(kind hasher.Kind) (Table, error) {
	if kind == hasher.KindSHA256 {
		return SHA256, nil
	}
	if val, ok := generated.Load(kind); ok {
		return val.(Table), nil
	}

	h, err := hasher.New(kind)
	if err != nil {
		return nil, err
	}
	table, err := Generate(h, DefaultLeaf, Levels)
	if err != nil {
		return nil, err
	}
	val, _ := generated.LoadOrStore(kind, table)
	return val.(Table), nil
}
