package hasher

import (
	"lukechampine.com/blake3"
)

// BLAKE3 is unkeyed BLAKE3 with a 32 byte output.
type BLAKE3 struct{}

func (BLAKE3) Kind() Kind { return KindBLAKE3 }

func (BLAKE3) Hash(val []byte) (Hash, error) {
	return sumDigest(blake3.New(HashBytes, nil), val)
}

func (BLAKE3) HashV(vals ...[]byte) (Hash, error) {
	return sumDigest(blake3.New(HashBytes, nil), vals...)
}
