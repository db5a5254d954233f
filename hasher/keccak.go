package hasher

import (
	"golang.org/x/crypto/sha3"
)

// Keccak256 is the original (pre NIST padding) Keccak-256, as used by
// Ethereum and Solana.
type Keccak256 struct{}

func (Keccak256) Kind() Kind { return KindKeccak256 }

func (Keccak256) Hash(val []byte) (Hash, error) {
	return sumDigest(sha3.NewLegacyKeccak256(), val)
}

func (Keccak256) HashV(vals ...[]byte) (Hash, error) {
	return sumDigest(sha3.NewLegacyKeccak256(), vals...)
}
