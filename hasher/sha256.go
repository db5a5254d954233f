package hasher

import (
	"github.com/minio/sha256-simd"
)

// SHA256 is the SHA-256 provider.
type SHA256 struct{}

func (SHA256) Kind() Kind { return KindSHA256 }

func (SHA256) Hash(val []byte) (Hash, error) {
	return sumDigest(sha256.New(), val)
}

func (SHA256) HashV(vals ...[]byte) (Hash, error) {
	return sumDigest(sha256.New(), vals...)
}
