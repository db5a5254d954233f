package hasher

import "hash"

// sumDigest writes vals to a freshly reset hasher and returns the fixed size
// digest.
func sumDigest(hasher hash.Hash, vals ...[]byte) (Hash, error) {
	hasher.Reset()
	for _, v := range vals {
		_, _ = hasher.Write(v)
	}

	var out Hash
	sum := hasher.Sum(out[:0])
	if len(sum) != HashBytes {
		return Hash{}, ErrDigestConversion
	}
	copy(out[:], sum)
	return out, nil
}
