// Package hasher provides the hash capability the accumulator is
// parameterized over.
//
// Every provider produces a 32 byte digest and is pure: nothing from one call
// is visible to the next, so a single Hasher may be shared by concurrent
// readers. The byte oriented providers (SHA-256, Keccak-256, BLAKE3) hash the
// ordered concatenation of their inputs. Poseidon works over the BN254 scalar
// field and treats each input buffer as one big-endian field element.
package hasher

// Hasher is the capability contract shared by all providers.
type Hasher interface {
	Kind() Kind
	// Hash hashes a single buffer.
	Hash(val []byte) (Hash, error)
	// HashV hashes vals as a single logical input, in order.
	HashV(vals ...[]byte) (Hash, error)
}

// New returns the provider for kind.
func New(kind Kind) (Hasher, error) {
	switch kind {
	case KindSHA256:
		return SHA256{}, nil
	case KindKeccak256:
		return Keccak256{}, nil
	case KindBLAKE3:
		return BLAKE3{}, nil
	case KindPoseidon:
		return Poseidon{}, nil
	default:
		return nil, ErrUnknownKind
	}
}
