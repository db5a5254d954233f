package hasher

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// HashBytes is the fixed width of every digest produced by a Hasher, and of
// the leaves the accumulator admits.
const HashBytes = 32

// Hash is a fixed size digest.
type Hash [HashBytes]byte

// String returns the hex encoding of the digest.
func (h Hash) String() string { return hex.EncodeToString(h[:]) }

// Format prints %s and %v as String does. Every other verb formats the
// underlying bytes, so %x is the digest hex encoded once.
func (h Hash) Format(f fmt.State, verb rune) {
	if (verb == 's' || verb == 'v') && !f.Flag('#') {
		fmt.Fprintf(f, fmt.FormatString(f, verb), h.String())
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), [HashBytes]byte(h))
}

// Kind selects one of the supported hash functions. It is persisted alongside
// accumulator state, so the values must never be renumbered.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindSHA256
	KindKeccak256
	KindBLAKE3
	KindPoseidon
)

var kindNames = map[Kind]string{
	KindSHA256:    "sha256",
	KindKeccak256: "keccak256",
	KindBLAKE3:    "blake3",
	KindPoseidon:  "poseidon",
}

var (
	ErrUnknownKind      = errors.New("hasher: unknown hash kind")
	ErrDigestConversion = errors.New("hasher: could not convert output to a 32 byte digest")
)

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k names a supported hash function.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind accepts the names returned by Kind.String, case insensitively.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Kinds returns the supported kinds in selector order.
func Kinds() []Kind {
	return []Kind{KindSHA256, KindKeccak256, KindBLAKE3, KindPoseidon}
}
