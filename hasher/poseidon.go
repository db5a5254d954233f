package hasher

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/iden3/go-iden3-crypto/poseidon"
)

// PoseidonMaxInputs is the widest permutation the circom parameter set covers.
const PoseidonMaxInputs = 16

// bn254Order is the order of the BN254 scalar field.
var bn254Order = uint256.MustFromDecimal(
	"21888242871839275222246405745257275088548364400416034343698204186575808495617")

// Poseidon hashes field elements over BN254 using the circom compatible
// parameters. Each input buffer is read as a big-endian integer of at most 32
// bytes and reduced modulo the field order before hashing.
//
// The underlying permutation state is created per call, there is nothing
// carried between invocations.
type Poseidon struct{}

func (Poseidon) Kind() Kind { return KindPoseidon }

func (p Poseidon) Hash(val []byte) (Hash, error) {
	return p.HashV(val)
}

func (Poseidon) HashV(vals ...[]byte) (Hash, error) {
	if len(vals) == 0 || len(vals) > PoseidonMaxInputs {
		return Hash{}, fmt.Errorf(
			"%w: poseidon takes 1 to %d inputs, got %d", ErrDigestConversion, PoseidonMaxInputs, len(vals))
	}

	inputs := make([]*big.Int, len(vals))
	for i, v := range vals {
		e, err := FieldElement(v)
		if err != nil {
			return Hash{}, fmt.Errorf("%w: input %d", err, i)
		}
		inputs[i] = e.ToBig()
	}

	out, err := poseidon.Hash(inputs)
	if err != nil {
		return Hash{}, fmt.Errorf("%w: %v", ErrDigestConversion, err)
	}

	digest, overflow := uint256.FromBig(out)
	if overflow {
		return Hash{}, ErrDigestConversion
	}
	return Hash(digest.Bytes32()), nil
}

// FieldElement reads b as a big-endian integer and reduces it into the BN254
// scalar field.
func FieldElement(b []byte) (*uint256.Int, error) {
	if len(b) > HashBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds a field element", ErrDigestConversion, len(b))
	}
	e := new(uint256.Int).SetBytes(b)
	return e.Mod(e, bn254Order), nil
}
