package checkpoint

import (
	"bytes"
	"fmt"

	"github.com/forestrie/go-merkleaccumulator/accumulator"
	"github.com/forestrie/go-merkleaccumulator/hasher"
	"github.com/ldclabs/cose/go/cwt"
	"github.com/veraison/go-cose"
)

// RootHistory is the verifier side view of a tree. accumulator.MerkleTree
// satisfies it.
type RootHistory interface {
	Kind() hasher.Kind
	TreeHeight() uint8
	// Inserted returns the number of leaves the history has seen.
	Inserted() uint64
	IsKnownRoot(root hasher.Hash) bool
	// History returns the retained roots, newest first.
	History() []hasher.Hash
}

// Claims are the issuer and subject the signer bound to the root.
type Claims struct {
	Issuer  string
	Subject string
}

// DecodeSignedRoot decodes the RootState from the signed message. The state
// is not verified, see VerifySignedRoot and AcceptSignedRoot.
func DecodeSignedRoot(codec Codec, msg []byte) (*cose.Sign1Message, RootState, error) {
	var signed cose.Sign1Message
	if err := signed.UnmarshalCBOR(msg); err != nil {
		return nil, RootState{}, err
	}

	var unverifiedState RootState
	if err := codec.UnmarshalInto(signed.Payload, &unverifiedState); err != nil {
		return nil, RootState{}, err
	}
	return &signed, unverifiedState, nil
}

// VerifySignedRoot applies the provided state to the signed message and
// verifies the result. For messages produced by Sign1Detached the caller must
// first fill in the root it believes was signed.
func VerifySignedRoot(
	codec Codec, verifier cose.Verifier, signed *cose.Sign1Message, unverifiedState RootState, external []byte,
) error {
	var err error
	signed.Payload, err = codec.MarshalCBOR(unverifiedState)
	if err != nil {
		return err
	}
	return signed.Verify(external, verifier)
}

// AcceptSignedRoot verifies msg and checks the signed state against history.
//
// The signed height must match the local tree and the signed NextIndex must be
// one the local tree has passed through. The root retained for that NextIndex
// is the only root that can be accepted: a root from outside the retained
// window, or one the local tree never produced at that index, is
// ErrRootNotKnown. A signed state whose fields are impossible for the local
// tree is ErrStateMismatch.
//
// When the root was detached before publishing, the retained root for the
// signed NextIndex is put back and the signature checked against it. A
// failure then can not tell a bad signature from a root the local tree did
// not produce, so the error wraps both ErrRootNotKnown and the verification
// error.
func AcceptSignedRoot(
	codec Codec, verifier cose.Verifier, history RootHistory, msg []byte, external []byte,
) (RootState, error) {
	signed, state, err := DecodeSignedRoot(codec, msg)
	if err != nil {
		return RootState{}, err
	}
	if hasher.Kind(state.HashKind) != history.Kind() {
		return RootState{}, fmt.Errorf(
			"%w: signed %s, local %s", ErrHashKindMismatch, hasher.Kind(state.HashKind), history.Kind())
	}
	if err = checkSignedSize(state, history); err != nil {
		return RootState{}, err
	}

	retained, ok := retainedRootAt(history, state.NextIndex)

	if len(state.Root) != 0 {
		root, err := state.RootHash()
		if err != nil {
			return RootState{}, err
		}
		if err = VerifySignedRoot(codec, verifier, signed, state, external); err != nil {
			return RootState{}, err
		}
		if !history.IsKnownRoot(root) {
			return RootState{}, fmt.Errorf("%w: %x", ErrRootNotKnown, root[:])
		}
		if !ok || retained != root {
			return RootState{}, fmt.Errorf(
				"%w: root %x is not the root at next index %d", ErrRootNotKnown, root[:], state.NextIndex)
		}
		return state, nil
	}

	if !ok {
		return RootState{}, fmt.Errorf(
			"%w: next index %d is outside the retained history", ErrRootNotKnown, state.NextIndex)
	}
	state.Root = bytes.Clone(retained[:])
	if err = VerifySignedRoot(codec, verifier, signed, state, external); err != nil {
		return RootState{}, fmt.Errorf("%w: %w", ErrRootNotKnown, err)
	}
	return state, nil
}

// checkSignedSize rejects signed heights and leaf counts the local tree can
// not have produced.
func checkSignedSize(state RootState, history RootHistory) error {
	if state.Height != history.TreeHeight() {
		return fmt.Errorf("%w: signed height %d, local height %d",
			ErrStateMismatch, state.Height, history.TreeHeight())
	}
	if state.NextIndex%2 != 0 || state.NextIndex > accumulator.LeafCapacity(state.Height) {
		return fmt.Errorf("%w: next index %d is not possible at height %d",
			ErrStateMismatch, state.NextIndex, state.Height)
	}
	if state.NextIndex > history.Inserted() {
		return fmt.Errorf("%w: signed next index %d, local next index %d",
			ErrStateMismatch, state.NextIndex, history.Inserted())
	}
	return nil
}

// retainedRootAt returns the root history recorded when it had nextIndex
// leaves, if that root is still retained. Each insertion adds two leaves and
// one root, so it sits (Inserted() - nextIndex) / 2 places behind the newest.
func retainedRootAt(history RootHistory, nextIndex uint64) (hasher.Hash, bool) {
	back := (history.Inserted() - nextIndex) / 2
	roots := history.History()
	if back >= uint64(len(roots)) {
		return hasher.Hash{}, false
	}
	return roots[back], true
}

// SignedClaims returns the issuer and subject from the protected header of
// signed.
func SignedClaims(signed *cose.Sign1Message) (Claims, error) {
	raw, ok := signed.Headers.Protected[HeaderLabelCWTClaims]
	if !ok {
		return Claims{}, ErrClaimsMissing
	}
	claimsMap, ok := raw.(map[any]any)
	if !ok {
		return Claims{}, fmt.Errorf("%w: claims header is %T", ErrClaimsMissing, raw)
	}

	issuer, ok := claimsMap[int64(cwt.KeyIss)].(string)
	if !ok {
		return Claims{}, fmt.Errorf("%w: no issuer", ErrClaimsMissing)
	}
	subject, ok := claimsMap[int64(cwt.KeySub)].(string)
	if !ok {
		return Claims{}, fmt.Errorf("%w: no subject", ErrClaimsMissing)
	}
	return Claims{Issuer: issuer, Subject: subject}, nil
}
