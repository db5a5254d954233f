package checkpoint

import (
	"crypto/rand"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/ldclabs/cose/go/cwt"
	"github.com/veraison/go-cose"
)

// HeaderLabelCWTClaims is the protected header carrying the issuer and
// subject of a signed root.
const HeaderLabelCWTClaims int64 = 15

// RootSigner is used to produce a signature over a tree state. The signature
// commits to the root, and should only be published once the tree that
// produced the root has been durably saved.
type RootSigner struct {
	issuer string
	codec  Codec
	log    logger.Logger
}

// NewRootSigner creates a signer. log may be nil.
func NewRootSigner(issuer string, codec Codec, log logger.Logger) RootSigner {
	return RootSigner{
		issuer: issuer,
		codec:  codec,
		log:    log,
	}
}

// Sign1 signs the provided state and returns the encoded COSE Sign1 message
// with the state as its payload.
func (rs RootSigner) Sign1(
	coseSigner cose.Signer, keyIdentifier string, subject string, state RootState, external []byte,
) ([]byte, error) {
	msg, err := rs.sign(coseSigner, keyIdentifier, subject, state, external)
	if err != nil {
		return nil, err
	}
	return msg.MarshalCBOR()
}

// Sign1Detached signs the provided state and then removes the root from the
// published payload, so that verifiers are forced to obtain it from their own
// copy of the root history. See AcceptSignedRoot.
func (rs RootSigner) Sign1Detached(
	coseSigner cose.Signer, keyIdentifier string, subject string, state RootState, external []byte,
) ([]byte, error) {
	msg, err := rs.sign(coseSigner, keyIdentifier, subject, state, external)
	if err != nil {
		return nil, err
	}

	state.Root = nil
	msg.Payload, err = rs.codec.MarshalCBOR(state)
	if err != nil {
		return nil, err
	}
	return msg.MarshalCBOR()
}

func (rs RootSigner) sign(
	coseSigner cose.Signer, keyIdentifier string, subject string, state RootState, external []byte,
) (*cose.Sign1Message, error) {
	if _, err := state.RootHash(); err != nil {
		return nil, err
	}
	payload, err := rs.codec.MarshalCBOR(state)
	if err != nil {
		return nil, err
	}

	claims := map[any]any{
		int64(cwt.KeyIss): rs.issuer,
		int64(cwt.KeySub): subject,
	}
	protected := cose.ProtectedHeader{}
	protected[cose.HeaderLabelAlgorithm] = coseSigner.Algorithm()
	protected[cose.HeaderLabelKeyID] = []byte(keyIdentifier)
	protected[HeaderLabelCWTClaims] = claims

	msg := &cose.Sign1Message{
		Headers: cose.Headers{Protected: protected},
		Payload: payload,
	}
	if err = msg.Sign(rand.Reader, external, coseSigner); err != nil {
		return nil, err
	}

	if rs.log != nil {
		rs.log.Debugf("signed root: subject=%s next=%d root=%x", subject, state.NextIndex, state.Root)
	}
	return msg, nil
}
