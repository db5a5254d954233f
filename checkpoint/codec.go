package checkpoint

import (
	"github.com/fxamacker/cbor/v2"
)

// Codec encodes root states deterministically, so that the bytes a signature
// covers can be reproduced exactly.
type Codec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func NewCodec() (Codec, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return Codec{}, err
	}
	dec, err := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}.DecMode()
	if err != nil {
		return Codec{}, err
	}
	return Codec{enc: enc, dec: dec}, nil
}

func (c Codec) MarshalCBOR(state RootState) ([]byte, error) {
	return c.enc.Marshal(state)
}

func (c Codec) UnmarshalInto(data []byte, state *RootState) error {
	return c.dec.Unmarshal(data, state)
}
