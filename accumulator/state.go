package accumulator

import (
	"bytes"
	"encoding/binary"

	"github.com/forestrie/go-merkleaccumulator/hasher"
)

// State binary layout
//
// .      | magic | version | kind | height | filled subtrees | roots        | next index | current root |
// .      | 0   3 |    4    |  5   |   6    |  8         583  | 584    8775  | 8776  8783 | 8784    8791 |
// bytes  |   4   |    1    |  1   |   1    | MaxHeight * 32  | History * 32 |      8     |       8      |
//
// Byte 7 is reserved and written as zero. Integers are big endian. Unused
// filled subtree slots (levels at or above the height) are carried verbatim.
const (
	StateMagicV1   = "ACC1"
	StateVersionV1 = 1

	stateHeaderBytes      = 8
	stateFilledStart      = stateHeaderBytes
	stateRootsStart       = stateFilledStart + MaxHeight*hasher.HashBytes
	stateNextIndexStart   = stateRootsStart + HistorySize*hasher.HashBytes
	stateCurrentRootStart = stateNextIndexStart + 8
	StateBytes            = stateCurrentRootStart + 8
)

// EncodeState writes st into dst, which must be at least StateBytes long.
func EncodeState(dst []byte, st State) error {
	if len(dst) < StateBytes {
		return ErrStateBadSize
	}

	copy(dst[0:4], []byte(StateMagicV1))
	dst[4] = StateVersionV1
	dst[5] = byte(st.HashKind)
	dst[6] = st.Height
	dst[7] = 0

	off := stateFilledStart
	for i := range st.FilledSubtrees {
		copy(dst[off:off+hasher.HashBytes], st.FilledSubtrees[i][:])
		off += hasher.HashBytes
	}
	for i := range st.Roots {
		copy(dst[off:off+hasher.HashBytes], st.Roots[i][:])
		off += hasher.HashBytes
	}

	binary.BigEndian.PutUint64(dst[stateNextIndexStart:stateCurrentRootStart], st.NextIndex)
	binary.BigEndian.PutUint64(dst[stateCurrentRootStart:StateBytes], st.CurrentRootIndex)
	return nil
}

// DecodeState decodes a state record from src.
//
// ok=false indicates the record is empty/uninitialized (all zero magic). The
// decoded fields are not checked against each other, Restore does that.
func DecodeState(src []byte) (st State, ok bool, err error) {
	if len(src) < StateBytes {
		return State{}, false, ErrStateBadSize
	}
	if bytes.Equal(src[0:4], []byte{0, 0, 0, 0}) {
		return State{}, false, nil
	}
	if string(src[0:4]) != StateMagicV1 {
		return State{}, false, ErrStateBadMagic
	}
	if src[4] != StateVersionV1 {
		return State{}, false, ErrStateBadVersion
	}

	st.HashKind = hasher.Kind(src[5])
	st.Height = src[6]

	off := stateFilledStart
	for i := range st.FilledSubtrees {
		copy(st.FilledSubtrees[i][:], src[off:off+hasher.HashBytes])
		off += hasher.HashBytes
	}
	for i := range st.Roots {
		copy(st.Roots[i][:], src[off:off+hasher.HashBytes])
		off += hasher.HashBytes
	}

	st.NextIndex = binary.BigEndian.Uint64(src[stateNextIndexStart:stateCurrentRootStart])
	st.CurrentRootIndex = binary.BigEndian.Uint64(src[stateCurrentRootStart:StateBytes])
	return st, true, nil
}

func (st State) MarshalBinary() ([]byte, error) {
	data := make([]byte, StateBytes)
	if err := EncodeState(data, st); err != nil {
		return nil, err
	}
	return data, nil
}

func (st *State) UnmarshalBinary(b []byte) error {
	decoded, ok, err := DecodeState(b)
	if err != nil {
		return err
	}
	if !ok {
		return ErrStateBadMagic
	}
	*st = decoded
	return nil
}
