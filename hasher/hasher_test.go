package hasher

import (
	"bytes"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) Hash {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	require.Len(t, b, HashBytes)
	var h Hash
	copy(h[:], b)
	return h
}

func TestHashEmptyInput(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want string
	}{
		{"sha256", KindSHA256, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"keccak256", KindKeccak256, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"blake3", KindBLAKE3, "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := New(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, h.Kind())

			got, err := h.Hash(nil)
			require.NoError(t, err)
			assert.Equal(t, mustHex(t, tt.want), got)
		})
	}
}

func TestHashVIsConcatenation(t *testing.T) {
	a := bytes.Repeat([]byte{1}, HashBytes)
	b := bytes.Repeat([]byte{2}, HashBytes)
	c := []byte("trailing")

	for _, kind := range []Kind{KindSHA256, KindKeccak256, KindBLAKE3} {
		t.Run(kind.String(), func(t *testing.T) {
			h, err := New(kind)
			require.NoError(t, err)

			whole, err := h.Hash(append(append(append([]byte{}, a...), b...), c...))
			require.NoError(t, err)
			parts, err := h.HashV(a, b, c)
			require.NoError(t, err)
			assert.Equal(t, whole, parts)

			// a second call must not see anything from the first
			again, err := h.HashV(a, b, c)
			require.NoError(t, err)
			assert.Equal(t, parts, again)
		})
	}
}

func TestPoseidonKnownVector(t *testing.T) {
	one := uint256.NewInt(1).Bytes32()
	two := uint256.NewInt(2).Bytes32()

	got, err := Poseidon{}.HashV(one[:], two[:])
	require.NoError(t, err)

	want := uint256.MustFromDecimal(
		"7853200120776062878684798364095072458815029376092732009249414926327459813530").Bytes32()
	assert.Equal(t, Hash(want), got)

	again, err := Poseidon{}.HashV(one[:], two[:])
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestPoseidonReducesInputs(t *testing.T) {
	one := uint256.NewInt(1).Bytes32()
	two := uint256.NewInt(2).Bytes32()
	wrapped := new(uint256.Int).AddUint64(bn254Order, 1).Bytes32()

	want, err := Poseidon{}.HashV(one[:], two[:])
	require.NoError(t, err)
	got, err := Poseidon{}.HashV(wrapped[:], two[:])
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// short buffers are big-endian integers
	short, err := Poseidon{}.HashV([]byte{1}, []byte{2})
	require.NoError(t, err)
	assert.Equal(t, want, short)
}

func TestPoseidonRejectsUnconvertibleInput(t *testing.T) {
	tests := []struct {
		name string
		vals [][]byte
	}{
		{"no inputs", nil},
		{"oversized element", [][]byte{make([]byte, HashBytes+1)}},
		{"too many inputs", make([][]byte, PoseidonMaxInputs+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Poseidon{}.HashV(tt.vals...)
			require.ErrorIs(t, err, ErrDigestConversion)
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds() {
		got, err := ParseKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, got)
		assert.True(t, got.Valid())
	}

	got, err := ParseKind(" SHA256 ")
	require.NoError(t, err)
	assert.Equal(t, KindSHA256, got)

	_, err = ParseKind("md5")
	require.ErrorIs(t, err, ErrUnknownKind)
	assert.False(t, KindUnknown.Valid())

	_, err = New(KindUnknown)
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestHashFormat(t *testing.T) {
	h, err := SHA256{}.Hash([]byte("format"))
	require.NoError(t, err)
	want := hex.EncodeToString(h[:])

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{"hex", "%x", want},
		{"upper hex", "%X", strings.ToUpper(want)},
		{"string", "%s", want},
		{"value", "%v", want},
		{"padded", "%66s", "  " + want},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fmt.Sprintf(tt.format, h))
		})
	}
	assert.Len(t, fmt.Sprintf("%x", h), 2*HashBytes)
}

func TestSumDigestRejectsShortDigest(t *testing.T) {
	// sha1 sums are 20 bytes
	_, err := sumDigest(sha1.New(), []byte("a"), []byte("b"))
	require.ErrorIs(t, err, ErrDigestConversion)

	h, err := sumDigest(sha256.New(), []byte("a"), []byte("b"))
	require.NoError(t, err)
	want, err := SHA256{}.Hash([]byte("ab"))
	require.NoError(t, err)
	assert.Equal(t, want, h)
}
