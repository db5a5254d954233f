package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/forestrie/go-merkleaccumulator/hasher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReproducesCheckedInTable(t *testing.T) {
	var b bytes.Buffer
	err := generate(&b, config{hash: "sha256", leaf: 0x01, levels: 19, pkg: "zerobytes"})
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join("..", "..", "zerobytes", "sha256.go"))
	require.NoError(t, err)
	assert.Equal(t, string(want), b.String())
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config
		wantErr  error
		contains string
	}{
		{"keccak default name", config{hash: "keccak256", leaf: 1, levels: 3, pkg: "tables"}, nil, "var Keccak256 = zerobytes.Table{"},
		{"explicit name", config{hash: "BLAKE3", leaf: 2, levels: 2, pkg: "zerobytes", varName: "Blake3Two"}, nil, "var Blake3Two = Table{"},
		{"poseidon", config{hash: "poseidon", leaf: 1, levels: 2, pkg: "zerobytes"}, nil, "poseidon zero subtree digests"},
		{"unknown hash", config{hash: "md5", leaf: 1, levels: 2, pkg: "zerobytes"}, hasher.ErrUnknownKind, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b bytes.Buffer
			err := generate(&b, tt.cfg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, b.String(), tt.contains)
		})
	}
}

func TestRootCommandWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "zero.go")
	rootCmd.SetArgs([]string{"--hash", "blake3", "--levels", "4", "--out", out, "--log-level", "INFO"})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "var BLAKE3 = Table{")
}
