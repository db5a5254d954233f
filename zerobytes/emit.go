package zerobytes

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"go/format"
	"io"

	"github.com/forestrie/go-merkleaccumulator/hasher"
)

const pkgPath = "github.com/forestrie/go-merkleaccumulator/zerobytes"

// bytesPerLine keeps the emitted digests at four lines apiece.
const bytesPerLine = 8

var ErrSourceOptions = errors.New("zerobytes: package and variable names are required")

// SourceOptions describes the Go file WriteGoSource produces.
type SourceOptions struct {
	Package string
	Var     string
	Kind    hasher.Kind
	Leaf    hasher.Hash
}

// WriteGoSource emits table as a gofmt formatted Go source file declaring a
// single Table variable. When the target package is not this one the table
// type is qualified and imported.
func WriteGoSource(w io.Writer, opts SourceOptions, table Table) error {
	if opts.Package == "" || opts.Var == "" {
		return ErrSourceOptions
	}

	tableType := "Table"
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by zerogen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", opts.Package)
	if opts.Package != "zerobytes" {
		fmt.Fprintf(&b, "import \"%s\"\n\n", pkgPath)
		tableType = "zerobytes.Table"
	}
	fmt.Fprintf(&b, "// %s holds the %s zero subtree digests, generated from leaf %s.\n",
		opts.Var, opts.Kind, leafLabel(opts.Leaf))
	fmt.Fprintf(&b, "var %s = %s{\n", opts.Var, tableType)
	for _, digest := range table {
		fmt.Fprintf(&b, "{\n")
		for i := 0; i < hasher.HashBytes; i++ {
			fmt.Fprintf(&b, "0x%02x,", digest[i])
			if (i+1)%bytesPerLine == 0 {
				fmt.Fprintf(&b, "\n")
			} else {
				fmt.Fprintf(&b, " ")
			}
		}
		fmt.Fprintf(&b, "},\n")
	}
	fmt.Fprintf(&b, "}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

// leafLabel renders a uniform leaf as its repeated byte, anything else as full
// hex.
func leafLabel(leaf hasher.Hash) string {
	if leaf == UniformLeaf(leaf[0]) {
		return fmt.Sprintf("0x%02x", leaf[0])
	}
	return "0x" + hex.EncodeToString(leaf[:])
}
