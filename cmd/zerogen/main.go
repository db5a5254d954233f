// zerogen writes the zero subtree table for a hash kind as Go source.
//
//	zerogen --hash keccak256 --package tables --var Keccak256 --out keccak.go
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-merkleaccumulator/hasher"
	"github.com/forestrie/go-merkleaccumulator/zerobytes"
	"github.com/spf13/cobra"
)

type config struct {
	hash     string
	leaf     uint8
	levels   int
	pkg      string
	varName  string
	out      string
	logLevel string
}

var cfg = config{}

var rootCmd = &cobra.Command{
	Use:          "zerogen",
	Short:        "generate the zero subtree digests for a hash kind",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.New(cfg.logLevel)
		defer logger.OnExit()
		log := logger.Sugar.WithServiceName("zerogen")

		var b bytes.Buffer
		if err := generate(&b, cfg); err != nil {
			return err
		}
		if cfg.out == "" || cfg.out == "-" {
			_, err := io.Copy(cmd.OutOrStdout(), &b)
			return err
		}
		if err := os.WriteFile(cfg.out, b.Bytes(), 0o644); err != nil {
			return err
		}
		log.Infof("wrote %d %s digests to %s", cfg.levels, cfg.hash, cfg.out)
		return nil
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&cfg.hash, "hash", "sha256", "hash kind: sha256, keccak256, blake3 or poseidon")
	flags.Uint8Var(&cfg.leaf, "leaf", 0x01, "byte repeated to form the default leaf")
	flags.IntVar(&cfg.levels, "levels", zerobytes.Levels, "number of digests to generate")
	flags.StringVar(&cfg.pkg, "package", "zerobytes", "package name of the generated file")
	flags.StringVar(&cfg.varName, "var", "", "variable name, defaults to the upper cased hash kind")
	flags.StringVar(&cfg.out, "out", "", "output file, stdout when empty")
	flags.StringVar(&cfg.logLevel, "log-level", "INFO", "log level")
}

func generate(w io.Writer, c config) error {
	kind, err := hasher.ParseKind(c.hash)
	if err != nil {
		return err
	}
	h, err := hasher.New(kind)
	if err != nil {
		return err
	}

	leaf := zerobytes.UniformLeaf(c.leaf)
	table, err := zerobytes.Generate(h, leaf, c.levels)
	if err != nil {
		return err
	}

	varName := c.varName
	if varName == "" {
		varName = defaultVarName(kind)
	}
	return zerobytes.WriteGoSource(w, zerobytes.SourceOptions{
		Package: c.pkg,
		Var:     varName,
		Kind:    kind,
		Leaf:    leaf,
	}, table)
}

func defaultVarName(kind hasher.Kind) string {
	switch kind {
	case hasher.KindSHA256:
		return "SHA256"
	case hasher.KindKeccak256:
		return "Keccak256"
	case hasher.KindBLAKE3:
		return "BLAKE3"
	case hasher.KindPoseidon:
		return "Poseidon"
	}
	return fmt.Sprintf("Table%d", kind)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
