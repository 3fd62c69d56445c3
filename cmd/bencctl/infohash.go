package main

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bencodekit/bencode/adapter"
	"github.com/joshuapare/bencodekit/bpointer"
)

var infohashV2 bool

func init() {
	cmd := newInfohashCmd()
	cmd.Flags().BoolVar(&infohashV2, "v2", false, "Also print the SHA-256 (BitTorrent v2) info-hash")
	rootCmd.AddCommand(cmd)
}

func newInfohashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "infohash <file>",
		Short: "Compute the info-hash of a torrent file",
		Long: `The infohash command hashes the exact bytes of the torrent's
info dict, as they appear in the file.

Example:
  bencctl infohash ubuntu.torrent
  bencctl infohash ubuntu.torrent --v2 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfohash(args)
		},
	}
	return cmd
}

type infohashResult struct {
	Name string `json:"name,omitempty"`
	V1   string `json:"v1"`
	V2   string `json:"v2,omitempty"`
}

var infoPointer = bpointer.New("info")

func runInfohash(args []string) error {
	doc, err := openDocument(args[0])
	if err != nil {
		return err
	}
	defer doc.Close()

	info, err := infoPointer.ResolveView(doc.Root())
	if err != nil {
		return fmt.Errorf("no info dict: %w", err)
	}
	if !info.IsDict() {
		return fmt.Errorf("info is a %s, not a dict", info.Type())
	}

	span := info.BencodedView()
	v1 := sha1.Sum(span)
	res := infohashResult{V1: hex.EncodeToString(v1[:])}
	if infohashV2 {
		v2 := sha256.Sum256(span)
		res.V2 = hex.EncodeToString(v2[:])
	}
	if name, err := info.MustDict().At("name"); err == nil {
		if s, err := adapter.String.DecodeView(name); err == nil {
			res.Name = s
		}
	}

	if jsonOut {
		return printJSON(res)
	}
	printInfo("%s", res.V1)
	if res.Name != "" {
		printInfo("  %s", res.Name)
	}
	printInfo("\n")
	if res.V2 != "" {
		printInfo("%s\n", res.V2)
	}
	return nil
}
