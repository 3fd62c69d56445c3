package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bencodekit/bencode/printer"
	"github.com/joshuapare/bencodekit/bpointer"
	"github.com/joshuapare/bencodekit/pkg/types"
)

var getRaw bool

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getRaw, "raw", false, "Write the value's original bencoded bytes")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <pointer>",
		Short: "Get the value at a bpointer",
		Long: `The get command resolves a bpointer against a document and prints
the value it addresses. Strings print as their raw bytes and integers in
decimal; lists and dicts print as text, or JSON with --json.

Example:
  bencctl get ubuntu.torrent /announce
  bencctl get ubuntu.torrent "/info/piece length"
  bencctl get ubuntu.torrent /info --raw | sha1sum`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	path := args[0]
	ptr, err := bpointer.Parse(args[1])
	if err != nil {
		return err
	}

	doc, err := openDocument(path)
	if err != nil {
		return err
	}
	defer doc.Close()

	v, err := ptr.ResolveView(doc.Root())
	if err != nil {
		return fmt.Errorf("resolve %s: %w", ptr, err)
	}

	if getRaw {
		_, err := os.Stdout.Write(v.BencodedView())
		return err
	}

	opts := printer.DefaultOptions()
	if jsonOut {
		opts.Format = printer.FormatJSON
		return printer.Print(os.Stdout, v, opts)
	}

	switch v.Type() {
	case types.Integer:
		fmt.Fprintln(os.Stdout, v.MustInteger().Value())
	case types.String:
		os.Stdout.Write(v.MustString().Bytes())
		fmt.Fprintln(os.Stdout)
	default:
		return printer.Print(os.Stdout, v, opts)
	}
	return nil
}
