package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bencodekit/bencode"
	"github.com/joshuapare/bencodekit/bencode/printer"
	"github.com/joshuapare/bencodekit/bpointer"
)

var (
	showFormat  string
	showPointer string
	showBinary  string
	showIndent  int
	showMaxRaw  int
	showEvents  bool
)

func init() {
	cmd := newShowCmd()
	cmd.Flags().StringVarP(&showFormat, "format", "f", "text", "Output format: text, json, debug, bencode")
	cmd.Flags().StringVarP(&showPointer, "pointer", "p", "", "Show only the value at this bpointer")
	cmd.Flags().StringVar(&showBinary, "binary", "hex", "Rendering of non-UTF-8 strings: hex, latin1")
	cmd.Flags().IntVar(&showIndent, "indent", printer.DefaultIndentSize, "Spaces per nesting level")
	cmd.Flags().IntVar(&showMaxRaw, "max-bytes", printer.DefaultMaxValueBytes, "Truncate binary strings in text output (0 = no limit)")
	cmd.Flags().BoolVar(&showEvents, "events", false, "Stream events from the push parser instead of building an index")
	rootCmd.AddCommand(cmd)
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print a bencoded document",
		Long: `The show command prints a bencoded document, or the part of it
selected by --pointer, in the chosen format.

Example:
  bencctl show ubuntu.torrent
  bencctl show ubuntu.torrent --format json --pointer /info
  bencctl show ubuntu.torrent.zst --format debug --events`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(args)
		},
	}
	return cmd
}

func showOptions() (printer.Options, error) {
	opts := printer.DefaultOptions()
	format, err := printer.ParseFormat(showFormat)
	if err != nil {
		return opts, err
	}
	if jsonOut {
		format = printer.FormatJSON
	}
	switch mode := printer.BinaryMode(showBinary); mode {
	case printer.BinaryHex, printer.BinaryLatin1:
		opts.Binary = mode
	default:
		return opts, fmt.Errorf("unknown binary mode %q", showBinary)
	}
	opts.Format = format
	opts.IndentSize = showIndent
	opts.MaxValueBytes = showMaxRaw
	return opts, nil
}

func runShow(args []string) error {
	path := args[0]
	opts, err := showOptions()
	if err != nil {
		return err
	}
	ptr, err := bpointer.Parse(showPointer)
	if err != nil {
		return err
	}

	printVerbose("Opening: %s\n", path)

	if showEvents {
		if !ptr.Empty() {
			return fmt.Errorf("--events cannot be combined with --pointer")
		}
		return streamEvents(path, opts)
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
	return printer.Print(os.Stdout, v, opts)
}

// streamEvents drives the push parser straight into the printer.
func streamEvents(path string, opts printer.Options) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}
	c := printer.New(os.Stdout, opts).Consumer()
	n, perr := bencode.NewParser(decodeOpts).Parse(c, data)
	if err := c.Flush(); err != nil && perr == nil {
		return err
	}
	if perr != nil {
		return fmt.Errorf("decode %s: %w", path, perr)
	}
	return bencode.CheckTrailing(data, n)
}
