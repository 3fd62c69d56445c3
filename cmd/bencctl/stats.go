package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bencodekit/bencode"
)

var statsStream bool

func init() {
	cmd := newStatsCmd()
	cmd.Flags().BoolVar(&statsStream, "stream", false, "Index every concatenated value")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Show structural statistics",
		Long: `The stats command indexes a document and reports value counts by
kind, nesting depth, and the size of the descriptor index.

Example:
  bencctl stats ubuntu.torrent
  bencctl stats ubuntu.torrent --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

// DocStats summarizes one descriptor index.
type DocStats struct {
	File          string `json:"file"`
	Bytes         int    `json:"bytes"`
	Roots         int    `json:"roots"`
	Descriptors   int    `json:"descriptors"`
	Integers      int    `json:"integers"`
	Strings       int    `json:"strings"`
	Lists         int    `json:"lists"`
	Dicts         int    `json:"dicts"`
	DictKeys      int    `json:"dict_keys"`
	MaxDepth      int    `json:"max_depth"`
	LargestString int    `json:"largest_string"`
	StringBytes   int    `json:"string_bytes"`
}

func collectStats(t *bencode.DescriptorTable) DocStats {
	s := DocStats{
		Bytes:       len(t.Buffer()),
		Roots:       t.Roots(),
		Descriptors: t.Len(),
	}
	depth := 0
	for _, d := range t.Descriptors() {
		switch {
		case d.IsEnd():
			depth--
			continue
		case d.IsInteger():
			s.Integers++
		case d.IsString():
			if d.IsDictKey() {
				s.DictKeys++
			} else {
				s.Strings++
			}
			s.StringBytes += d.Size()
			s.LargestString = max(s.LargestString, d.Size())
		case d.IsList():
			s.Lists++
		case d.IsDict():
			s.Dicts++
		}
		if d.IsBegin() {
			depth++
			s.MaxDepth = max(s.MaxDepth, depth)
		}
	}
	return s
}

func runStats(args []string) error {
	path := args[0]

	var t *bencode.DescriptorTable
	if statsStream {
		data, err := readInput(path)
		if err != nil {
			return err
		}
		if t, err = decodeOpts.DecodeIndexStream(data); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	} else {
		doc, err := openDocument(path)
		if err != nil {
			return err
		}
		defer doc.Close()
		t = doc.DescriptorTable
	}

	s := collectStats(t)
	s.File = path

	if jsonOut {
		return printJSON(s)
	}
	printInfo("File:         %s\n", s.File)
	printInfo("Bytes:        %d\n", s.Bytes)
	printInfo("Roots:        %d\n", s.Roots)
	printInfo("Descriptors:  %d\n", s.Descriptors)
	printInfo("Integers:     %d\n", s.Integers)
	printInfo("Strings:      %d (%d bytes, largest %d)\n", s.Strings, s.StringBytes, s.LargestString)
	printInfo("Lists:        %d\n", s.Lists)
	printInfo("Dicts:        %d (%d keys)\n", s.Dicts, s.DictKeys)
	printInfo("Max depth:    %d\n", s.MaxDepth)
	return nil
}
