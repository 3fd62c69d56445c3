package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var validateStream bool

func init() {
	cmd := newValidateCmd()
	cmd.Flags().BoolVar(&validateStream, "stream", false, "Accept any number of concatenated values")
	rootCmd.AddCommand(cmd)
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check that files hold well-formed bencode",
		Long: `The validate command parses each file without building any
representation and reports the first error in each. It exits non-zero if
any file is invalid.

Example:
  bencctl validate a.torrent b.torrent
  bencctl validate --stream messages.bin`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

type validateResult struct {
	File  string `json:"file"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

var errInvalid = errors.New("one or more files are invalid")

func runValidate(args []string) error {
	results := make([]validateResult, 0, len(args))
	failed := false
	for _, path := range args {
		res := validateResult{File: path, Valid: true}
		if err := validateFile(path); err != nil {
			res.Valid = false
			res.Error = err.Error()
			failed = true
		}
		results = append(results, res)
	}

	if jsonOut {
		if err := printJSON(results); err != nil {
			return err
		}
	} else {
		for _, res := range results {
			if res.Valid {
				printInfo("%s: ok\n", res.File)
			} else {
				fmt.Printf("%s: %s\n", res.File, res.Error)
			}
		}
	}
	if failed {
		return errInvalid
	}
	return nil
}

func validateFile(path string) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}
	if validateStream {
		return decodeOpts.ValidateStream(data)
	}
	return decodeOpts.Validate(data)
}
