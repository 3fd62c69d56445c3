package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bencodekit/bencode"
	"github.com/joshuapare/bencodekit/internal/logger"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	logJSON    bool
	configPath string

	// decodeOpts is resolved from the config file before every command.
	decodeOpts = bencode.DefaultOptions()
)

var rootCmd = &cobra.Command{
	Use:   "bencctl",
	Short: "Inspect and validate bencoded files",
	Long: `bencctl is a tool for inspecting bencoded data such as BitTorrent
metainfo files. It prints documents as text, JSON, or an event trace,
extracts values by pointer, validates input, and computes info-hashes.
Input compressed with gzip or zstd is detected and decompressed.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Emit verbose logs as JSON")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "YAML file with decode limits and options")
}

// setup initializes logging and resolves decode options.
func setup() error {
	logger.Init(logger.Options{
		Enabled: verbose && !quiet,
		Level:   slog.LevelDebug,
		Writer:  os.Stderr,
		JSON:    logJSON,
	})

	opts, err := loadOptions(configPath)
	if err != nil {
		return err
	}
	decodeOpts = opts
	logger.L.Debug("decode options",
		"recursion_limit", opts.Limits.RecursionLimit,
		"value_limit", opts.Limits.ValueLimit,
		"kernel", opts.Kernel.String())
	return nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
