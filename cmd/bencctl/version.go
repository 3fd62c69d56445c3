package main

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Stamped at link time with -ldflags "-X main.version=... -X main.commit=...".
var (
	version = "dev"
	commit  = ""
)

type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	GoVersion string `json:"go"`
	Kernel    string `json:"kernel"`
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion()
		},
	})
}

func buildVersion() versionInfo {
	info := versionInfo{
		Version:   rootCmd.Version,
		Commit:    commit,
		GoVersion: runtime.Version(),
		Kernel:    decodeOpts.Kernel.String(),
	}
	if info.Commit != "" {
		return info
	}
	// Fall back to the VCS stamp of a plain "go build".
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				info.Commit = s.Value
			}
		}
	}
	return info
}

func runVersion() error {
	info := buildVersion()
	if jsonOut {
		return printJSON(info)
	}
	printInfo("bencctl %s\n", info.Version)
	if info.Commit != "" {
		printInfo("  commit: %s\n", info.Commit)
	}
	printInfo("  go:     %s\n", info.GoVersion)
	printInfo("  kernel: %s\n", info.Kernel)
	return nil
}
