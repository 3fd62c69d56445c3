package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/bencodekit/bencode"
)

// fileConfig is the on-disk configuration:
//
//	limits:
//	  recursion_limit: 64
//	  value_limit: 16384
//	strings: copy
//	kernel: auto
type fileConfig struct {
	Limits struct {
		RecursionLimit int `yaml:"recursion_limit"`
		ValueLimit     int `yaml:"value_limit"`
	} `yaml:"limits"`
	Strings string `yaml:"strings"`
	Kernel  string `yaml:"kernel"`
}

// loadOptions returns the default decode options overlaid with the config
// file at path. An empty path yields the defaults.
func loadOptions(path string) (bencode.Options, error) {
	opts := bencode.DefaultOptions()
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read config: %w", err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return opts, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg.apply(opts)
}

func (c fileConfig) apply(opts bencode.Options) (bencode.Options, error) {
	if c.Limits.RecursionLimit > 0 {
		opts.Limits.RecursionLimit = c.Limits.RecursionLimit
	}
	if c.Limits.ValueLimit > 0 {
		opts.Limits.ValueLimit = c.Limits.ValueLimit
	}

	switch c.Strings {
	case "", "copy":
		opts.Strings = bencode.StringCopy
	case "borrow":
		opts.Strings = bencode.StringBorrow
	default:
		return opts, fmt.Errorf("config: unknown strings mode %q (want copy or borrow)", c.Strings)
	}

	if c.Kernel != "" {
		k, err := bencode.ParseKernel(c.Kernel)
		if err != nil {
			return opts, fmt.Errorf("config: %w", err)
		}
		opts.Kernel = k
	}
	return opts, nil
}
