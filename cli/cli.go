// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli sets configuration structs from `default:` tags,
// TOML or YAML config files, and command line flags, in that order
// of increasing precedence, and can watch a config file for changes.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

// Options are options for [Parse].
type Options struct {

	// AppName is the name of the program, used in usage text.
	AppName string

	// ConfigFlag is the name of the flag that names a config file.
	// If empty, no config file flag is added.
	ConfigFlag string

	// DefaultFile is a config file to open if it exists and no config
	// file flag is given.
	DefaultFile string

	// Output is where usage and errors are written. It defaults to os.Stderr.
	Output io.Writer
}

// DefaultOptions returns the standard [Options] for the given app.
func DefaultOptions(appName string) *Options {
	return &Options{AppName: appName, ConfigFlag: "config"}
}

// Parse sets cfg from its `default:` tags, then from the config file
// named on the command line (or [Options.DefaultFile]), then from the
// remaining command line flags. It returns the config file used, if any,
// and [pflag.ErrHelp] if help was requested.
func Parse(cfg any, args []string, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions("")
	}
	if err := SetFromDefaults(cfg); err != nil {
		return "", err
	}
	fs := pflag.NewFlagSet(opts.AppName, pflag.ContinueOnError)
	if opts.Output != nil {
		fs.SetOutput(opts.Output)
	}
	AddFlags(fs, cfg)
	var file string
	if opts.ConfigFlag != "" {
		fs.StringVar(&file, opts.ConfigFlag, "", "TOML or YAML config file; command line flags override its settings")
	}
	fs.Usage = func() {
		out := opts.Output
		if out == nil {
			out = os.Stderr
		}
		fmt.Fprintf(out, "Usage of %s:\n%s", opts.AppName, fs.FlagUsages())
	}
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if file == "" && opts.DefaultFile != "" {
		if _, err := os.Stat(opts.DefaultFile); err == nil {
			file = opts.DefaultFile
		}
	}
	if file == "" {
		return "", nil
	}
	if err := Open(cfg, file); err != nil {
		return file, err
	}
	return file, reapplyFlags(fs)
}

// Reload re-reads file into cfg starting from the `default:` tags,
// then reapplies the given command line args, so that settings removed
// from the file revert to their defaults.
func Reload(cfg any, file string, args []string, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions("")
	}
	if err := SetFromDefaults(cfg); err != nil {
		return err
	}
	if err := Open(cfg, file); err != nil {
		return err
	}
	fs := pflag.NewFlagSet("reload", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	AddFlags(fs, cfg)
	if opts.ConfigFlag != "" {
		fs.String(opts.ConfigFlag, "", "")
	}
	fs.ParseErrorsWhitelist.UnknownFlags = true
	if err := fs.Parse(args); err != nil {
		return err
	}
	return nil
}
