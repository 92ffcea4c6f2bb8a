// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/pipes/base/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the supported config file formats.
type Formats int32

const (
	TOML Formats = iota
	YAML
)

// FileFormat returns the config file format implied by the
// extension of the given filename.
func FileFormat(file string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("cli: config file %q must be .toml, .yaml or .yml", file)
}

// Open reads the given config files in order into cfg, so that
// later files overwrite settings from earlier ones. Fields missing
// from a file keep their current values.
func Open(cfg any, files ...string) error {
	for _, file := range files {
		b, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		if err := Read(cfg, b, file); err != nil {
			return err
		}
	}
	return nil
}

// Read decodes the config data b into cfg, with the format implied
// by the given filename.
func Read(cfg any, b []byte, file string) error {
	f, err := FileFormat(file)
	if err != nil {
		return err
	}
	switch f {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err = dec.Decode(cfg)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		dec := toml.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		err = dec.Decode(cfg)
	}
	if err != nil {
		return fmt.Errorf("cli: reading %s: %w", file, err)
	}
	return nil
}

// Save writes cfg to the given file, in the format implied by its extension.
func Save(cfg any, file string) error {
	f, err := FileFormat(file)
	if err != nil {
		return err
	}
	var b []byte
	switch f {
	case YAML:
		b, err = yaml.Marshal(cfg)
	default:
		b, err = toml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(file, b, 0o644)
}
