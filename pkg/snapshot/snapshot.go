// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package snapshot serializes the effective values of a flagset.FlagSet.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/yflag/pkg/flagset"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	JSON Format = "json"
	TOML Format = "toml"
	YAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case JSON, TOML, YAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (expected json|toml|yaml)", s)
}

// Snapshot maps flag names to the text of their current values.
type Snapshot map[string]string

// Take records the current value of every flag registered in fs. Flags
// holding no value (see flagset.Nullable) are left out, so every entry can
// be fed back through FlagSet.Set.
func Take(fs *flagset.FlagSet) Snapshot {
	s := make(Snapshot)
	fs.VisitAll(func(f *flagset.Flag) {
		if flagset.HasValue(f.Value) {
			s[f.Name] = f.Value.String()
		}
	})
	return s
}

// TakeSet records only the flags that were set on the command line.
func TakeSet(fs *flagset.FlagSet) Snapshot {
	s := make(Snapshot)
	fs.Visit(func(f *flagset.Flag) {
		s[f.Name] = f.Value.String()
	})
	return s
}

// Encode writes s to w. Keys are written in sorted order for every format.
func Encode(w io.Writer, s Snapshot, format Format) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
	case TOML:
		if err := toml.NewEncoder(w).Encode(map[string]string(s)); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]string(s)); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}
