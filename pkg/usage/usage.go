// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package usage renders help text for a flagset.FlagSet.
package usage

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/yeetrun/yflag/pkg/flagset"
	"github.com/yeetrun/yflag/pkg/tui"
)

const nameWidth = 28

// Config describes the program the help text is for.
type Config struct {
	Name        string // defaults to the base name of fs.Program()
	Description string
	Synopsis    string // e.g. "FILE [FILE...]"
	Examples    []string
	Color       tui.ColorMode
}

// Write renders help for fs to w.
func Write(w io.Writer, fs *flagset.FlagSet, cfg Config) error {
	_, err := io.WriteString(w, Render(fs, cfg, tui.NewColorizer(w, cfg.Color)))
	return err
}

// Render returns the help text for fs, colorized by c.
func Render(fs *flagset.FlagSet, cfg Config, c tui.Colorizer) string {
	name := cfg.Name
	if name == "" && fs.Program() != "" {
		name = filepath.Base(fs.Program())
	}
	if name == "" {
		name = "command"
	}

	var b strings.Builder

	b.WriteString(c.Heading(name))
	if cfg.Description != "" {
		b.WriteString(" - ")
		b.WriteString(cfg.Description)
	}
	b.WriteString("\n\n")

	b.WriteString(c.Heading("USAGE:"))
	b.WriteString("\n")
	line := fmt.Sprintf("    %s [OPTIONS]", name)
	if cfg.Synopsis != "" {
		line += " " + cfg.Synopsis
	}
	b.WriteString(line)
	b.WriteString("\n\n")

	b.WriteString(c.Heading("OPTIONS:"))
	b.WriteString("\n")
	fs.VisitAll(func(f *flagset.Flag) {
		writeOption(&b, c, FlagSyntax(f), Describe(f))
	})
	if fs.Lookup("h") == nil && fs.Lookup("help") == nil {
		writeOption(&b, c, "-h, --help", "Show help")
	}
	b.WriteString("\n")

	if len(cfg.Examples) > 0 {
		b.WriteString(c.Heading("EXAMPLES:"))
		b.WriteString("\n")
		for _, example := range cfg.Examples {
			fmt.Fprintf(&b, "    %s\n", example)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeOption(b *strings.Builder, c tui.Colorizer, syntax, desc string) {
	b.WriteString("    ")
	b.WriteString(c.Name(syntax))
	if desc == "" {
		b.WriteString("\n")
		return
	}
	if pad := nameWidth - 4 - len(syntax); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(" ")
	b.WriteString(desc)
	b.WriteString("\n")
}

// FlagSyntax shows how f is written on the command line: "-v" for one-letter
// names, "--name" otherwise, followed by "<type>" unless f is boolean.
func FlagSyntax(f *flagset.Flag) string {
	dashes := "--"
	if len(f.Name) == 1 {
		dashes = "-"
	}
	if f.IsBool {
		return dashes + f.Name
	}
	return fmt.Sprintf("%s%s <%s>", dashes, f.Name, flagset.TypeName(f.Value))
}

// Describe returns f's usage string followed by its default, if the default
// is not a zero value.
func Describe(f *flagset.Flag) string {
	desc := f.Usage
	def := f.DefValue
	if flagset.TypeName(f.Value) == "string" {
		if def == "" {
			return desc
		}
		def = fmt.Sprintf("%q", def)
	} else if isZeroDefault(def) {
		return desc
	}
	if desc == "" {
		return fmt.Sprintf("(default: %s)", def)
	}
	return fmt.Sprintf("%s (default: %s)", desc, def)
}

func isZeroDefault(v string) bool {
	switch v {
	case "", "0", "false", "0s":
		return true
	}
	return false
}
