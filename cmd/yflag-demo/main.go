// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// yflag-demo shows how a program embeds flagset: register, parse once,
// branch on the error kind, then read the positional arguments.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/yeetrun/yflag/pkg/flagset"
	"github.com/yeetrun/yflag/pkg/flagvalue"
	"github.com/yeetrun/yflag/pkg/snapshot"
	"github.com/yeetrun/yflag/pkg/tui"
	"github.com/yeetrun/yflag/pkg/usage"
)

type options struct {
	Verbose bool
	Workers int
	Ratio   float64
	Name    string
	Level   *string
	Timeout time.Duration
	Port    uint16
	Version *semver.Version
	Tags    []string
	Color   string
	Print   string
}

func (o *options) register(fs *flagset.FlagSet) {
	fs.BoolVar(&o.Verbose, "v", "Enable verbose output")
	fs.IntVar(&o.Workers, "workers", "Number of workers")
	fs.Float64Var(&o.Ratio, "ratio", "Sampling ratio")
	fs.StringVar(&o.Name, "name", "Name to greet")
	flagset.BindOptional(fs, &o.Level, "level", "Log level override")
	fs.Var(flagvalue.Duration(&o.Timeout), "timeout", "Request timeout")
	fs.Var(flagvalue.Port(&o.Port, 1, 65535), "port", "Listen port")
	fs.Var(flagvalue.Version(&o.Version), "min-version", "Minimum supported version")
	fs.Var(flagvalue.List(&o.Tags), "tag", "Tag to apply (repeatable)")
	fs.StringVar(&o.Color, "color", "Colorize help (auto|always|never)")
	fs.StringVar(&o.Print, "print", "Print effective settings (json|toml|yaml)")
}

var helpConfig = usage.Config{
	Name:        "yflag-demo",
	Description: "Parse flags and print what was understood",
	Synopsis:    "[ARG...]",
	Examples: []string{
		"yflag-demo -v --workers 8 a b",
		"yflag-demo --tag=x,y -tag z --print=toml",
		"yflag-demo -name=alice -- -not-a-flag",
	},
}

func run(argv []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "yflag-demo: ", 0)
	opts := options{
		Workers: 4,
		Name:    "world",
		Timeout: 30 * time.Second,
		Port:    8080,
		Color:   "auto",
	}
	fs := flagset.New()
	opts.register(fs)

	err := fs.Parse(argv)
	mode, modeErr := tui.ParseColorMode(opts.Color)
	if modeErr != nil {
		logger.Printf("%v, using auto", modeErr)
	}
	cfg := helpConfig
	cfg.Color = mode
	if errors.Is(err, flagset.ErrHelp) {
		if err := usage.Write(stdout, fs, cfg); err != nil {
			logger.Printf("failed to write usage: %v", err)
			return 1
		}
		return 0
	}
	if err != nil {
		printCLIError(stderr, err, tui.NewColorizer(stderr, mode))
		return 2
	}
	var format snapshot.Format
	if opts.Print != "" {
		if format, err = snapshot.ParseFormat(opts.Print); err != nil {
			printCLIError(stderr, err, tui.NewColorizer(stderr, mode))
			return 2
		}
	}

	if opts.Verbose {
		fs.Visit(func(f *flagset.Flag) {
			logger.Printf("set %s=%s", f.Name, f.Value.String())
		})
	}

	fmt.Fprintf(stdout, "Hello, %s!\n", opts.Name)
	for i, arg := range fs.Args() {
		fmt.Fprintf(stdout, "arg[%d] = %q\n", i, arg)
	}

	if format != "" {
		if err := snapshot.Encode(stdout, snapshot.Take(fs), format); err != nil {
			logger.Printf("%v", err)
			return 1
		}
	}
	return 0
}

func printCLIError(w io.Writer, err error, c tui.Colorizer) {
	fmt.Fprintf(w, "%s %v\n", c.Error("Error:"), err)
	var fe *flagset.Error
	if errors.As(err, &fe) && fe.Kind != flagset.KindNumArgs {
		fmt.Fprintf(w, "Try '%s --help' for more information\n", helpConfig.Name)
	}
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
