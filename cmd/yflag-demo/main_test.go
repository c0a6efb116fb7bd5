// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func runDemo(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(append([]string{"yflag-demo"}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunPositional(t *testing.T) {
	code, stdout, stderr := runDemo("-name=alice", "--", "-not-a-flag", "b")
	if code != 0 {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr)
	}
	want := "Hello, alice!\n" +
		"arg[0] = \"-not-a-flag\"\n" +
		"arg[1] = \"b\"\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestRunHelp(t *testing.T) {
	for _, arg := range []string{"-h", "--help", "-help"} {
		t.Run(arg, func(t *testing.T) {
			code, stdout, stderr := runDemo("-workers=2", arg, "--", "x")
			if code != 0 {
				t.Fatalf("run() = %d, stderr:\n%s", code, stderr)
			}
			if !strings.HasPrefix(stdout, "yflag-demo - Parse flags") {
				t.Errorf("stdout does not start with the help header:\n%s", stdout)
			}
			for _, want := range []string{"--workers <int>", "--port <port>", "Listen port (default: 8080)", "-h, --help"} {
				if !strings.Contains(stdout, want) {
					t.Errorf("help is missing %q:\n%s", want, stdout)
				}
			}
			if strings.Contains(stdout, "\x1b[") {
				t.Errorf("help written to a buffer is colorized:\n%q", stdout)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		args    []string
		wantErr string
	}{
		{[]string{"-bogus"}, "Error: flag provided but not defined: bogus"},
		{[]string{"-workers=+1"}, `Error: bad value "+1" for flag workers: number is not an integer`},
		{[]string{"-port", "0"}, `Error: bad value "0" for flag port: port must be between 1 and 65535`},
		{[]string{"---"}, "Error: bad flag syntax: ---"},
		{[]string{"-name"}, "Error: flag is missing a value: name"},
		{[]string{"-print=xml"}, `Error: unknown format "xml" (expected json|toml|yaml)`},
		{[]string{"-print=xml", "a", "b"}, `Error: unknown format "xml" (expected json|toml|yaml)`},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			code, stdout, stderr := runDemo(tt.args...)
			if code != 2 {
				t.Errorf("run() = %d, want 2", code)
			}
			if stdout != "" {
				t.Errorf("stdout = %q, want nothing on failure", stdout)
			}
			if !strings.HasPrefix(stderr, tt.wantErr+"\n") {
				t.Errorf("stderr = %q, want prefix %q", stderr, tt.wantErr)
			}
		})
	}
}

func TestRunNoArgs(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run(nil, &out, &errOut); code != 2 {
		t.Errorf("run(nil) = %d, want 2", code)
	}
	if got := errOut.String(); got != "Error: at least 1 argument is needed\n" {
		t.Errorf("stderr = %q", got)
	}
}

func TestRunPrint(t *testing.T) {
	code, stdout, stderr := runDemo("-tag=x,y", "-tag", "z", "-min-version=1.2.0", "--print=toml")
	if code != 0 {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr)
	}
	for _, want := range []string{
		`tag = "x,y,z"`,
		`min-version = "1.2.0"`,
		`workers = "4"`,
		`timeout = "30s"`,
		`name = "world"`,
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout is missing %q:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "level =") {
		t.Errorf("stdout lists the unset optional level:\n%s", stdout)
	}
}

func TestRunVerbose(t *testing.T) {
	code, _, stderr := runDemo("-v", "-ratio=0.25")
	if code != 0 {
		t.Fatalf("run() = %d, stderr:\n%s", code, stderr)
	}
	want := "yflag-demo: set ratio=0.25\nyflag-demo: set v=true\n"
	if diff := cmp.Diff(want, stderr); diff != "" {
		t.Errorf("stderr mismatch (-want +got):\n%s", diff)
	}
}
