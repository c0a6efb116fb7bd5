// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flagset implements a small command-line flag parser that binds
// flags to variables owned by the caller.
//
// # Usage
//
//	var (
//	    verbose bool
//	    workers int
//	    level   *string
//	)
//	fs := flagset.New()
//	fs.BoolVar(&verbose, "v", "Enable verbose output")
//	flagset.Bind(fs, &workers, "workers", "Number of workers")
//	flagset.BindOptional(fs, &level, "level", "Log level override")
//
//	if err := fs.Parse(os.Args); err != nil {
//	    if errors.Is(err, flagset.ErrHelp) {
//	        // print usage, exit 0
//	    }
//	    // print err, exit non-zero
//	}
//	rest := fs.Args()
//
// # Syntax
//
// One or two leading dashes are equivalent:
//   - -flag, --flag: boolean flags become true; other flags take the next token
//   - -flag=value, --flag=value: the value follows the first "="
//   - --: ends flag scanning, everything after it is positional
//   - -, or any token not starting with "-": positional, ends flag scanning
//
// Boolean flags never consume the next token; use -flag=false to turn one
// off. Unless a flag named "h" or "help" is registered, -h, -help and --help
// make Parse return an *Error of kind KindHelp.
//
// Tokens like "---" or "--=x" are rejected with KindBadSyntax.
//
// # Values
//
// Bind accepts the types in Scalar. Booleans accept true, t, yes, y, false,
// f, no and n (case-sensitive). Integers and floats are base 10 and reject a
// leading "+". Any other type can be bound with Var by implementing Value;
// see package flagvalue for more.
package flagset
