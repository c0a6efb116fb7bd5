// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flagset

import (
	"fmt"
	"slices"
	"strings"

	"tailscale.com/util/mak"
	"tailscale.com/util/set"
)

// helpNames are answered with ErrHelp when nothing is registered under them.
var helpNames = set.Of("help", "h")

// Flag is a registered flag.
type Flag struct {
	Name     string // name as it appears on the command line, without dashes
	Usage    string // help message
	Value    Value  // value as set
	DefValue string // value as text at registration time
	IsBool   bool   // "-name" alone means true, the next token is never consumed
}

// FlagSet is a set of flags and the result of parsing a command line
// against them. The zero value is ready to use.
//
// A FlagSet is not safe for concurrent use. Register every flag before
// calling Parse.
type FlagSet struct {
	parsed  bool
	program string
	args    []string
	formal  map[string]*Flag
	actual  map[string]*Flag
}

// New returns an empty FlagSet.
func New() *FlagSet {
	return &FlagSet{}
}

// Var binds v to name. Registering a name twice replaces the earlier flag.
func (f *FlagSet) Var(v Value, name, usage string) {
	isBool := false
	if bv, ok := v.(boolFlag); ok {
		isBool = bv.IsBoolFlag()
	}
	// The registry owns its keys.
	name = strings.Clone(name)
	mak.Set(&f.formal, name, &Flag{
		Name:     name,
		Usage:    usage,
		Value:    v,
		DefValue: v.String(),
		IsBool:   isBool,
	})
}

// Bind registers the built-in converter for *p under name.
func Bind[T Scalar](f *FlagSet, p *T, name, usage string) {
	f.Var(newValue(p), name, usage)
}

// BindOptional registers an optional flag. *p stays nil until the flag is
// given with a value that converts; a failed conversion leaves *p unchanged.
func BindOptional[T Scalar](f *FlagSet, p **T, name, usage string) {
	f.Var(optionalValue[T]{p: p}, name, usage)
}

// BoolVar defines a bool flag bound to p.
func (f *FlagSet) BoolVar(p *bool, name, usage string) { Bind(f, p, name, usage) }

// IntVar defines an int flag bound to p.
func (f *FlagSet) IntVar(p *int, name, usage string) { Bind(f, p, name, usage) }

// Int64Var defines an int64 flag bound to p.
func (f *FlagSet) Int64Var(p *int64, name, usage string) { Bind(f, p, name, usage) }

// UintVar defines a uint flag bound to p.
func (f *FlagSet) UintVar(p *uint, name, usage string) { Bind(f, p, name, usage) }

// Float32Var defines a float32 flag bound to p.
func (f *FlagSet) Float32Var(p *float32, name, usage string) { Bind(f, p, name, usage) }

// Float64Var defines a float64 flag bound to p.
func (f *FlagSet) Float64Var(p *float64, name, usage string) { Bind(f, p, name, usage) }

// StringVar defines a string flag bound to p.
func (f *FlagSet) StringVar(p *string, name, usage string) { Bind(f, p, name, usage) }

// Parse parses argv, whose first element is the program name. It returns
// nil or an *Error describing the first problem found; flags handled before
// that keep their new values.
//
// Scanning stops at the first token that is not a flag ("-" is not a flag)
// or right after "--". Everything from there on is available from Args.
//
// Parse is normally called once. Calling it again re-runs the scan against
// the same bound variables and replaces Args and the set of visited flags.
func (f *FlagSet) Parse(argv []string) error {
	f.parsed = true
	f.args = nil
	f.actual = nil

	if len(argv) < 1 {
		return &Error{Kind: KindNumArgs, Msg: "at least 1 argument is needed"}
	}
	f.program = argv[0]
	rest := argv[1:]

	for len(rest) > 0 {
		tok := rest[0]
		if len(tok) < 2 || tok[0] != '-' {
			break
		}
		dashes := 1
		if tok[1] == '-' {
			dashes++
			if len(tok) == 2 {
				rest = rest[1:]
				break
			}
		}
		rest = rest[1:]

		body := tok[dashes:]
		if body[0] == '-' || body[0] == '=' {
			return &Error{Kind: KindBadSyntax, Msg: "bad flag syntax: " + tok, Value: tok}
		}

		name, value, hasValue := strings.Cut(body, "=")
		flag, ok := f.formal[name]
		if !ok {
			if helpNames.Contains(name) {
				return &Error{Kind: KindHelp}
			}
			return &Error{Kind: KindUndefinedFlag, Msg: "flag provided but not defined: " + name, Flag: name}
		}

		if flag.IsBool {
			if !hasValue {
				value = "true"
			}
			if err := flag.Value.Set(value); err != nil {
				return &Error{
					Kind:  KindBadValue,
					Msg:   fmt.Sprintf("bad boolean value %q for flag %s: %v", value, name, err),
					Flag:  name,
					Value: value,
					Err:   err,
				}
			}
		} else {
			if !hasValue {
				if len(rest) == 0 {
					return &Error{Kind: KindMissingValue, Msg: "flag is missing a value: " + name, Flag: name}
				}
				value, rest = rest[0], rest[1:]
			}
			if err := flag.Value.Set(value); err != nil {
				return badValue(name, value, err)
			}
		}
		mak.Set(&f.actual, name, flag)
	}

	f.args = append([]string{}, rest...)
	return nil
}

func badValue(name, value string, err error) *Error {
	return &Error{
		Kind:  KindBadValue,
		Msg:   fmt.Sprintf("bad value %q for flag %s: %v", value, name, err),
		Flag:  name,
		Value: value,
		Err:   err,
	}
}

// Set assigns value to the named flag through its converter, as if
// "-name=value" had been parsed.
func (f *FlagSet) Set(name, value string) error {
	flag, ok := f.formal[name]
	if !ok {
		return &Error{Kind: KindUndefinedFlag, Msg: "no such flag: " + name, Flag: name}
	}
	if err := flag.Value.Set(value); err != nil {
		return badValue(name, value, err)
	}
	mak.Set(&f.actual, name, flag)
	return nil
}

// Parsed reports whether Parse has been called.
func (f *FlagSet) Parsed() bool { return f.parsed }

// Program returns argv[0] from the last Parse.
func (f *FlagSet) Program() string { return f.program }

// Args returns the positional arguments left after flag parsing.
func (f *FlagSet) Args() []string { return f.args }

// NArg is the number of positional arguments.
func (f *FlagSet) NArg() int { return len(f.args) }

// Arg returns the i'th positional argument, or "" if there is none.
func (f *FlagSet) Arg(i int) string {
	if i < 0 || i >= len(f.args) {
		return ""
	}
	return f.args[i]
}

// NFlag is the number of flags set by the last Parse or by Set.
func (f *FlagSet) NFlag() int { return len(f.actual) }

// Lookup returns the named flag, or nil.
func (f *FlagSet) Lookup(name string) *Flag { return f.formal[name] }

// VisitAll calls fn for every registered flag in lexicographic order.
func (f *FlagSet) VisitAll(fn func(*Flag)) {
	for _, flag := range sortFlags(f.formal) {
		fn(flag)
	}
}

// Visit calls fn, in lexicographic order, for the flags that were set.
func (f *FlagSet) Visit(fn func(*Flag)) {
	for _, flag := range sortFlags(f.actual) {
		fn(flag)
	}
}

func sortFlags(flags map[string]*Flag) []*Flag {
	out := make([]*Flag, 0, len(flags))
	for _, flag := range flags {
		out = append(out, flag)
	}
	slices.SortFunc(out, func(a, b *Flag) int { return strings.Compare(a.Name, b.Name) })
	return out
}
