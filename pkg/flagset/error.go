// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flagset

import "fmt"

// ErrorKind classifies why parsing stopped.
type ErrorKind int

const (
	// KindHelp means -h, -help or --help was given and no flag of that name
	// is registered. It is a control-flow result, not a failure.
	KindHelp ErrorKind = iota + 1
	// KindNumArgs means the argument vector did not even hold a program name.
	KindNumArgs
	// KindBadSyntax means a token such as "---" or "--=x" could not be read as a flag.
	KindBadSyntax
	// KindUndefinedFlag means the flag name is not registered.
	KindUndefinedFlag
	// KindMissingValue means a non-boolean flag was the last token and had no inline value.
	KindMissingValue
	// KindBadValue means the value converter rejected the token.
	KindBadValue
)

func (k ErrorKind) String() string {
	switch k {
	case KindHelp:
		return "help requested"
	case KindNumArgs:
		return "wrong number of arguments"
	case KindBadSyntax:
		return "bad flag syntax"
	case KindUndefinedFlag:
		return "undefined flag"
	case KindMissingValue:
		return "missing value"
	case KindBadValue:
		return "bad value"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinel errors, one per kind. A *Error matches the sentinel of its kind
// under errors.Is, so callers can write errors.Is(err, flagset.ErrHelp).
var (
	ErrHelp          = &Error{Kind: KindHelp}
	ErrNumArgs       = &Error{Kind: KindNumArgs}
	ErrBadSyntax     = &Error{Kind: KindBadSyntax}
	ErrUndefinedFlag = &Error{Kind: KindUndefinedFlag}
	ErrMissingValue  = &Error{Kind: KindMissingValue}
	ErrBadValue      = &Error{Kind: KindBadValue}
)

// Error is returned by Parse and Set. It is never modified after it is returned.
type Error struct {
	Kind ErrorKind
	// Msg is the user-facing message. It is empty for KindHelp.
	Msg string
	// Flag is the flag name involved, without dashes, when there is one.
	Flag string
	// Value is the offending token for KindBadValue and KindBadSyntax.
	Value string
	// Err is the conversion failure behind a KindBadValue error.
	Err error
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "flag: " + e.Kind.String()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return t.Kind == e.Kind
}

// ConversionError is the failure a value converter reports when a token
// cannot be turned into the target type. Parse lifts it into a KindBadValue
// *Error carrying the flag name and the token.
type ConversionError struct {
	Msg string
	Err error
}

func (e *ConversionError) Error() string {
	return e.Msg
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func conversionErrorf(cause error, format string, args ...any) *ConversionError {
	return &ConversionError{Msg: fmt.Sprintf(format, args...), Err: cause}
}
