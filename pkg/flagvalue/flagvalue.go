// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flagvalue provides flagset.Value implementations for types that
// have no built-in converter.
//
// Every constructor binds to a variable the caller owns. A token that does
// not convert leaves the variable unchanged.
//
//	var (
//	    timeout = 30 * time.Second
//	    port    uint16
//	    tags    []string
//	)
//	fs.Var(flagvalue.Duration(&timeout), "timeout", "Request timeout")
//	fs.Var(flagvalue.Port(&port, 1, 65535), "port", "Listen port")
//	fs.Var(flagvalue.List(&tags), "tag", "Tag (repeatable)")
package flagvalue

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"github.com/yeetrun/yflag/pkg/flagset"
)

func invalid(err error, format string, args ...any) error {
	return &flagset.ConversionError{Msg: fmt.Sprintf(format, args...), Err: err}
}

type durationValue struct{ p *time.Duration }

// Duration binds a time.Duration parsed with time.ParseDuration.
func Duration(p *time.Duration) flagset.Value { return durationValue{p} }

func (v durationValue) Set(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil {
		return invalid(err, "invalid duration")
	}
	*v.p = d
	return nil
}

func (v durationValue) String() string {
	if v.p == nil {
		return ""
	}
	return v.p.String()
}

func (v durationValue) Type() string { return "duration" }

type urlValue struct{ p **url.URL }

// URL binds an absolute URL. Tokens without a scheme are rejected.
func URL(p **url.URL) flagset.Value { return urlValue{p} }

func (v urlValue) Set(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return invalid(err, "invalid URL")
	}
	if u.Scheme == "" {
		return invalid(nil, "URL is missing a scheme")
	}
	*v.p = u
	return nil
}

func (v urlValue) String() string {
	if v.p == nil || *v.p == nil {
		return ""
	}
	return (*v.p).String()
}

func (v urlValue) IsSet() bool { return v.p != nil && *v.p != nil }

func (v urlValue) Type() string { return "url" }

type portValue struct {
	p        *uint16
	min, max uint16
}

// Port binds a TCP/UDP port restricted to the inclusive range [min, max].
func Port(p *uint16, min, max uint16) flagset.Value {
	return portValue{p: p, min: min, max: max}
}

func (v portValue) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return invalid(err, "port must be between %d and %d", v.min, v.max)
		}
		return invalid(err, "invalid port value")
	}
	port := uint16(n)
	if port < v.min || port > v.max {
		return invalid(nil, "port must be between %d and %d", v.min, v.max)
	}
	*v.p = port
	return nil
}

func (v portValue) String() string {
	if v.p == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*v.p), 10)
}

func (v portValue) Type() string { return "port" }

type versionValue struct{ p **semver.Version }

// Version binds a semantic version such as "1.2.3" or "v2.0.0-rc.1".
func Version(p **semver.Version) flagset.Value { return versionValue{p} }

func (v versionValue) Set(s string) error {
	ver, err := semver.NewVersion(s)
	if err != nil {
		return invalid(err, "invalid version")
	}
	*v.p = ver
	return nil
}

func (v versionValue) String() string {
	if v.p == nil || *v.p == nil {
		return ""
	}
	return (*v.p).Original()
}

func (v versionValue) IsSet() bool { return v.p != nil && *v.p != nil }

func (v versionValue) Type() string { return "version" }

type constraintValue struct{ p **semver.Constraints }

// Constraint binds a semantic version constraint such as ">= 1.2, < 2".
func Constraint(p **semver.Constraints) flagset.Value { return constraintValue{p} }

func (v constraintValue) Set(s string) error {
	c, err := semver.NewConstraint(s)
	if err != nil {
		return invalid(err, "invalid version constraint")
	}
	*v.p = c
	return nil
}

func (v constraintValue) String() string {
	if v.p == nil || *v.p == nil {
		return ""
	}
	return (*v.p).String()
}

func (v constraintValue) IsSet() bool { return v.p != nil && *v.p != nil }

func (v constraintValue) Type() string { return "constraint" }

type uuidValue struct{ p *uuid.UUID }

// UUID binds an RFC 4122 UUID.
func UUID(p *uuid.UUID) flagset.Value { return uuidValue{p} }

func (v uuidValue) Set(s string) error {
	id, err := uuid.Parse(s)
	if err != nil {
		return invalid(err, "invalid UUID")
	}
	*v.p = id
	return nil
}

func (v uuidValue) String() string {
	if v.p == nil || *v.p == uuid.Nil {
		return ""
	}
	return v.p.String()
}

func (v uuidValue) IsSet() bool { return v.p != nil && *v.p != uuid.Nil }

func (v uuidValue) Type() string { return "uuid" }

type listValue struct{ p *[]string }

// List binds a repeatable flag. Each occurrence appends its comma-separated
// parts to *p; empty parts are dropped.
func List(p *[]string) flagset.Value { return listValue{p} }

func (v listValue) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		if part == "" {
			continue
		}
		*v.p = append(*v.p, part)
	}
	return nil
}

func (v listValue) String() string {
	if v.p == nil {
		return ""
	}
	return strings.Join(*v.p, ",")
}

func (v listValue) Type() string { return "list" }
