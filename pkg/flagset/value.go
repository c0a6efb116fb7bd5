// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flagset

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Value is the dynamic value stored in a flag, bound to a variable the
// caller owns.
//
// Set converts the token and stores it in the variable. If the token cannot
// be converted, Set returns an error and must leave the variable as it was.
// String formats the current value so that Set(String()) reproduces it.
//
// If a Value has an IsBoolFlag() bool method returning true, the parser
// treats it like a boolean: "-name" without "=value" is Set("true") and the
// next token is never consumed.
type Value interface {
	String() string
	Set(string) error
}

type boolFlag interface {
	Value
	IsBoolFlag() bool
}

// Typed is implemented by values that can name the type they accept, for
// use in usage text.
type Typed interface {
	Type() string
}

// TypeName returns v's Type() or "value" if v does not implement Typed.
func TypeName(v Value) string {
	if t, ok := v.(Typed); ok {
		return t.Type()
	}
	return "value"
}

// Nullable is implemented by values that can hold no value at all, such as
// optional flags that were never given. String returns "" for them, which
// Set would not accept back.
type Nullable interface {
	IsSet() bool
}

// HasValue reports whether v holds a value. Values that do not implement
// Nullable always do.
func HasValue(v Value) bool {
	if n, ok := v.(Nullable); ok {
		return n.IsSet()
	}
	return true
}

// Scalar is the closed set of types with a built-in converter.
type Scalar interface {
	bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		string
}

type signed interface {
	int | int8 | int16 | int32 | int64
}

type unsigned interface {
	uint | uint8 | uint16 | uint32 | uint64
}

type float interface {
	float32 | float64
}

// newValue returns the built-in converter for p.
func newValue[T Scalar](p *T) Value {
	switch p := any(p).(type) {
	case *bool:
		return (*boolValue)(p)
	case *int:
		return &intValue[int]{p: p, bits: strconv.IntSize}
	case *int8:
		return &intValue[int8]{p: p, bits: 8}
	case *int16:
		return &intValue[int16]{p: p, bits: 16}
	case *int32:
		return &intValue[int32]{p: p, bits: 32}
	case *int64:
		return &intValue[int64]{p: p, bits: 64}
	case *uint:
		return &uintValue[uint]{p: p, bits: strconv.IntSize}
	case *uint8:
		return &uintValue[uint8]{p: p, bits: 8}
	case *uint16:
		return &uintValue[uint16]{p: p, bits: 16}
	case *uint32:
		return &uintValue[uint32]{p: p, bits: 32}
	case *uint64:
		return &uintValue[uint64]{p: p, bits: 64}
	case *float32:
		return &floatValue[float32]{p: p, bits: 32}
	case *float64:
		return &floatValue[float64]{p: p, bits: 64}
	case *string:
		return (*stringValue)(p)
	}
	panic("unreachable")
}

// boolValue accepts a fixed, case-sensitive vocabulary. The empty token
// means true.
type boolValue bool

func parseBool(s string) (bool, error) {
	switch s {
	case "", "true", "t", "yes", "y":
		return true, nil
	case "false", "f", "no", "n":
		return false, nil
	}
	return false, conversionErrorf(nil, "unknown boolean value")
}

func (b *boolValue) Set(s string) error {
	v, err := parseBool(s)
	if err != nil {
		return err
	}
	*b = boolValue(v)
	return nil
}

func (b *boolValue) String() string { return strconv.FormatBool(bool(*b)) }

func (b *boolValue) IsBoolFlag() bool { return true }

func (b *boolValue) Type() string { return "bool" }

// leadingPlus rejects an explicit plus sign, which strconv would otherwise accept.
func leadingPlus(s string) bool {
	return strings.HasPrefix(s, "+")
}

func numberError(err error, kind string) error {
	if errors.Is(err, strconv.ErrRange) {
		return conversionErrorf(err, "number is out of range")
	}
	return conversionErrorf(err, "number is not %s", kind)
}

type intValue[T signed] struct {
	p    *T
	bits int
}

func (v *intValue[T]) Set(s string) error {
	if leadingPlus(s) {
		return conversionErrorf(nil, "number is not an integer")
	}
	n, err := strconv.ParseInt(s, 10, v.bits)
	if err != nil {
		return numberError(err, "an integer")
	}
	*v.p = T(n)
	return nil
}

func (v *intValue[T]) String() string { return strconv.FormatInt(int64(*v.p), 10) }

func (v *intValue[T]) Type() string { return fmt.Sprintf("%T", *v.p) }

type uintValue[T unsigned] struct {
	p    *T
	bits int
}

func (v *uintValue[T]) Set(s string) error {
	if leadingPlus(s) {
		return conversionErrorf(nil, "number is not an unsigned integer")
	}
	n, err := strconv.ParseUint(s, 10, v.bits)
	if err != nil {
		return numberError(err, "an unsigned integer")
	}
	*v.p = T(n)
	return nil
}

func (v *uintValue[T]) String() string { return strconv.FormatUint(uint64(*v.p), 10) }

func (v *uintValue[T]) Type() string { return fmt.Sprintf("%T", *v.p) }

type floatValue[T float] struct {
	p    *T
	bits int
}

func (v *floatValue[T]) Set(s string) error {
	if leadingPlus(s) {
		return conversionErrorf(nil, "number is not a float")
	}
	f, err := strconv.ParseFloat(s, v.bits)
	if err != nil {
		return numberError(err, "a float")
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return conversionErrorf(nil, "number is not a float")
	}
	*v.p = T(f)
	return nil
}

func (v *floatValue[T]) String() string {
	return strconv.FormatFloat(float64(*v.p), 'g', -1, v.bits)
}

func (v *floatValue[T]) Type() string { return fmt.Sprintf("%T", *v.p) }

type stringValue string

func (s *stringValue) Set(val string) error {
	*s = stringValue(val)
	return nil
}

func (s *stringValue) String() string { return string(*s) }

func (s *stringValue) Type() string { return "string" }

// optionalValue converts into a temporary and only stores a pointer to it
// once conversion succeeded. A nil *p means the flag was never given.
type optionalValue[T Scalar] struct {
	p **T
}

func (v optionalValue[T]) Set(s string) error {
	var tmp T
	if err := newValue(&tmp).Set(s); err != nil {
		return err
	}
	*v.p = &tmp
	return nil
}

func (v optionalValue[T]) String() string {
	if v.p == nil || *v.p == nil {
		return ""
	}
	return newValue(*v.p).String()
}

func (v optionalValue[T]) IsSet() bool { return v.p != nil && *v.p != nil }

func (v optionalValue[T]) Type() string {
	var zero T
	return TypeName(newValue(&zero))
}

func (v optionalValue[T]) IsBoolFlag() bool {
	_, ok := any(v.p).(**bool)
	return ok
}
