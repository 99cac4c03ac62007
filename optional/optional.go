// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package optional provides a two variant type for representing either
// the absence of an int32 or the presence of exactly one int32.
package optional

import "strconv"

// Int is either [Absent] or [Present]. No other type can implement Int.
//
// Values are immutable. Use [Match] to handle both variants.
type Int interface {
	isInt()

	// String implements the [fmt.Stringer] interface.
	String() string
}

// Absent represents no value.
type Absent struct{}

func (Absent) isInt() {}

// String implements the [fmt.Stringer] interface.
func (Absent) String() string {
	return "Absent"
}

// Present carries exactly one int32.
type Present struct {
	Value int32
}

func (Present) isInt() {}

// String implements the [fmt.Stringer] interface.
func (p Present) String() string {
	return "Present(" + strconv.FormatInt(int64(p.Value), 10) + ")"
}

// None returns the [Absent] variant.
func None() Int {
	return Absent{}
}

// Some returns the [Present] variant carrying v.
func Some(v int32) Int {
	return Present{Value: v}
}

// Match calls absent or present depending on which variant o is.
// A nil Int is handled as [Absent].
func Match[R any](o Int, absent func() R, present func(int32) R) R {
	p, ok := o.(Present)
	if !ok {
		return absent()
	}
	return present(p.Value)
}

// Get returns the payload of o and whether o is [Present].
func Get(o Int) (int32, bool) {
	p, ok := o.(Present)
	return p.Value, ok
}

// Or returns the payload of o if it is [Present], otherwise fallback.
func Or(o Int, fallback int32) int32 {
	return Match(
		o,
		func() int32 { return fallback },
		func(n int32) int32 { return n },
	)
}

// IsPresent reports whether o is the [Present] variant.
func IsPresent(o Int) bool {
	_, ok := o.(Present)
	return ok
}
