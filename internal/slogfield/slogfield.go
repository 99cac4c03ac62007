// Copyright (c) 2023 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package slogfield provides typed constructors for the slog attributes
// logged by minfold.
package slogfield

import (
	"log/slog"
	"time"

	"github.com/z5labs/minfold/optional"
)

// Duration returns an slog.Attr for a time.Duration.
func Duration(key string, d time.Duration) slog.Attr {
	return slog.Duration(key, d)
}

// Error returns an slog.Attr for a error.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}

// String returns an slog.Attr for a string.
func String(key, value string) slog.Attr {
	return slog.String(key, value)
}

// Strings returns an slog.Attr for a slice of strings.
func Strings(key string, values []string) slog.Attr {
	return slog.Any(key, values)
}

// Int returns an slog.Attr for a int.
func Int(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Int32s returns an slog.Attr for a slice of int32s.
func Int32s(key string, ns []int32) slog.Attr {
	return slog.Any(key, ns)
}

// Int64 returns an slog.Attr for a int64.
func Int64(key string, n int64) slog.Attr {
	return slog.Int64(key, n)
}

// Optional returns an slog.Attr for an optional.Int. An absent value is
// logged as a group with present=false, a present value also carries
// its value.
func Optional(key string, o optional.Int) slog.Attr {
	return optional.Match(
		o,
		func() slog.Attr {
			return slog.Group(key, slog.Bool("present", false))
		},
		func(n int32) slog.Attr {
			return slog.Group(key, slog.Bool("present", true), slog.Int64("value", int64(n)))
		},
	)
}
