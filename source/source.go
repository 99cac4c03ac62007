// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package source provides the data sources which produce finite, ordered
// sequences of int32 values for reduction.
package source

import (
	"context"
	"fmt"
	"slices"
)

// Source produces a finite ordered sequence of int32 values.
type Source interface {
	Read(context.Context) ([]int32, error)
}

// StaticSource always produces the same values.
type StaticSource struct {
	values []int32
}

// Static returns a [Source] which produces a copy of xs every time it is read.
func Static(xs ...int32) StaticSource {
	return StaticSource{values: slices.Clone(xs)}
}

// Read implements the [Source] interface.
func (src StaticSource) Read(ctx context.Context) ([]int32, error) {
	return slices.Clone(src.values), nil
}

// NullElementError occurs when a structured source contains a null
// where an integer is expected.
type NullElementError struct {
	Index int
}

// Error implements the [builtin.error] interface.
func (e NullElementError) Error() string {
	return fmt.Sprintf("element %d is null", e.Index)
}

func deref(ps []*int32) ([]int32, error) {
	if ps == nil {
		return nil, nil
	}
	xs := make([]int32, len(ps))
	for i, p := range ps {
		if p == nil {
			return nil, NullElementError{Index: i}
		}
		xs[i] = *p
	}
	return xs, nil
}
