// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package reduce folds finite sequences of int32 values into a single summary.
package reduce

import (
	"iter"
	"slices"

	"github.com/z5labs/minfold/optional"
)

// Min returns the smallest value yielded by seq. The result is
// [optional.Absent] if and only if seq yields no values.
//
// seq is consumed exactly once, in order.
func Min(seq iter.Seq[int32]) optional.Int {
	current := optional.None()
	for e := range seq {
		current = optional.Some(optional.Match(
			current,
			func() int32 { return e },
			func(n int32) int32 { return minInt32(n, e) },
		))
	}
	return current
}

// MinSlice is shorthand for Min(slices.Values(xs)).
func MinSlice(xs []int32) optional.Int {
	return Min(slices.Values(xs))
}

func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Sum adds every value yielded by seq. The sum is accumulated as an int64
// so it cannot overflow for sequences shorter than 2^32 elements.
func Sum(seq iter.Seq[int32]) int64 {
	var sum int64
	for e := range seq {
		sum += int64(e)
	}
	return sum
}

// SumSlice is shorthand for Sum(slices.Values(xs)).
func SumSlice(xs []int32) int64 {
	return Sum(slices.Values(xs))
}
