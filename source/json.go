// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/z5labs/minfold/internal/try"
)

// JsonSource decodes a JSON array of integers.
type JsonSource struct {
	r io.Reader
}

// Json returns a [Source] which decodes a JSON array of int32 values read from r.
func Json(r io.Reader) JsonSource {
	return JsonSource{r: r}
}

// InvalidJsonError occurs if the underlying io.Reader does not contain
// a JSON array of int32 values.
type InvalidJsonError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e InvalidJsonError) Error() string {
	return fmt.Sprintf("invalid json: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidJsonError) Unwrap() error {
	return e.Cause
}

// Read implements the [Source] interface.
func (src JsonSource) Read(ctx context.Context) (_ []int32, err error) {
	defer try.Close(&err, src.r)

	b, err := io.ReadAll(src.r)
	if err != nil {
		return nil, err
	}

	var ps []*int32
	err = json.Unmarshal(b, &ps)
	if err != nil {
		return nil, InvalidJsonError{Cause: err}
	}

	xs, err := deref(ps)
	if err != nil {
		return nil, InvalidJsonError{Cause: err}
	}
	return xs, nil
}
