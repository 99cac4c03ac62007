// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"context"
	"fmt"
	"io"

	"github.com/z5labs/minfold/internal/try"

	"gopkg.in/yaml.v3"
)

// YamlSource decodes a YAML sequence of integers.
type YamlSource struct {
	r io.Reader
}

// Yaml returns a [Source] which decodes a YAML sequence of int32 values
// read from r. An empty document produces an empty sequence.
func Yaml(r io.Reader) YamlSource {
	return YamlSource{r: r}
}

// InvalidYamlError occurs if the underlying io.Reader does not contain
// a YAML sequence of int32 values.
type InvalidYamlError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e InvalidYamlError) Error() string {
	return fmt.Sprintf("invalid yaml: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidYamlError) Unwrap() error {
	return e.Cause
}

// Read implements the [Source] interface.
func (src YamlSource) Read(ctx context.Context) (_ []int32, err error) {
	defer try.Close(&err, src.r)

	b, err := io.ReadAll(src.r)
	if err != nil {
		return nil, err
	}

	var ps []*int32
	err = yaml.Unmarshal(b, &ps)
	if err != nil {
		return nil, InvalidYamlError{Cause: err}
	}

	xs, err := deref(ps)
	if err != nil {
		return nil, InvalidYamlError{Cause: err}
	}
	return xs, nil
}
