// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/z5labs/minfold/internal/try"
)

// TextSource parses integers from plain text.
type TextSource struct {
	r io.Reader
}

// Text returns a [Source] which parses base-10 int32 values separated by
// whitespace and/or commas. A '#' starts a comment which runs to the end of
// the line. If r implements [io.Closer] it is closed once read.
func Text(r io.Reader) TextSource {
	return TextSource{r: r}
}

// InvalidIntegerError occurs when a token can not be parsed as an int32.
type InvalidIntegerError struct {
	Line  int
	Token string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e InvalidIntegerError) Error() string {
	return fmt.Sprintf("line %d: invalid integer %q: %s", e.Line, e.Token, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidIntegerError) Unwrap() error {
	return e.Cause
}

// Read implements the [Source] interface. Lines may be of any length.
func (src TextSource) Read(ctx context.Context) (_ []int32, err error) {
	defer try.Close(&err, src.r)

	var xs []int32
	br := bufio.NewReader(src.r)
	for line := 1; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}

		text, _, _ = strings.Cut(text, "#")
		for _, tok := range strings.FieldsFunc(text, isSeparator) {
			n, perr := strconv.ParseInt(tok, 10, 32)
			if perr != nil {
				return nil, InvalidIntegerError{
					Line:  line,
					Token: tok,
					Cause: perr,
				}
			}
			xs = append(xs, int32(n))
		}

		if err == io.EOF {
			return xs, nil
		}
	}
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}
