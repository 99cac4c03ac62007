// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package present renders reduction results as human readable lines of text.
package present

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/z5labs/minfold/optional"
)

// Style selects the wording used when printing an [optional.Int].
type Style int

const (
	// Classic prints "We have nothing!" or "This is the number: <n>".
	Classic Style = iota

	// Inherent prints "The number is: <nothing>" or "The number is: <n>".
	Inherent
)

// UnknownStyleError occurs when parsing a style name which is not supported.
type UnknownStyleError struct {
	Name string
}

// Error implements the [builtin.error] interface.
func (e UnknownStyleError) Error() string {
	return fmt.Sprintf("unknown output style: %q", e.Name)
}

// ParseStyle returns the [Style] for the given name. Names are case-insensitive.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "classic":
		return Classic, nil
	case "inherent":
		return Inherent, nil
	default:
		return Classic, UnknownStyleError{Name: name}
	}
}

// String implements the [fmt.Stringer] interface.
func (s Style) String() string {
	switch s {
	case Inherent:
		return "inherent"
	default:
		return "classic"
	}
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (s *Style) UnmarshalText(b []byte) error {
	style, err := ParseStyle(string(b))
	if err != nil {
		return err
	}
	*s = style
	return nil
}

// Option configures a [Printer].
type Option func(*Printer)

// WithStyle sets the wording used by [Printer.Min].
func WithStyle(s Style) Option {
	return func(p *Printer) {
		p.style = s
	}
}

// Printer writes one line of text per call.
type Printer struct {
	w     io.Writer
	style Style
}

// NewPrinter returns a [Printer] which writes to w.
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	p := &Printer{
		w:     w,
		style: Classic,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Stdout returns a [Printer] which writes to [os.Stdout].
func Stdout(opts ...Option) *Printer {
	return NewPrinter(os.Stdout, opts...)
}

// Format returns the line [Printer.Min] would write for o, without the newline.
func (s Style) Format(o optional.Int) string {
	if s == Inherent {
		return optional.Match(
			o,
			func() string { return "The number is: <nothing>" },
			func(n int32) string { return "The number is: " + strconv.FormatInt(int64(n), 10) },
		)
	}
	return optional.Match(
		o,
		func() string { return "We have nothing!" },
		func(n int32) string { return "This is the number: " + strconv.FormatInt(int64(n), 10) },
	)
}

// Min writes the line describing o.
func (p *Printer) Min(o optional.Int) error {
	_, err := io.WriteString(p.w, p.style.Format(o)+"\n")
	return err
}

// Vector writes every element of xs on a single line.
func (p *Printer) Vector(xs []int32) error {
	var sb strings.Builder
	sb.WriteString("The vector contains: ")
	for _, x := range xs {
		sb.WriteString(strconv.FormatInt(int64(x), 10))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(p.w, sb.String())
	return err
}

// Sum writes the line describing the sum n.
func (p *Printer) Sum(n int64) error {
	_, err := fmt.Fprintf(p.w, "The sum is: %d\n", n)
	return err
}
