// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package try

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecover(t *testing.T) {
	t.Run("will update the error ref value", func(t *testing.T) {
		t.Run("if a panic is recovered and the ref is nil", func(t *testing.T) {
			f := func() (err error) {
				defer Recover(&err)
				panic("hello world")
			}

			err := f()

			var perr PanicError
			if !assert.ErrorAs(t, err, &perr) {
				return
			}
			if !assert.Equal(t, "hello world", perr.Value) {
				return
			}
			if !assert.Nil(t, perr.Unwrap()) {
				return
			}
		})

		t.Run("if a panic is recovered and the ref is non-nil", func(t *testing.T) {
			funcErr := errors.New("error value")
			panicErr := errors.New("panic error")
			f := func() (err error) {
				defer Recover(&err)
				err = funcErr
				panic(panicErr)
			}

			err := f()

			if !assert.ErrorIs(t, err, funcErr) {
				return
			}
			if !assert.ErrorIs(t, err, panicErr) {
				return
			}
		})
	})

	t.Run("will not touch the error ref value", func(t *testing.T) {
		t.Run("if there is no panic", func(t *testing.T) {
			funcErr := errors.New("error value")
			f := func() (err error) {
				defer Recover(&err)
				return funcErr
			}

			err := f()
			if !assert.Equal(t, funcErr, err) {
				return
			}
		})
	})
}

type closeFunc func() error

func (f closeFunc) Close() error {
	return f()
}

func TestClose(t *testing.T) {
	t.Run("will join the close error", func(t *testing.T) {
		t.Run("if the close fails", func(t *testing.T) {
			closeErr := errors.New("close failed")
			f := func() (err error) {
				defer Close(&err, closeFunc(func() error { return closeErr }))
				return nil
			}

			err := f()

			var cerr CloseError
			if !assert.ErrorAs(t, err, &cerr) {
				return
			}
			if !assert.ErrorIs(t, err, closeErr) {
				return
			}
		})

		t.Run("if the close fails after another failure", func(t *testing.T) {
			readErr := errors.New("read failed")
			closeErr := errors.New("close failed")
			f := func() (err error) {
				defer Close(&err, closeFunc(func() error { return closeErr }))
				return readErr
			}

			err := f()

			if !assert.ErrorIs(t, err, readErr) {
				return
			}
			if !assert.ErrorIs(t, err, closeErr) {
				return
			}
		})
	})

	t.Run("will do nothing", func(t *testing.T) {
		t.Run("if the value is not an io.Closer", func(t *testing.T) {
			f := func() (err error) {
				defer Close(&err, strings.NewReader("hello"))
				return nil
			}

			if !assert.Nil(t, f()) {
				return
			}
		})
	})
}
