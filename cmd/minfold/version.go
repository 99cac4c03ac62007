// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
)

// set at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

// InvalidVersionError occurs when the build version is not semver.
type InvalidVersionError struct {
	Version string
	Cause   error
}

// Error implements the [builtin.error] interface.
func (e InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid build version %q: %s", e.Version, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidVersionError) Unwrap() error {
	return e.Cause
}

// UnsatisfiedVersionError occurs when the build version does not satisfy
// the constraint passed to --require.
type UnsatisfiedVersionError struct {
	Version    string
	Constraint string
}

// Error implements the [builtin.error] interface.
func (e UnsatisfiedVersionError) Error() string {
	return fmt.Sprintf("version %s does not satisfy %s", e.Version, e.Constraint)
}

func newVersionCmd() *cobra.Command {
	var constraint string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the minfold version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := semver.NewVersion(version)
			if err != nil {
				return InvalidVersionError{Version: version, Cause: err}
			}

			if constraint != "" {
				c, err := semver.NewConstraint(constraint)
				if err != nil {
					return err
				}
				if !c.Check(v) {
					return UnsatisfiedVersionError{Version: v.String(), Constraint: constraint}
				}
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "minfold v%s\n", v)
			return err
		},
	}
	cmd.Flags().StringVar(&constraint, "require", "", "fail unless the version satisfies this semver constraint, e.g. \">= 0.1\"")
	return cmd
}
