// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/z5labs/minfold"
	"github.com/z5labs/minfold/config"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestDemoCmd(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)
	require.Equal(t, "This is the number: 2\n"+
		"We have nothing!\n"+
		"The number is: 2\n"+
		"The sum is: 68\n"+
		"The vector contains: 18 5 7 2 9 27 \n", out)
}

func TestRunCmd(t *testing.T) {
	t.Run("will reduce config jobs and file arguments", func(t *testing.T) {
		dir := t.TempDir()
		cfgPath := filepath.Join(dir, "config.yaml")
		numbers := filepath.Join(dir, "numbers.json")
		require.NoError(t, os.WriteFile(cfgPath, []byte("jobs:\n  - name: part00\n    values: [4, 8, 9, 3, 2, 4]\n"), 0o644))
		require.NoError(t, os.WriteFile(numbers, []byte("[]"), 0o644))

		out, err := execute(t, "run", "--config", cfgPath, numbers)
		require.NoError(t, err)
		require.Equal(t, "This is the number: 2\nWe have nothing!\n", out)
	})

	t.Run("will apply environment overrides", func(t *testing.T) {
		t.Setenv("MINFOLD_OUTPUT_STYLE", "inherent")

		dir := t.TempDir()
		numbers := filepath.Join(dir, "numbers.txt")
		require.NoError(t, os.WriteFile(numbers, []byte("18 5 7 2 9 27"), 0o644))

		out, err := execute(t, "run", numbers)
		require.NoError(t, err)
		require.Equal(t, "The number is: 2\n", out)
	})

	t.Run("will return a ConfigReadError", func(t *testing.T) {
		t.Run("if the config file does not exist", func(t *testing.T) {
			_, err := execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.yaml"))

			var cerr minfold.ConfigReadError
			require.ErrorAs(t, err, &cerr)
		})

		t.Run("if the config file is not valid yaml", func(t *testing.T) {
			cfgPath := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(cfgPath, []byte("jobs: ["), 0o644))

			_, err := execute(t, "run", "--config", cfgPath)

			var yerr config.InvalidYamlError
			require.ErrorAs(t, err, &yerr)
		})
	})
}

func TestVersionCmd(t *testing.T) {
	t.Run("will print the version", func(t *testing.T) {
		out, err := execute(t, "version")
		require.NoError(t, err)
		require.Equal(t, "minfold v"+version+"\n", out)
	})

	t.Run("will succeed", func(t *testing.T) {
		t.Run("if the version satisfies the constraint", func(t *testing.T) {
			_, err := execute(t, "version", "--require", ">= 0.1.0")
			require.NoError(t, err)
		})
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the version does not satisfy the constraint", func(t *testing.T) {
			_, err := execute(t, "version", "--require", ">= 99.0.0")

			var uerr UnsatisfiedVersionError
			require.ErrorAs(t, err, &uerr)
		})

		t.Run("if the build version is not semver", func(t *testing.T) {
			old := version
			version = "not-a-version"
			defer func() { version = old }()

			_, err := execute(t, "version")

			var verr InvalidVersionError
			require.ErrorAs(t, err, &verr)
		})
	})
}
