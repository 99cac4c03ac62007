// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"os"
	"path/filepath"

	"github.com/z5labs/minfold"
	"github.com/z5labs/minfold/config"
	"github.com/z5labs/minfold/internal/app"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "minfold",
		Short:        "Reduce sequences of integers to their minimum",
		SilenceUsage: true,
	}
	cmd.AddCommand(
		newRunCmd(),
		newDemoCmd(),
		newVersionCmd(),
	)
	return cmd
}

func newRunCmd() *cobra.Command {
	var (
		cfgPath string
		watch   bool
	)

	cmd := &cobra.Command{
		Use:   "run [files...]",
		Short: "Reduce every configured job and each given file",
		Long: `Reduce every configured job and each given file.

Config is merged in order from the built-in defaults, the --config file,
MINFOLD_* environment variables and, lastly, flags. Files are parsed as
YAML (.yaml, .yml), JSON (.json) or whitespace/comma separated text.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			srcs := []config.Source{app.DefaultConfig()}
			if cfgPath != "" {
				path, err := filepath.Abs(cfgPath)
				if err != nil {
					return err
				}
				f := config.NewFileReader(os.DirFS(filepath.Dir(path)), filepath.Base(path))
				srcs = append(srcs, config.FromYaml(f))
			}
			srcs = append(srcs, config.FromEnv("MINFOLD"))
			if cmd.Flags().Changed("watch") {
				srcs = append(srcs, config.Map{
					"watch": map[string]any{"enabled": watch},
				})
			}

			builder := app.Builder(app.Options{
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
				Files:  args,
			})
			return minfold.Run(cmd.Context(), builder, srcs...)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-run the jobs whenever an input file changes")
	return cmd
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Replay the part00 and part01 walkthroughs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := app.Builder(app.Options{
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			})
			return minfold.Run(cmd.Context(), builder, app.DefaultConfig(), app.DemoConfig())
		},
	}
}
