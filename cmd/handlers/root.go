/*
Copyright © 2025 Your Name

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package handlers

import (
	"context"
	"io"
	"os"

	"fileshare/internal/config"
	"fileshare/internal/logger"
	"fileshare/internal/pipeline"
	"fileshare/internal/render"

	"github.com/spf13/cobra"
)

// Version is reported by --version
const Version = "1.0.0"

// NewRootCmd creates the root command. The root command itself performs the
// share; there are no subcommands.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:   "fileshare <file>",
		Short: "Generate a short link for sharing a file",
		Long: `fileshare uploads a file to tmpfiles.org and prints a TinyURL link to it.

The short link is the only output on stdout, so it can be piped or captured.
Diagnostics go to stderr and any failure exits with status 1.

Configuration (optional):
  .fileshare.yaml in the current or home directory, --config, or
  FILESHARE_* environment variables (e.g. FILESHARE_UPLOAD_ENDPOINT).

Examples:
  fileshare report.pdf
  fileshare ./build/output.tar.gz | pbcopy
  fileshare -v notes.txt`,
		Version:       Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			logger.SetLevel(cfg.LogLevel())
			if verbose {
				logger.SetLevel("debug")
			}
			if cfg.App.ConfigFile != "" {
				logger.Debug("Using config file", "path", cfg.App.ConfigFile)
			}
			return nil
		},
		RunE: shareRun,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .fileshare.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each pipeline stage to stderr")

	return rootCmd
}

func shareRun(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	pipe, err := pipeline.NewBuilder().
		WithUploadEndpoint(cfg.Upload.Endpoint).
		WithShortenEndpoint(cfg.Shorten.Endpoint).
		WithUserAgent(cfg.HTTP.UserAgent).
		WithTimeout(cfg.Timeout()).
		Build()
	if err != nil {
		return err
	}

	logger.Debug("Starting share", "path", args[0])

	result, err := pipe.Run(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	return render.NewReporter(cmd.OutOrStdout(), cmd.ErrOrStderr()).Success(result)
}

// Run executes the command line args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger.SetOutput(stderr)

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return render.NewReporter(stdout, stderr).Failure(err)
	}
	return 0
}

// Execute runs the root command against the process arguments and exits.
func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
