// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"github.com/spf13/cobra"

	"pstack.dev/pstack/internal/output"
	"pstack.dev/pstack/internal/runtime"
)

// DirectoryFlag names the persistent flag selecting the repository directory
const DirectoryFlag = "directory"

// Directory returns the directory the command should run in
func Directory(cmd *cobra.Command) string {
	dir, err := cmd.Flags().GetString(DirectoryFlag)
	if err != nil || dir == "" {
		return "."
	}
	return dir
}

// NewSplog creates a logger writing to the command's output streams
func NewSplog(cmd *cobra.Command) (*output.Splog, error) {
	return output.NewSplogWithConfig(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.GetLogFilePath())
}

// Run is a helper that provides a full runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	return withSplog(cmd, func(splog *output.Splog) error {
		ctx, err := runtime.GetContext(Directory(cmd), splog)
		if err != nil {
			return err
		}
		return fn(ctx)
	})
}

// RunRepo is like Run but does not load the repository config
func RunRepo(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	return withSplog(cmd, func(splog *output.Splog) error {
		ctx, err := runtime.NewRepoContext(Directory(cmd), splog)
		if err != nil {
			return err
		}
		return fn(ctx)
	})
}

// RunBare provides a context without a repository
func RunBare(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	return withSplog(cmd, func(splog *output.Splog) error {
		return fn(runtime.NewContext(splog))
	})
}

func withSplog(cmd *cobra.Command, fn func(splog *output.Splog) error) error {
	splog, err := NewSplog(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = splog.Close() }()

	err = fn(splog)
	if err != nil {
		splog.Debug("%s failed: %v", cmd.CommandPath(), err)
	}
	return err
}
