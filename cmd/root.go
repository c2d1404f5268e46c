package cmd

import (
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var verbose bool

//nolint:gochecknoglobals // required by cobra CLI pattern
var rootCmd = &cobra.Command{
	Use:   "updatechecker",
	Short: "Release update checker for GitHub repositories",
	Long: `A small utility that checks whether a newer release of a
GitHub-hosted project exists relative to the version currently in use.

Public repositories are checked through the release redirect endpoint
without authentication; private repositories are checked through the
GitHub API with an access token.`,
}

func Execute() error {
	return rootCmd.Execute()
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
}
