package cmd

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sagesphinx63920/updatechecker/application"
	"github.com/sagesphinx63920/updatechecker/config"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	configPath string
	repoFilter string
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Check all repositories from the configuration file",
	Long: `Check every repository listed in the configuration file once and
log a message for each one with a newer release available.

This is the command intended to be used in a cronjob. Without --config the
file is auto-detected in the standard locations (working directory,
.config, configs, the home directory).`,
	RunE: runWatch,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	runCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"Path to config file (default: auto-detect)")
	runCmd.Flags().StringVar(&repoFilter, "repo", "",
		"Only check this repository name")
	rootCmd.AddCommand(runCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	path := configPath
	if path == "" {
		found, err := config.FindConfigFile()
		if err != nil {
			return err
		}
		path = found
	}
	logger.Debugf("Using config file %q", path)

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	service := injectWatchService()
	return service.Run(cmd.Context(), cfg, application.RunOptions{
		Verbose:    verbose,
		RepoFilter: repoFilter,
	})
}
