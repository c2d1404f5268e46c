package cmd

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sagesphinx63920/updatechecker/application"
	"github.com/sagesphinx63920/updatechecker/infrastructure/gitver"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	checkAuthor      string
	checkName        string
	checkVersion     string
	checkVersionFrom string
	checkToken       string
	checkMessage     string
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a single repository for a newer release",
	Long: `Check one GitHub repository for a newer release than the version
currently in use.

The current version is given with --current, or derived from the highest
tag of a local clone with --current-from. Without --token the public
redirect endpoint is used; with --token the GitHub API is used, which also
works for private repositories.`,
	RunE: runCheck,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	checkCmd.Flags().StringVarP(&checkAuthor, "author", "a", "",
		"Repository owner (user or organization)")
	checkCmd.Flags().StringVarP(&checkName, "name", "n", "",
		"Repository name")
	checkCmd.Flags().StringVarP(&checkVersion, "current", "c", "",
		"Currently used version (a leading 'v' is accepted)")
	checkCmd.Flags().StringVar(&checkVersionFrom, "current-from", "",
		"Path to a local clone whose highest tag is the current version")
	checkCmd.Flags().StringVarP(&checkToken, "token", "t", "",
		"GitHub access token with read permission on the releases")
	checkCmd.Flags().StringVarP(&checkMessage, "message", "m", "",
		"Custom notification template (@name, @latestVersion, @currentVersion)")
	_ = checkCmd.MarkFlagRequired("author")
	_ = checkCmd.MarkFlagRequired("name")
	checkCmd.MarkFlagsMutuallyExclusive("current", "current-from")
	checkCmd.MarkFlagsOneRequired("current", "current-from")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	currentVersion := checkVersion
	if checkVersionFrom != "" {
		tag, err := gitver.LatestTag(checkVersionFrom)
		if err != nil {
			return fmt.Errorf("failed to resolve current version: %w", err)
		}
		logger.Debugf("Resolved current version %q from %q", tag, checkVersionFrom)
		currentVersion = tag
	}

	checker, err := buildChecker(currentVersion)
	if err != nil {
		return err
	}
	if checkMessage != "" {
		checker.SetMessage(checkMessage)
	}

	if checkErr := <-checker.Check(cmd.Context()); checkErr != nil {
		return fmt.Errorf("check failed: %w", checkErr)
	}

	if !checker.UpdateAvailable() {
		latest, _ := checker.LatestVersion()
		logger.Infof("%s is up to date (latest release: %s)", checkName, latest)
	}
	return nil
}

func buildChecker(currentVersion string) (*application.UpdateChecker, error) {
	sink := logger.StandardLogger()
	if checkToken != "" {
		return application.NewTokenUpdateChecker(
			checkAuthor, checkName, currentVersion, true, sink, checkToken,
		)
	}
	return application.NewUpdateChecker(
		checkAuthor, checkName, currentVersion, true, sink,
	)
}
