package application

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/sagesphinx63920/updatechecker/config"
	"github.com/sagesphinx63920/updatechecker/domain"
	"github.com/sagesphinx63920/updatechecker/infrastructure/fetcher"
	"github.com/sagesphinx63920/updatechecker/infrastructure/gitver"
)

// WatchService runs an update check for every repository in the
// configuration and reports a summary.
type WatchService struct {
	registry *fetcher.Registry
	sink     domain.Logger
	// resolveVersion derives the current version from a local clone
	// (config key version_from).
	resolveVersion func(path string) (string, error)
}

// NewWatchService creates a new service backed by the given fetcher registry.
func NewWatchService(registry *fetcher.Registry) *WatchService {
	return &WatchService{
		registry:       registry,
		sink:           logger.StandardLogger(),
		resolveVersion: gitver.LatestTag,
	}
}

// RunOptions holds runtime options for a single run.
type RunOptions struct {
	Verbose    bool
	RepoFilter string // If set, only check this repository name (CLI override)
}

// Run checks every configured repository once. It returns an error when any
// individual check failed, after all entries were attempted.
func (s *WatchService) Run(
	ctx context.Context,
	cfg *config.Config,
	runOpts RunOptions,
) error {
	if runOpts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	totalChecked := 0
	totalUpdates := 0
	totalErrors := 0

	for _, repoCfg := range cfg.Repositories {
		// Skip if CLI filter is set and doesn't match
		if runOpts.RepoFilter != "" && repoCfg.Name != runOpts.RepoFilter {
			continue
		}

		logger.Debugf("Checking %s/%s", repoCfg.Author, repoCfg.Name)

		checker, err := s.buildChecker(repoCfg)
		if err != nil {
			logger.Errorf("Failed to set up check for %s/%s: %v",
				repoCfg.Author, repoCfg.Name, err)
			totalErrors++
			continue
		}

		totalChecked++
		if checkErr := <-checker.Check(ctx); checkErr != nil {
			logger.Errorf("Check failed for %s/%s: %v",
				repoCfg.Author, repoCfg.Name, checkErr)
			totalErrors++
			continue
		}

		if checker.UpdateAvailable() {
			totalUpdates++
		} else {
			latest, _ := checker.LatestVersion()
			logger.Debugf("%s/%s is up to date (latest: %s)",
				repoCfg.Author, repoCfg.Name, latest)
		}
	}

	logger.Infof("Checked %d repositories: %d updates available, %d errors",
		totalChecked, totalUpdates, totalErrors)

	if totalErrors > 0 {
		return fmt.Errorf("%d check(s) failed", totalErrors)
	}
	return nil
}

// buildChecker assembles an UpdateChecker for one configuration entry.
func (s *WatchService) buildChecker(repoCfg config.RepositoryConfig) (*UpdateChecker, error) {
	currentVersion := repoCfg.Version
	if repoCfg.VersionFrom != "" {
		tag, err := s.resolveVersion(repoCfg.VersionFrom)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve version from %q: %w",
				repoCfg.VersionFrom, err)
		}
		currentVersion = tag
	}

	mode := fetcher.ModePublic
	if repoCfg.Token != "" {
		mode = fetcher.ModeAPI
	}

	releaseFetcher, err := s.registry.Get(mode, repoCfg.Author, repoCfg.Name, repoCfg.Token)
	if err != nil {
		return nil, err
	}

	checker, err := NewUpdateCheckerWithFetcher(
		repoCfg.Author, repoCfg.Name, currentVersion,
		repoCfg.Notify(), s.sink, releaseFetcher,
	)
	if err != nil {
		return nil, err
	}

	if repoCfg.Message != "" {
		checker.SetMessage(repoCfg.Message)
	}
	return checker, nil
}
