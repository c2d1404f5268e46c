package application

import (
	"context"
	"strings"
	"sync"

	"github.com/sagesphinx63920/updatechecker/domain"
	"github.com/sagesphinx63920/updatechecker/infrastructure/fetcher/github"
)

// defaultMessage is emitted by Notify when no custom template was set.
const defaultMessage = "There is a newer version of %s (%s)! Current version: %s"

// UpdateChecker checks whether a newer release of a GitHub repository
// exists relative to the version currently in use. One instance is reused
// across its lifetime; each completed Check overwrites the result state of
// the previous one.
type UpdateChecker struct {
	author     string
	repoName   string
	current    domain.Version
	fetcher    domain.ReleaseFetcher
	logger     domain.Logger
	autoNotify bool

	// mu guards the result state written by the asynchronous check path.
	mu              sync.Mutex
	latest          *domain.Version
	updateAvailable bool
	message         string
}

// NewUpdateChecker creates a checker for a public repository, using the
// redirect-based lookup that needs no authentication. For private
// repositories use NewTokenUpdateChecker.
//
// currentVersion may carry a leading "v", which is stripped before parsing.
// When autoNotify is set a completed check immediately emits the update
// message through the logger; requesting it without a logger fails with
// domain.ErrMissingLogger.
func NewUpdateChecker(
	author, name, currentVersion string,
	autoNotify bool,
	logger domain.Logger,
) (*UpdateChecker, error) {
	return NewUpdateCheckerWithFetcher(
		author, name, currentVersion, autoNotify, logger,
		github.NewPublicFetcher(author, name),
	)
}

// NewTokenUpdateChecker creates a checker that uses the authenticated
// GitHub API, which also works for private repositories. The token needs
// read permission on the repository's releases.
func NewTokenUpdateChecker(
	author, name, currentVersion string,
	autoNotify bool,
	logger domain.Logger,
	token string,
) (*UpdateChecker, error) {
	return NewUpdateCheckerWithFetcher(
		author, name, currentVersion, autoNotify, logger,
		github.NewAPIFetcher(author, name, token),
	)
}

// NewUpdateCheckerWithFetcher creates a checker with an explicit release
// fetcher, for callers that build fetchers through a registry.
func NewUpdateCheckerWithFetcher(
	author, name, currentVersion string,
	autoNotify bool,
	logger domain.Logger,
	releaseFetcher domain.ReleaseFetcher,
) (*UpdateChecker, error) {
	if autoNotify && logger == nil {
		return nil, domain.ErrMissingLogger
	}

	current, err := domain.NewVersion(removePrefix(currentVersion))
	if err != nil {
		return nil, err
	}

	return &UpdateChecker{
		author:     author,
		repoName:   name,
		current:    current,
		fetcher:    releaseFetcher,
		logger:     logger,
		autoNotify: autoNotify,
	}, nil
}

// Check resolves the latest release asynchronously: it returns immediately
// and delivers exactly one value on the returned channel when the cycle
// completes. On success the result state is updated and, with autoNotify
// set, the update message is emitted before the channel fires. On failure
// the previous result state is left untouched.
//
// Exactly one request is issued per call, with no retry. Overlapping calls
// are safe but not coordinated: the last check to complete wins.
func (c *UpdateChecker) Check(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- c.runCheck(ctx)
	}()
	return done
}

func (c *UpdateChecker) runCheck(ctx context.Context) error {
	info, err := c.fetcher.LatestRelease(ctx)
	if err != nil {
		return err
	}

	latest, err := domain.NewPrereleaseVersion(removePrefix(info.Tag), info.Prerelease)
	if err != nil {
		return err
	}

	c.compareAndStore(latest)

	if c.autoNotify {
		return c.Notify()
	}
	return nil
}

// compareAndStore records the latest version and whether it is newer than
// the current one.
func (c *UpdateChecker) compareAndStore(latest domain.Version) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.latest = &latest
	c.updateAvailable = c.current.Compare(latest) < 0
}

// Notify emits the update message through the logger. It fails with
// domain.ErrNoLogger when no logger was supplied and domain.ErrNoPriorCheck
// when no check has completed yet. When no update is available it emits
// nothing and returns nil.
func (c *UpdateChecker) Notify() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.logger == nil {
		return domain.ErrNoLogger
	}
	if c.latest == nil {
		return domain.ErrNoPriorCheck
	}
	if !c.updateAvailable {
		return nil
	}

	if c.message == "" {
		c.logger.Infof(defaultMessage, c.repoName, c.latest.Raw(), c.current.Raw())
		return nil
	}

	replacer := strings.NewReplacer(
		"@name", c.repoName,
		"@latestVersion", c.latest.Raw(),
		"@currentVersion", c.current.Raw(),
	)
	c.logger.Infof("%s", replacer.Replace(c.message))
	return nil
}

// SetMessage stores a custom notification template. The placeholders
// @name, @latestVersion and @currentVersion are substituted on emission;
// their presence is not validated. An empty template restores the default
// message.
func (c *UpdateChecker) SetMessage(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.message = message
}

// UpdateAvailable reports whether the last completed check found a newer
// release. It is false until a check resolves.
func (c *UpdateChecker) UpdateAvailable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.updateAvailable
}

// LatestVersion returns the latest release's version string as published.
// The boolean is false until a check has resolved.
func (c *UpdateChecker) LatestVersion() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.latest == nil {
		return "", false
	}
	return c.latest.Raw(), true
}

// CurrentVersion returns the version string the checker compares against.
func (c *UpdateChecker) CurrentVersion() string {
	return c.current.Raw()
}

// RepoName returns the repository name the checker watches.
func (c *UpdateChecker) RepoName() string {
	return c.repoName
}

// removePrefix strips a single leading "v" from a version or tag string.
func removePrefix(version string) string {
	return strings.TrimPrefix(version, "v")
}
