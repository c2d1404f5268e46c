package domain

import "context"

// ReleaseInfo is the raw result of a latest-release lookup, before the tag
// is parsed into a Version.
type ReleaseInfo struct {
	// Tag is the release tag as published (possibly with a leading "v").
	Tag string
	// Prerelease is the prerelease marker from the releases API.
	// Always false in public (redirect) mode, which has no such field.
	Prerelease bool
}

// ReleaseFetcher resolves the latest published release of a repository.
// Implementations issue exactly one outbound request per call, with no
// retries or caching.
type ReleaseFetcher interface {
	LatestRelease(ctx context.Context) (ReleaseInfo, error)
}

// Logger is the notification sink supplied by the caller.
// *logrus.Logger satisfies it.
type Logger interface {
	Infof(format string, args ...any)
}
