// Package gitver resolves the currently used version from a local Git
// clone's tags, for deployments that tag releases instead of embedding a
// version string.
package gitver

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	git "github.com/go-git/go-git/v5"
	"golang.org/x/mod/semver"
)

// ErrNoTags is returned when the repository has no tags to derive a
// version from.
var ErrNoTags = errors.New("repository has no tags")

// LatestTag opens the repository at path and returns its highest tag,
// sorted by semantic version descending. The tag is returned as stored
// (a leading "v" is not stripped).
func LatestTag(path string) (string, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return "", fmt.Errorf("failed to open repository at %q: %w", path, err)
	}
	return latestTag(repo)
}

func latestTag(repo *git.Repository) (string, error) {
	iter, err := repo.Tags()
	if err != nil {
		return "", fmt.Errorf("failed to list tags: %w", err)
	}
	defer iter.Close()

	var tags []string
	for {
		ref, nextErr := iter.Next()
		if nextErr != nil {
			break
		}
		tags = append(tags, ref.Name().Short())
	}

	if len(tags) == 0 {
		return "", ErrNoTags
	}

	sortVersionsDescending(tags)
	return tags[0], nil
}

func sortVersionsDescending(versions []string) {
	sort.Slice(versions, func(i, j int) bool {
		v1 := normalizeVersion(versions[i])
		v2 := normalizeVersion(versions[j])
		if semver.IsValid(v1) && semver.IsValid(v2) {
			return semver.Compare(v1, v2) > 0
		}
		return versions[i] > versions[j]
	})
}

func normalizeVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
