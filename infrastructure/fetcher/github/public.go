// Package github implements the two GitHub latest-release lookup
// strategies: the public redirect endpoint and the authenticated API.
package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sagesphinx63920/updatechecker/domain"
)

const (
	publicBaseURL  = "https://github.com"
	requestTimeout = 15 * time.Second
)

// PublicFetcher resolves the latest release of a public repository without
// authentication. GitHub answers /releases/latest with a redirect whose
// Location header names the release tag; the client stops at that first
// response instead of following it.
type PublicFetcher struct {
	author  string
	name    string
	baseURL string
	client  *http.Client
}

// NewPublicFetcher creates a fetcher for the public redirect endpoint.
func NewPublicFetcher(author, name string) *PublicFetcher {
	return &PublicFetcher{
		author:  author,
		name:    name,
		baseURL: publicBaseURL,
		client: &http.Client{
			Timeout: requestTimeout,
			CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// LatestRelease issues one GET and extracts the release tag from the
// redirect Location header. A 404 means the repository does not exist or
// is private (the API mode handles private repositories).
func (f *PublicFetcher) LatestRelease(ctx context.Context) (domain.ReleaseInfo, error) {
	url := fmt.Sprintf("%s/%s/%s/releases/latest", f.baseURL, f.author, f.name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.ReleaseInfo{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return domain.ReleaseInfo{}, fmt.Errorf("failed to reach %q: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ReleaseInfo{}, fmt.Errorf(
			"%w: %s/%s", domain.ErrRepositoryNotFound, f.author, f.name,
		)
	}

	location := resp.Header.Get("Location")
	if location == "" {
		return domain.ReleaseInfo{}, fmt.Errorf(
			"%w: no Location header in response from %q", domain.ErrMissingTagData, url,
		)
	}

	return domain.ReleaseInfo{Tag: lastSegment(location)}, nil
}

// lastSegment returns the final "/"-delimited part of a path or tag name.
func lastSegment(value string) string {
	parts := strings.Split(value, "/")
	return parts[len(parts)-1]
}
