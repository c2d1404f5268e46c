package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sagesphinx63920/updatechecker/domain"
)

const (
	apiBaseURL     = "https://api.github.com"
	acceptHeader   = "application/vnd.github+json"
	apiVersion     = "2022-11-28"
	apiVersionName = "X-GitHub-Api-Version"
)

// APIFetcher resolves the latest release through the GitHub REST API with a
// bearer token, which also works for private repositories.
type APIFetcher struct {
	author  string
	name    string
	token   string
	baseURL string
	client  *http.Client
}

// NewAPIFetcher creates a fetcher for the authenticated API endpoint.
// The token needs read permission on the repository's releases.
func NewAPIFetcher(author, name, token string) *APIFetcher {
	return &APIFetcher{
		author:  author,
		name:    name,
		token:   token,
		baseURL: apiBaseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// latestReleaseResponse is the subset of the releases API payload we read.
type latestReleaseResponse struct {
	TagName    string `json:"tag_name"`
	Prerelease bool   `json:"prerelease"`
}

// LatestRelease issues one authenticated GET against
// /repos/{author}/{name}/releases/latest and parses tag_name + prerelease.
func (f *APIFetcher) LatestRelease(ctx context.Context) (domain.ReleaseInfo, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", f.baseURL, f.author, f.name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.ReleaseInfo{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Authorization", "Bearer "+f.token)
	req.Header.Set(apiVersionName, apiVersion)

	resp, err := f.client.Do(req)
	if err != nil {
		return domain.ReleaseInfo{}, fmt.Errorf("failed to reach %q: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ReleaseInfo{}, fmt.Errorf(
			"%w: %s/%s returned status %d",
			domain.ErrAccessDenied, f.author, f.name, resp.StatusCode,
		)
	}

	var release latestReleaseResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&release); decodeErr != nil {
		return domain.ReleaseInfo{}, fmt.Errorf(
			"%w: %s/%s returned an unreadable body: %v",
			domain.ErrAccessDenied, f.author, f.name, decodeErr,
		)
	}

	if release.TagName == "" {
		return domain.ReleaseInfo{}, fmt.Errorf(
			"%w: response from %q has no tag_name", domain.ErrMissingTagData, url,
		)
	}

	// Some projects namespace their tags (e.g. "components/v1.2.3");
	// only the final segment is the version tag.
	return domain.ReleaseInfo{
		Tag:        lastSegment(release.TagName),
		Prerelease: release.Prerelease,
	}, nil
}
