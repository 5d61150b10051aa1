package github

import (
	"context"
	"fmt"
	"strings"
)

// Release represents a GitHub Release.
type Release struct {
	ID         int64   `json:"id"`
	TagName    string  `json:"tag_name"`
	Name       string  `json:"name"`
	HTMLURL    string  `json:"html_url"`
	Draft      bool    `json:"draft"`
	Prerelease bool    `json:"prerelease"`
	Assets     []Asset `json:"assets"`
}

// Version returns the tag name without a leading "v".
func (r *Release) Version() string {
	return strings.TrimPrefix(r.TagName, "v")
}

// FindAsset returns the asset with the given name, or nil.
func (r *Release) FindAsset(name string) *Asset {
	for i := range r.Assets {
		if r.Assets[i].Name == name {
			return &r.Assets[i]
		}
	}
	return nil
}

// LatestRelease fetches the most recent published release.
// Returns ErrNotFound if the repository has no releases.
func (c *Client) LatestRelease(ctx context.Context, owner, repo string) (*Release, error) {
	var r Release
	if err := c.getJSON(ctx, c.url("repos", owner, repo, "releases", "latest"), &r); err != nil {
		return nil, fmt.Errorf("latest release of %s/%s: %w", owner, repo, err)
	}
	return &r, nil
}

// GetReleaseByTag fetches a release by its tag name.
// Returns ErrNotFound if the tag does not exist.
func (c *Client) GetReleaseByTag(ctx context.Context, owner, repo, tag string) (*Release, error) {
	var r Release
	if err := c.getJSON(ctx, c.url("repos", owner, repo, "releases", "tags", tag), &r); err != nil {
		return nil, fmt.Errorf("release %q: %w", tag, err)
	}
	return &r, nil
}
