package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Asset represents a GitHub Release asset.
type Asset struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Size               int64  `json:"size"`
	URL                string `json:"url"`
	BrowserDownloadURL string `json:"browser_download_url"`
	ContentType        string `json:"content_type"`
}

// DownloadAsset streams the content of a release asset. It returns the body
// and the content length (-1 when unknown).
// Caller is responsible for closing the returned ReadCloser.
func (c *Client) DownloadAsset(ctx context.Context, a *Asset) (io.ReadCloser, int64, error) {
	target := a.URL
	if target == "" {
		target = a.BrowserDownloadURL
	}
	if target == "" {
		return nil, 0, fmt.Errorf("asset %q has no download URL", a.Name)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/octet-stream")

	resp, err := c.do(req)
	if err != nil {
		return nil, 0, err
	}
	if err := checkStatus(resp); err != nil {
		_ = resp.Body.Close()
		return nil, 0, fmt.Errorf("download %q: %w", a.Name, err)
	}

	size := resp.ContentLength
	if size < 0 && a.Size > 0 {
		size = a.Size
	}
	return resp.Body, size, nil
}
