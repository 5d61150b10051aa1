package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

const defaultAPIBase = "https://api.github.com"

// Client is a GitHub API client for release lookups. The token is optional;
// anonymous requests work against public repositories at a lower rate limit.
type Client struct {
	token     string
	apiBase   string
	userAgent string
	http      *http.Client
}

// New creates a Client with the given token and API base URL.
// If apiBase is empty, the public GitHub API is used.
func New(token, apiBase string) *Client {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	// Strip trailing slash for consistent URL building.
	apiBase = strings.TrimRight(apiBase, "/")

	return &Client{
		token:     token,
		apiBase:   apiBase,
		userAgent: "shotshelf",
		http: &http.Client{
			Timeout:       5 * time.Minute, // asset downloads can be slow
			CheckRedirect: stripAuthOnRedirect,
		},
	}
}

// SetUserAgent overrides the User-Agent header sent with every request.
func (c *Client) SetUserAgent(ua string) {
	if ua != "" {
		c.userAgent = ua
	}
}

// do executes the request with standard GitHub headers.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/vnd.github+json")
	}
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	req.Header.Set("User-Agent", c.userAgent)
	return c.http.Do(req)
}

// getJSON fetches url and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if err := checkStatus(resp); err != nil {
		return err
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if err := sonic.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// url builds an API URL from path segments.
func (c *Client) url(parts ...string) string {
	return c.apiBase + "/" + strings.Join(parts, "/")
}

// checkStatus returns a typed error for non-2xx responses.
func checkStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		if resp.Header.Get("X-RateLimit-Remaining") == "0" {
			return ErrRateLimited
		}
		return ErrForbidden
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusNotFound:
		return ErrNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("github API error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

// stripAuthOnRedirect drops the Authorization header when a redirect leaves
// github.com (asset downloads land on a CDN host).
func stripAuthOnRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= 10 {
		return fmt.Errorf("too many redirects")
	}
	if !strings.HasSuffix(req.URL.Hostname(), "github.com") {
		req.Header.Del("Authorization")
	}
	return nil
}
