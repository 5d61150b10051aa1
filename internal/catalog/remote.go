package catalog

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/blackwell-systems/shotshelf/internal/steam"
)

const (
	defaultProfileBase = "https://steamcommunity.com"
	userAgent          = "shotshelf"
	maxProfileBytes    = 32 << 20
)

// LibraryFetcher retrieves an account's remote game library.
type LibraryFetcher interface {
	FetchLibrary(ctx context.Context, account steam.AccountID) (*Library, error)
}

// ProfileClient reads the games list from a Steam community profile.
type ProfileClient struct {
	base string
	http *http.Client
}

// NewProfileClient creates a client for base (empty means steamcommunity.com).
func NewProfileClient(base string, timeout time.Duration) *ProfileClient {
	if base == "" {
		base = defaultProfileBase
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ProfileClient{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

// LibraryURL returns the XML games endpoint for account.
func (c *ProfileClient) LibraryURL(account steam.AccountID) string {
	return c.base + "/profiles/" + url.PathEscape(account.ID3()) + "/games?xml=1"
}

// FetchLibrary downloads and parses the account's games list.
func (c *ProfileClient) FetchLibrary(ctx context.Context, account steam.AccountID) (*Library, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.LibraryURL(account), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/xml, application/xml")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching profile library: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching profile library: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxProfileBytes))
	if err != nil {
		return nil, fmt.Errorf("reading profile library: %w", err)
	}
	return ParseLibrary(data)
}

type profileDocument struct {
	XMLName xml.Name
	Library
	Error string `xml:"error"`
}

// ParseLibrary decodes a profile games XML document. A <response><error>
// document, which Steam serves for private profiles, yields ErrPrivateProfile.
func ParseLibrary(data []byte) (*Library, error) {
	var doc profileDocument
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing profile library: %w", err)
	}
	switch doc.XMLName.Local {
	case "gamesList":
		lib := doc.Library
		return &lib, nil
	case "response":
		if doc.Error != "" {
			return nil, fmt.Errorf("%w: %s", ErrPrivateProfile, strings.TrimSpace(doc.Error))
		}
	}
	return nil, fmt.Errorf("parsing profile library: unexpected root element <%s>", doc.XMLName.Local)
}
