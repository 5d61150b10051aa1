package github_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blackwell-systems/shotshelf/internal/github"
)

const latestJSON = `{
  "id": 7,
  "tag_name": "v1.2.0",
  "name": "1.2.0",
  "html_url": "https://github.com/o/r/releases/tag/v1.2.0",
  "assets": [
    {"id": 1, "name": "shotshelf_linux_amd64", "size": 4, "url": "%s/assets/1"},
    {"id": 2, "name": "shotshelf_linux_amd64.sha256", "size": 64, "url": "%s/assets/2"}
  ]
}`

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestLatestRelease(t *testing.T) {
	var srv *httptest.Server
	srv = newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/o/r/releases/latest" {
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q", got)
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("missing User-Agent")
		}
		body := strings.ReplaceAll(latestJSON, "%s", srv.URL)
		_, _ = io.WriteString(w, body)
	})

	c := github.New("tok", srv.URL+"/")
	rel, err := c.LatestRelease(context.Background(), "o", "r")
	if err != nil {
		t.Fatalf("LatestRelease: %v", err)
	}
	if rel.TagName != "v1.2.0" || rel.Version() != "1.2.0" {
		t.Errorf("tag = %q version = %q", rel.TagName, rel.Version())
	}
	if len(rel.Assets) != 2 {
		t.Fatalf("assets = %d, want 2", len(rel.Assets))
	}
	if a := rel.FindAsset("shotshelf_linux_amd64"); a == nil || a.ID != 1 {
		t.Errorf("FindAsset = %+v", a)
	}
	if a := rel.FindAsset("missing"); a != nil {
		t.Errorf("FindAsset(missing) = %+v, want nil", a)
	}
}

func TestAnonymousRequestHasNoAuth(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("Authorization = %q, want empty", got)
		}
		_, _ = io.WriteString(w, `{"tag_name":"v0.1.0"}`)
	})
	if _, err := github.New("", srv.URL).LatestRelease(context.Background(), "o", "r"); err != nil {
		t.Fatalf("LatestRelease: %v", err)
	}
}

func TestStatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		headers map[string]string
		want    error
	}{
		{"not found", http.StatusNotFound, nil, github.ErrNotFound},
		{"unauthorized", http.StatusUnauthorized, nil, github.ErrUnauthorized},
		{"forbidden", http.StatusForbidden, nil, github.ErrForbidden},
		{"rate limited", http.StatusForbidden, map[string]string{"X-RateLimit-Remaining": "0"}, github.ErrRateLimited},
		{"too many", http.StatusTooManyRequests, nil, github.ErrRateLimited},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.headers {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
			})
			_, err := github.New("", srv.URL).LatestRelease(context.Background(), "o", "r")
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUnexpectedStatusIncludesBody(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream down")
	})
	_, err := github.New("", srv.URL).LatestRelease(context.Background(), "o", "r")
	if err == nil || !strings.Contains(err.Error(), "upstream down") {
		t.Errorf("err = %v", err)
	}
}

func TestGetReleaseByTag(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/o/r/releases/tags/v2.0.0" {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, `{"id": 9, "tag_name": "v2.0.0"}`)
	})
	c := github.New("", srv.URL)
	rel, err := c.GetReleaseByTag(context.Background(), "o", "r", "v2.0.0")
	if err != nil || rel.ID != 9 {
		t.Fatalf("GetReleaseByTag = %+v, %v", rel, err)
	}
	if _, err := c.GetReleaseByTag(context.Background(), "o", "r", "v9"); !errors.Is(err, github.ErrNotFound) {
		t.Errorf("missing tag err = %v", err)
	}
}

func TestDownloadAsset(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "application/octet-stream" {
			t.Errorf("Accept = %q", got)
		}
		_, _ = io.WriteString(w, "BIN!")
	})
	c := github.New("", srv.URL)
	rc, size, err := c.DownloadAsset(context.Background(), &github.Asset{Name: "a", URL: srv.URL + "/a"})
	if err != nil {
		t.Fatalf("DownloadAsset: %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != "BIN!" || size != 4 {
		t.Errorf("data = %q size = %d", data, size)
	}
}

func TestDownloadAsset_NoURL(t *testing.T) {
	_, _, err := github.New("", "").DownloadAsset(context.Background(), &github.Asset{Name: "a"})
	if err == nil {
		t.Error("expected error for asset without URL")
	}
}

func TestDownloadAsset_RedirectDropsAuth(t *testing.T) {
	cdn := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("CDN saw Authorization = %q", got)
		}
		_, _ = io.WriteString(w, "ok")
	})
	api := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, cdn.URL+"/blob", http.StatusFound)
	})
	rc, _, err := github.New("secret", api.URL).DownloadAsset(context.Background(), &github.Asset{Name: "a", URL: api.URL + "/a"})
	if err != nil {
		t.Fatalf("DownloadAsset: %v", err)
	}
	_ = rc.Close()
}
