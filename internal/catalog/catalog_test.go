package catalog_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/shotshelf/internal/catalog"
	"github.com/blackwell-systems/shotshelf/internal/steam"
)

const cs2Manifest = `"AppState"
{
	"appid"		"730"
	"universe"		"1"
        "name"        "Counter-Strike 2"
	"StateFlags"		"4"
	"installdir"		"Counter-Strike Global Offensive"
}
`

const sampleLibraryXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<gamesList>
	<steamID64>76561197960287930</steamID64>
	<steamID><![CDATA[gabe]]></steamID>
	<games>
		<game>
			<appID>440</appID>
			<name><![CDATA[Team Fortress 2 (remote)]]></name>
		</game>
		<game>
			<appID>620</appID>
			<name><![CDATA[Portal 2]]></name>
		</game>
	</games>
</gamesList>
`

const privateProfileXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<response><error><![CDATA[This profile is private.]]></error></response>`

func writeManifest(t *testing.T, root string, id uint64, body string) {
	t.Helper()
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(catalog.ManifestPath(root, id), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

func nameManifest(name string) string {
	return "\"AppState\"\n{\n\t\"name\"\t\t\"" + name + "\"\n}\n"
}

// fakeFetcher counts calls and returns a fixed library or error.
type fakeFetcher struct {
	lib   *catalog.Library
	err   error
	calls int
}

func (f *fakeFetcher) FetchLibrary(ctx context.Context, account steam.AccountID) (*catalog.Library, error) {
	f.calls++
	return f.lib, f.err
}

// --- Manifest parsing ---

func TestParseManifestName_QuotedToken(t *testing.T) {
	got, err := catalog.ParseManifestName(strings.NewReader(cs2Manifest))
	if err != nil {
		t.Fatalf("ParseManifestName: %v", err)
	}
	if got != "Counter-Strike 2" {
		t.Errorf("name = %q, want %q", got, "Counter-Strike 2")
	}
}

func TestParseManifestName_NoName(t *testing.T) {
	_, err := catalog.ParseManifestName(strings.NewReader("\"AppState\"\n{\n\t\"appid\"\t\"1\"\n}\n"))
	if !errors.Is(err, catalog.ErrNoName) {
		t.Errorf("err = %v, want ErrNoName", err)
	}
}

func TestParseManifestName_Malformed(t *testing.T) {
	_, err := catalog.ParseManifestName(strings.NewReader("\t\"name\"\n"))
	if !errors.Is(err, catalog.ErrMalformedManifest) {
		t.Errorf("err = %v, want ErrMalformedManifest", err)
	}
}

func TestManifestPath(t *testing.T) {
	got := catalog.ManifestPath("/lib/steamapps", 730)
	want := filepath.Join("/lib/steamapps", "appmanifest_730.acf")
	if got != want {
		t.Errorf("ManifestPath = %q, want %q", got, want)
	}
}

func TestCountManifests(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, 440, nameManifest("Team Fortress 2"))
	writeManifest(t, root, 730, cs2Manifest)
	if got := catalog.CountManifests(root); got != 2 {
		t.Errorf("CountManifests = %d, want 2", got)
	}
}

// --- Library XML ---

func TestParseLibrary(t *testing.T) {
	lib, err := catalog.ParseLibrary([]byte(sampleLibraryXML))
	if err != nil {
		t.Fatalf("ParseLibrary: %v", err)
	}
	if len(lib.Games) != 2 {
		t.Fatalf("games = %d, want 2", len(lib.Games))
	}
	if lib.SteamID != "gabe" {
		t.Errorf("SteamID = %q", lib.SteamID)
	}
	g := lib.Find(620)
	if g == nil || g.Name != "Portal 2" {
		t.Errorf("Find(620) = %+v", g)
	}
	if lib.Find(1) != nil {
		t.Error("Find(1) should be nil")
	}
}

func TestParseLibrary_PrivateProfile(t *testing.T) {
	_, err := catalog.ParseLibrary([]byte(privateProfileXML))
	if !errors.Is(err, catalog.ErrPrivateProfile) {
		t.Errorf("err = %v, want ErrPrivateProfile", err)
	}
}

func TestParseLibrary_Malformed(t *testing.T) {
	if _, err := catalog.ParseLibrary([]byte("<gamesList><games><game>")); err == nil {
		t.Error("expected error for truncated XML")
	}
	if _, err := catalog.ParseLibrary([]byte("<html><body>busy</body></html>")); err == nil {
		t.Error("expected error for unexpected root element")
	}
}

func TestLibraryFind_Nil(t *testing.T) {
	var lib *catalog.Library
	if lib.Find(440) != nil {
		t.Error("Find on nil library should return nil")
	}
}

// --- ProfileClient ---

func TestProfileClient_FetchLibrary(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(sampleLibraryXML))
	}))
	defer srv.Close()

	c := catalog.NewProfileClient(srv.URL+"/", time.Second)
	lib, err := c.FetchLibrary(context.Background(), 22202)
	if err != nil {
		t.Fatalf("FetchLibrary: %v", err)
	}
	if gotPath != "/profiles/[U:1:22202]/games" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery != "xml=1" {
		t.Errorf("query = %q", gotQuery)
	}
	if len(lib.Games) != 2 {
		t.Errorf("games = %d, want 2", len(lib.Games))
	}
}

func TestProfileClient_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := catalog.NewProfileClient(srv.URL, time.Second)
	if _, err := c.FetchLibrary(context.Background(), 1); err == nil {
		t.Error("expected error for 429 status")
	}
}

func TestProfileClient_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<gamesList><games>"))
	}))
	defer srv.Close()

	c := catalog.NewProfileClient(srv.URL, time.Second)
	if _, err := c.FetchLibrary(context.Background(), 1); err == nil {
		t.Error("expected error for malformed XML")
	}
}

// --- Resolver ---

func TestResolve_LocalManifest(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, 730, cs2Manifest)

	r := &catalog.Resolver{Roots: []string{root}}
	g, src, ok := r.NewPass().Resolve(context.Background(), 730)
	if !ok {
		t.Fatal("Resolve(730) not found")
	}
	if g.Name != "Counter-Strike 2" || src != catalog.SourceLocal {
		t.Errorf("Resolve(730) = %+v from %s", g, src)
	}
}

func TestResolve_SecondRoot(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	writeManifest(t, second, 620, nameManifest("Portal 2"))

	r := &catalog.Resolver{Roots: []string{first, second}}
	g, _, ok := r.NewPass().Resolve(context.Background(), 620)
	if !ok || g.Name != "Portal 2" {
		t.Errorf("Resolve(620) = %+v, %v", g, ok)
	}
}

func TestResolve_BrokenManifestFallsThrough(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	writeManifest(t, first, 620, "\"AppState\"\n{\n}\n")
	writeManifest(t, second, 620, nameManifest("Portal 2"))

	r := &catalog.Resolver{Roots: []string{first, second}}
	g, _, ok := r.NewPass().Resolve(context.Background(), 620)
	if !ok || g.Name != "Portal 2" {
		t.Errorf("Resolve(620) = %+v, %v", g, ok)
	}
}

func TestResolve_LocalBeatsRemote(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, 440, nameManifest("Team Fortress 2"))
	lib, _ := catalog.ParseLibrary([]byte(sampleLibraryXML))
	f := &fakeFetcher{lib: lib}

	r := &catalog.Resolver{Roots: []string{root}, Account: 9, Remote: f}
	g, src, ok := r.NewPass().Resolve(context.Background(), 440)
	if !ok {
		t.Fatal("Resolve(440) not found")
	}
	if g.Name != "Team Fortress 2" || src != catalog.SourceLocal {
		t.Errorf("Resolve(440) = %q from %s, want local Team Fortress 2", g.Name, src)
	}
	if f.calls != 0 {
		t.Errorf("remote fetched %d times for a local hit", f.calls)
	}
}

func TestResolve_RemoteFallbackFetchesOnce(t *testing.T) {
	lib, _ := catalog.ParseLibrary([]byte(sampleLibraryXML))
	f := &fakeFetcher{lib: lib}
	r := &catalog.Resolver{Roots: []string{t.TempDir()}, Account: 9, Remote: f}

	pass := r.NewPass()
	for _, id := range []uint64{620, 440, 999} {
		pass.Resolve(context.Background(), id)
	}
	if f.calls != 1 {
		t.Errorf("remote fetched %d times in one pass, want 1", f.calls)
	}
	if pass.Fetches() != 1 {
		t.Errorf("Fetches = %d, want 1", pass.Fetches())
	}

	g, src, ok := pass.Resolve(context.Background(), 620)
	if !ok || g.Name != "Portal 2" || src != catalog.SourceRemote {
		t.Errorf("Resolve(620) = %+v from %s", g, src)
	}

	r.NewPass().Resolve(context.Background(), 620)
	if f.calls != 2 {
		t.Errorf("a new pass should refetch, calls = %d", f.calls)
	}
}

func TestResolve_RemoteErrorNotRetried(t *testing.T) {
	f := &fakeFetcher{err: errors.New("network down")}
	r := &catalog.Resolver{Account: 9, Remote: f}

	pass := r.NewPass()
	if _, _, ok := pass.Resolve(context.Background(), 620); ok {
		t.Error("Resolve should fail when remote errors")
	}
	pass.Resolve(context.Background(), 621)
	if f.calls != 1 {
		t.Errorf("calls = %d, want 1", f.calls)
	}
	if pass.RemoteErr() == nil {
		t.Error("RemoteErr should report the fetch failure")
	}
}

func TestResolve_NoAccountSkipsRemote(t *testing.T) {
	f := &fakeFetcher{}
	r := &catalog.Resolver{Remote: f}
	if _, _, ok := r.NewPass().Resolve(context.Background(), 620); ok {
		t.Error("Resolve should fail without account")
	}
	if f.calls != 0 {
		t.Errorf("calls = %d, want 0 without an account", f.calls)
	}
}
