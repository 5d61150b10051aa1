package catalog

import (
	"context"
	"errors"
	"io/fs"

	"github.com/charmbracelet/log"

	"github.com/blackwell-systems/shotshelf/internal/logging"
	"github.com/blackwell-systems/shotshelf/internal/steam"
)

// Resolver maps app IDs to display names. Local manifests win; the remote
// profile library is consulted only when no manifest matches.
type Resolver struct {
	// Roots are steamapps directories searched in order.
	Roots []string
	// Account enables remote lookup when nonzero.
	Account steam.AccountID
	// Remote may be nil to disable remote lookup.
	Remote LibraryFetcher
	Log    *log.Logger
}

// NewPass starts a resolution pass. The remote library is fetched at most
// once per pass and dropped with it.
func (r *Resolver) NewPass() *Pass {
	return &Pass{r: r, log: logging.OrDiscard(r.Log)}
}

// Pass holds the state of one organizing pass.
type Pass struct {
	r   *Resolver
	log *log.Logger

	fetched  bool
	fetches  int
	library  *Library
	fetchErr error
}

// Resolve returns the game for appID and which catalog supplied it.
func (p *Pass) Resolve(ctx context.Context, appID uint64) (Game, Source, bool) {
	if name, ok := p.local(appID); ok {
		return Game{AppID: appID, Name: name}, SourceLocal, true
	}
	lib := p.remote(ctx)
	if g := lib.Find(appID); g != nil {
		return *g, SourceRemote, true
	}
	return Game{}, "", false
}

// Fetches reports how many remote fetches this pass performed (0 or 1).
func (p *Pass) Fetches() int { return p.fetches }

// RemoteErr is the error from this pass's remote fetch, if any.
func (p *Pass) RemoteErr() error { return p.fetchErr }

func (p *Pass) local(appID uint64) (string, bool) {
	for _, root := range p.r.Roots {
		path := ManifestPath(root, appID)
		name, err := ReadManifestName(path)
		if err == nil && name != "" {
			p.log.Debug("manifest match", "app_id", appID, "manifest", path)
			return name, true
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			p.log.Warn("unreadable manifest", "manifest", path, "err", err)
		}
	}
	return "", false
}

func (p *Pass) remote(ctx context.Context) *Library {
	if p.fetched {
		return p.library
	}
	p.fetched = true
	if p.r.Remote == nil || p.r.Account == 0 {
		return nil
	}

	p.fetches++
	p.log.Debug("fetching profile library", "account", p.r.Account.ID3())
	lib, err := p.r.Remote.FetchLibrary(ctx, p.r.Account)
	if err != nil {
		p.fetchErr = err
		p.log.Warn("remote library unavailable", "account", p.r.Account.ID3(), "err", err)
		return nil
	}
	p.library = lib
	p.log.Debug("profile library loaded", "games", len(lib.Games))
	return lib
}
