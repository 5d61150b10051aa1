package catalog

// Game is one identifier→name record from either catalog source.
type Game struct {
	AppID uint64 `xml:"appID" json:"app_id"`
	Name  string `xml:"name" json:"name"`
}

// Library is the set of games attached to an account's public profile.
type Library struct {
	SteamID string `xml:"steamID"`
	Games   []Game `xml:"games>game"`
}

// Find returns the game with the given app ID, or nil.
func (l *Library) Find(appID uint64) *Game {
	if l == nil {
		return nil
	}
	for i := range l.Games {
		if l.Games[i].AppID == appID {
			return &l.Games[i]
		}
	}
	return nil
}

// Source says which catalog produced a resolved name.
type Source string

const (
	SourceLocal  Source = "local"
	SourceRemote Source = "remote"
)
