package config

import "time"

// Config is the top-level shotshelf configuration.
type Config struct {
	ScreenshotsDir string       `mapstructure:"screenshots_dir" yaml:"screenshots_dir"`
	Steam          SteamConfig  `mapstructure:"steam" yaml:"steam"`
	Watch          WatchConfig  `mapstructure:"watch" yaml:"watch"`
	Log            LogConfig    `mapstructure:"log" yaml:"log"`
	Update         UpdateConfig `mapstructure:"update" yaml:"update"`
}

// SteamConfig locates the Steam installation and the account library.
type SteamConfig struct {
	Root        string        `mapstructure:"root" yaml:"root"`
	LibraryDirs []string      `mapstructure:"library_dirs" yaml:"library_dirs"`
	AccountID   uint64        `mapstructure:"account_id" yaml:"account_id"`
	ProfileBase string        `mapstructure:"profile_base" yaml:"profile_base"`
	Remote      bool          `mapstructure:"remote" yaml:"remote"`
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// WatchConfig tunes the watch loop.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// LogConfig controls log level and the optional rotated log file.
type LogConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	File       string `mapstructure:"file" yaml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// UpdateConfig points the self-updater at a GitHub repository.
type UpdateConfig struct {
	Owner    string `mapstructure:"owner" yaml:"owner"`
	Repo     string `mapstructure:"repo" yaml:"repo"`
	APIBase  string `mapstructure:"api_base" yaml:"api_base"`
	TokenEnv string `mapstructure:"token_env" yaml:"token_env"`
	Token    string `mapstructure:"-" yaml:"-"` // resolved at runtime, never written
}

// Default returns the configuration used when no file or env overrides exist.
func Default() Config {
	return Config{
		Steam: SteamConfig{
			LibraryDirs: []string{},
			ProfileBase: "https://steamcommunity.com",
			Remote:      true,
			Timeout:     30 * time.Second,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Update: UpdateConfig{
			Owner:    "blackwell-systems",
			Repo:     "shotshelf",
			APIBase:  "https://api.github.com",
			TokenEnv: "GITHUB_TOKEN",
		},
	}
}

// Account returns the configured account ID and whether one was set.
func (s SteamConfig) Account() (uint64, bool) {
	return s.AccountID, s.AccountID != 0
}
