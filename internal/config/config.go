package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const appName = "shotshelf"

// DefaultPath returns the default config file path.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, appName, "config.yml")
}

// StateDir holds runtime files that are not configuration: the watch lock
// and the default background log.
func StateDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, appName)
}

// ResolvePath picks the config file path: explicit flag, then
// SHOTSHELF_CONFIG, then the default location.
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return ExpandHome(flagPath)
	}
	if env := os.Getenv("SHOTSHELF_CONFIG"); env != "" {
		return ExpandHome(env)
	}
	return DefaultPath()
}

// Load reads the config at path (or env). A missing file is not an error;
// defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix("SHOTSHELF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	tokenEnv := cfg.Update.TokenEnv
	if tokenEnv == "" {
		tokenEnv = "GITHUB_TOKEN"
	}
	cfg.Update.Token = os.Getenv(tokenEnv)
	if cfg.Update.Token == "" {
		cfg.Update.Token = os.Getenv("SHOTSHELF_GITHUB_TOKEN")
	}

	cfg.ScreenshotsDir = ExpandHome(cfg.ScreenshotsDir)
	cfg.Steam.Root = ExpandHome(cfg.Steam.Root)
	for i, dir := range cfg.Steam.LibraryDirs {
		cfg.Steam.LibraryDirs[i] = ExpandHome(dir)
	}
	cfg.Log.File = ExpandHome(cfg.Log.File)

	return &cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("screenshots_dir", d.ScreenshotsDir)
	v.SetDefault("steam.root", d.Steam.Root)
	v.SetDefault("steam.library_dirs", d.Steam.LibraryDirs)
	v.SetDefault("steam.account_id", d.Steam.AccountID)
	v.SetDefault("steam.profile_base", d.Steam.ProfileBase)
	v.SetDefault("steam.remote", d.Steam.Remote)
	v.SetDefault("steam.timeout", d.Steam.Timeout)
	v.SetDefault("watch.debounce", d.Watch.Debounce)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)
	v.SetDefault("log.compress", d.Log.Compress)
	v.SetDefault("update.owner", d.Update.Owner)
	v.SetDefault("update.repo", d.Update.Repo)
	v.SetDefault("update.api_base", d.Update.APIBase)
	v.SetDefault("update.token_env", d.Update.TokenEnv)
}

// Save writes the config as YAML to path, creating parent directories.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Encode(f, cfg)
}

// Encode writes cfg as indented YAML.
func Encode(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
