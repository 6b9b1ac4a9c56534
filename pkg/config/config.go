// Package config loads exhibitboard settings from TOML.
//
// A config file overrides any subset of the defaults:
//
//	[grid]
//	columns = 12
//	min_width = 6
//
//	[export]
//	title = "Quarterly Review"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "cache.internal:6379"
//	ttl = "6h"
//
//	[[palette]]
//	id = "kpi"
//	kind = "table"
//	title = "KPIs"
//
// Keys missing from the file keep their default values.
package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/exhibitboard/pkg/errors"
	"github.com/matzehuels/exhibitboard/pkg/exhibit"
	"github.com/matzehuels/exhibitboard/pkg/export"
	"github.com/matzehuels/exhibitboard/pkg/grid"
)

// AppName names the config and cache directories.
const AppName = "exhibitboard"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the full application configuration.
type Config struct {
	Grid    grid.Config       `toml:"grid"`
	Export  export.PageConfig `toml:"export"`
	Cache   CacheConfig       `toml:"cache"`
	Preview PreviewConfig     `toml:"preview"`
	Palette []exhibit.Exhibit `toml:"palette"`
}

// CacheConfig selects and configures the artifact cache.
type CacheConfig struct {
	Backend   string        `toml:"backend"`
	Dir       string        `toml:"dir"`
	RedisAddr string        `toml:"redis_addr"`
	TTL       time.Duration `toml:"ttl"`
}

// PreviewConfig configures the preview server.
type PreviewConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid:   grid.DefaultConfig(),
		Export: export.DefaultPageConfig(),
		Cache: CacheConfig{
			Backend:   BackendFile,
			RedisAddr: "localhost:6379",
			TTL:       24 * time.Hour,
		},
		Preview: PreviewConfig{Addr: ":8080"},
	}
}

// Load reads path over the defaults and validates the result. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "read config %s", path)
	}
	return parse(cfg, data, path)
}

// LoadDefault loads the config at [DefaultPath] when it exists and falls
// back to the defaults otherwise.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return Default(), nil
	}
	return Load(path)
}

// Parse decodes TOML text over the defaults.
func Parse(data []byte) (Config, error) {
	return parse(Default(), data, "config")
}

func parse(cfg Config, data []byte, name string) (Config, error) {
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse %s", name)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidDocument, "%s: unknown key %q", name, undecoded[0].String())
	}
	cfg.Export.Columns = cfg.Grid.Columns
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(errors.GetCode(err), err, "%s", name)
	}
	return cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return err
	}
	if err := c.Export.Validate(); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "cache backend must be file, redis or none, got %q", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache ttl cannot be negative")
	}
	if c.Preview.Addr == "" {
		return errors.New(errors.ErrCodeInvalidInput, "preview addr cannot be empty")
	}
	if len(c.Palette) > 0 {
		if _, err := exhibit.NewCatalog(c.Palette...); err != nil {
			return err
		}
	}
	return nil
}

// Catalog returns the configured palette, or the built-in one when the
// config defines none.
func (c Config) Catalog() *exhibit.Catalog {
	if len(c.Palette) == 0 {
		return exhibit.DefaultCatalog()
	}
	cat, err := exhibit.NewCatalog(c.Palette...)
	if err != nil {
		return exhibit.DefaultCatalog()
	}
	return cat
}

// CacheDir returns the configured cache directory or the XDG default.
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	return CacheDir()
}

// DefaultPath returns $XDG_CONFIG_HOME/exhibitboard/config.toml, falling back
// to ~/.config.
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// CacheDir returns $XDG_CACHE_HOME/exhibitboard, falling back to ~/.cache.
func CacheDir() (string, error) {
	if home := os.Getenv("XDG_CACHE_HOME"); home != "" {
		return filepath.Join(home, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}

// Encode writes cfg as TOML.
func Encode(cfg Config, w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}
