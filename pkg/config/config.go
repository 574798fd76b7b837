// Package config loads seqmap settings from a TOML file.
//
// Every field has a default (see [Default]) so a missing file, or a file
// that sets only a few keys, is valid:
//
//	[viewport]
//	width = 800
//	height = 600
//	zoom_linear = 50
//	zoom_circular = 0
//	line_height = 14
//
//	[cache]
//	backend = "file"    # file | redis | none
//	redis_url = "redis://localhost:6379/0"
//	ttl = "24h"         # how long layouts are kept
//	key_prefix = ""     # e.g. "staging:"
//
//	[server]
//	addr = ":8080"
//
// Command-line flags override file values.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/seqmap/pkg/errors"
	"github.com/matzehuels/seqmap/pkg/render/linear"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the decoded configuration.
type Config struct {
	Viewport Viewport `toml:"viewport"`
	Cache    Cache    `toml:"cache"`
	Server   Server   `toml:"server"`
}

// Viewport sizes both projections.
type Viewport struct {
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	ZoomLinear   int     `toml:"zoom_linear"`
	ZoomCircular int     `toml:"zoom_circular"`
	LineHeight   float64 `toml:"line_height"`
}

// CharWidth returns the base width for the linear zoom level.
func (v Viewport) CharWidth() float64 { return linear.CharWidth(v.ZoomLinear) }

// Cache selects where computed layouts are kept.
type Cache struct {
	Backend  string   `toml:"backend"`
	RedisURL string   `toml:"redis_url"`
	TTL      Duration `toml:"ttl"`
	// KeyPrefix namespaces keys when several deployments share one Redis.
	KeyPrefix string `toml:"key_prefix"`
}

// Server configures `seqmap serve`.
type Server struct {
	Addr string `toml:"addr"`
}

// Duration is a time.Duration decoded from a string such as "90m".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Viewport: Viewport{Width: 800, Height: 600, ZoomLinear: 50, LineHeight: 14},
		Cache:    Cache{Backend: BackendFile, RedisURL: "redis://localhost:6379/0", TTL: Duration{24 * time.Hour}},
		Server:   Server{Addr: ":8080"},
	}
}

// Load overlays the TOML file at path on [Default] and validates the
// result. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %s", path, undecoded[0])
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	v := c.Viewport
	if err := errors.ValidateViewport(v.Width, v.Height, v.CharWidth()); err != nil {
		return err
	}
	if v.ZoomLinear < 0 || v.ZoomLinear > 100 || v.ZoomCircular < 0 || v.ZoomCircular > 100 {
		return errors.New(errors.ErrCodeInvalidConfig, "zoom must be within 0..100")
	}
	if v.LineHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "line_height must be positive")
	}
	switch c.Cache.Backend {
	case BackendFile, BackendNone:
	case BackendRedis:
		if c.Cache.RedisURL == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "redis backend needs redis_url")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "negative cache ttl")
	}
	return nil
}

// DefaultPath returns the XDG config location (~/.config/seqmap/config.toml).
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, "seqmap", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "seqmap", "config.toml"), nil
}
