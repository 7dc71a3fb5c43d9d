// Package config loads metgallery settings.
//
// Settings are layered: built-in defaults, then the TOML file, then
// METGALLERY_* environment variables. Command-line flags are applied last by
// the CLI.
//
// Example config.toml:
//
//	base_url   = "https://collectionapi.metmuseum.org/public/collection/v1"
//	timeout    = "15s"
//	retries    = 2
//	rate_limit = 20.0
//
//	[cache]
//	backend = "redis"
//	ttl     = "24h"
//	redis_addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
//
//	[resolver]
//	max_results = 50
//	threshold   = 0.7
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/metgallery/pkg/errors"
	"github.com/matzehuels/metgallery/pkg/gallery"
	"github.com/matzehuels/metgallery/pkg/integrations"
	"github.com/matzehuels/metgallery/pkg/integrations/met"
)

const (
	appName  = "metgallery"
	fileName = "config.toml"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "METGALLERY_"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config holds every setting.
type Config struct {
	BaseURL   string         `toml:"base_url"`
	Timeout   time.Duration  `toml:"timeout"`
	Retries   int            `toml:"retries"`
	RateLimit float64        `toml:"rate_limit"` // requests per second, 0 = off
	Cache     CacheConfig    `toml:"cache"`
	Server    ServerConfig   `toml:"server"`
	Resolver  ResolverConfig `toml:"resolver"`
}

// CacheConfig selects and configures the response cache.
type CacheConfig struct {
	Backend   string        `toml:"backend"` // file, redis or none
	Dir       string        `toml:"dir"`     // file backend; empty = XDG cache dir
	TTL       time.Duration `toml:"ttl"`
	RedisAddr string        `toml:"redis_addr"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// ResolverConfig tunes artist resolution.
type ResolverConfig struct {
	MaxResults int     `toml:"max_results"`
	Threshold  float64 `toml:"threshold"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		BaseURL: met.DefaultBaseURL,
		Timeout: integrations.DefaultTimeout,
		Cache: CacheConfig{
			Backend: BackendFile,
			TTL:     24 * time.Hour,
		},
		Server: ServerConfig{Addr: ":8080"},
		Resolver: ResolverConfig{
			MaxResults: gallery.DefaultMaxResults,
			Threshold:  gallery.DefaultMatchThreshold,
		},
	}
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/metgallery/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads settings from path and the environment. An empty path means
// [DefaultPath], which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, applyAndValidate(&cfg)
		}
		path = p
	}

	if err := cfg.decodeFile(path); err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, applyAndValidate(&cfg)
		}
		return cfg, err
	}
	return cfg, applyAndValidate(&cfg)
}

func applyAndValidate(cfg *Config) error {
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}
	return cfg.Validate()
}

func (c *Config) decodeFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidInput, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnv overrides settings from METGALLERY_* variables read through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	str("BASE_URL", &c.BaseURL)
	str("CACHE_BACKEND", &c.Cache.Backend)
	str("CACHE_DIR", &c.Cache.Dir)
	str("REDIS_ADDR", &c.Cache.RedisAddr)
	str("SERVER_ADDR", &c.Server.Addr)

	for name, dst := range map[string]*time.Duration{
		"TIMEOUT":   &c.Timeout,
		"CACHE_TTL": &c.Cache.TTL,
	} {
		if v, ok := lookup(EnvPrefix + name); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				return envError(name, v, err)
			}
			*dst = d
		}
	}

	if v, ok := lookup(EnvPrefix + "RETRIES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError("RETRIES", v, err)
		}
		c.Retries = n
	}
	if v, ok := lookup(EnvPrefix + "RATE_LIMIT"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return envError("RATE_LIMIT", v, err)
		}
		c.RateLimit = f
	}
	return nil
}

func envError(name, value string, err error) error {
	return errors.Wrap(errors.ErrCodeInvalidInput, err, "%s%s=%q", EnvPrefix, name, value)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if err := errors.ValidateURL(c.BaseURL); err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if c.Timeout < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "timeout must not be negative")
	}
	if c.Retries < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "retries must not be negative")
	}
	if c.RateLimit < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "rate_limit must not be negative")
	}
	switch c.Cache.Backend {
	case BackendFile, BackendNone:
	case BackendRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New(errors.ErrCodeInvalidInput, "cache.redis_addr is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q (want file, redis or none)", c.Cache.Backend)
	}
	if t := c.Resolver.Threshold; t < 0 || t > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "resolver.threshold must be within [0, 1]")
	}
	return nil
}

// MetOptions returns the collection client settings.
func (c *Config) MetOptions(userAgent string) met.Options {
	return met.Options{
		BaseURL:   c.BaseURL,
		CacheTTL:  c.Cache.TTL,
		Timeout:   c.Timeout,
		Retries:   c.Retries,
		RateLimit: c.RateLimit,
		UserAgent: userAgent,
	}
}

// ResolverOptions returns the resolver settings.
func (c *Config) ResolverOptions() gallery.ResolverOptions {
	return gallery.ResolverOptions{
		MaxResults: c.Resolver.MaxResults,
		Matcher:    gallery.Matcher{Threshold: c.Resolver.Threshold},
	}
}
