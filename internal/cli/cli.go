// Package cli implements the metgallery command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/metgallery/internal/config"
	"github.com/matzehuels/metgallery/pkg/buildinfo"
	"github.com/matzehuels/metgallery/pkg/cache"
	"github.com/matzehuels/metgallery/pkg/gallery"
	"github.com/matzehuels/metgallery/pkg/integrations/met"
	"github.com/matzehuels/metgallery/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "metgallery"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	cfg        config.Config
	configPath string
	noCache    bool
	refresh    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level. At debug level the HTTP, cache
// and gallery hooks are routed to the logger as well.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		hooks := observability.NewLogHooks(c.Logger)
		observability.SetHTTPHooks(hooks)
		observability.SetCacheHooks(hooks)
		observability.SetGalleryHooks(hooks)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Browse The Met's open-access collection",
		Long:         `metgallery searches The Metropolitan Museum of Art's public collection API, lists the artists it holds and finds their works.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/metgallery/config.toml)")
	flags.BoolVar(&c.noCache, "no-cache", false, "disable the response cache")
	flags.BoolVar(&c.refresh, "refresh", false, "ignore cached responses and fetch again")

	root.AddCommand(c.featuredCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.objectCommand())
	root.AddCommand(c.departmentsCommand())
	root.AddCommand(c.artistsCommand())
	root.AddCommand(c.worksCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.noCache {
		cfg.Cache.Backend = config.BackendNone
	}
	c.cfg = cfg
	c.Logger.Debug("config loaded", "base_url", cfg.BaseURL, "cache", cfg.Cache.Backend)
	return nil
}

// =============================================================================
// Gallery Factory
// =============================================================================

// galleryEnv bundles the client and gallery services for one command.
type galleryEnv struct {
	client   *met.Client
	coll     *gallery.Collection
	resolver *gallery.Resolver
	cache    cache.Cache
}

// newGallery wires a collection client to the configured cache.
// Callers must Close the result.
func (c *CLI) newGallery(ctx context.Context) (*galleryEnv, error) {
	backend, err := newCache(ctx, c.cfg.Cache)
	if err != nil {
		return nil, err
	}
	client := met.NewClient(backend, c.cfg.MetOptions(buildinfo.UserAgent()))
	coll := gallery.NewCollection(client, c.Logger).WithRefresh(c.refresh)
	return &galleryEnv{
		client:   client,
		coll:     coll,
		resolver: gallery.NewResolver(coll, c.cfg.ResolverOptions()),
		cache:    backend,
	}, nil
}

func (g *galleryEnv) Close() error {
	return g.cache.Close()
}

func newCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: cfg.RedisAddr, Prefix: appName + ":"})
	}

	dir := cfg.Dir
	if dir == "" {
		d, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		dir = d
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/metgallery/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
