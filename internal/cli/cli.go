// Package cli implements the seqmap command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/seqmap/pkg/buildinfo"
	"github.com/matzehuels/seqmap/pkg/cache"
	"github.com/matzehuels/seqmap/pkg/config"
	"github.com/matzehuels/seqmap/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "seqmap"
)

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

	// ConfigPath overrides the config file location. Empty means the XDG
	// default.
	ConfigPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "seqmap lays out annotated DNA sequences as circular and linear maps",
		Long:         `seqmap computes circular and linear maps of annotated DNA sequences: feature rows, wrapped blocks, arcs and selections, rendered to SVG, PDF, PNG or JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default: ~/.config/seqmap/config.toml)")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig reads the config file, falling back to defaults when it does
// not exist.
func (c *CLI) loadConfig() (config.Config, error) {
	path := c.ConfigPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Default(), nil
		}
		path = p
	}
	return config.Load(path)
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(cfg config.Config, noCache bool) (*pipeline.Runner, error) {
	cc, err := newCache(cfg.Cache, noCache)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("cache ready", "backend", backendName(cfg.Cache, noCache), "prefix", cfg.Cache.KeyPrefix)

	var keyer cache.Keyer
	if cfg.Cache.KeyPrefix != "" {
		keyer = cache.NewScopedKeyer(nil, cfg.Cache.KeyPrefix)
	}
	r := pipeline.NewRunner(cc, keyer, c.Logger)
	if cfg.Cache.TTL.Duration > 0 {
		r.LayoutTTL = cfg.Cache.TTL.Duration
	}
	return r, nil
}

func newCache(cfg config.Cache, noCache bool) (cache.Cache, error) {
	switch backendName(cfg, noCache) {
	case config.BackendNone:
		return cache.NewNullCache(), nil
	case config.BackendRedis:
		return cache.NewRedisCache(cfg.RedisURL)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

func backendName(cfg config.Cache, noCache bool) string {
	if noCache {
		return config.BackendNone
	}
	return cfg.Backend
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/seqmap/).
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

// =============================================================================
// Options Helpers
// =============================================================================

// viewportFlags are the layout flags shared by layout, render and view.
type viewportFlags struct {
	width        float64
	height       float64
	zoomLinear   int
	zoomCircular int
	lineHeight   float64
	kinds        string
}

func (f *viewportFlags) register(cmd *cobra.Command) {
	d := config.Default().Viewport
	cmd.Flags().Float64Var(&f.width, "width", d.Width, "viewport width")
	cmd.Flags().Float64Var(&f.height, "height", d.Height, "viewport height")
	cmd.Flags().IntVar(&f.zoomLinear, "zoom", d.ZoomLinear, "linear zoom (0-100)")
	cmd.Flags().IntVar(&f.zoomCircular, "zoom-circular", d.ZoomCircular, "circular zoom (0-100)")
	cmd.Flags().Float64Var(&f.lineHeight, "line-height", d.LineHeight, "height of one feature row")
	cmd.Flags().StringVar(&f.kinds, "kinds", "", "feature kinds to lay out (comma-separated, default: all)")
	_ = cmd.RegisterFlagCompletionFunc("kinds", completeList(kindNames()))
}

// options seeds pipeline options from the config file and overrides them
// with every flag the user set explicitly.
func (f *viewportFlags) options(cmd *cobra.Command, cfg config.Config) pipeline.Options {
	v := cfg.Viewport
	opts := pipeline.Options{
		Width:        v.Width,
		Height:       v.Height,
		ZoomLinear:   v.ZoomLinear,
		ZoomCircular: v.ZoomCircular,
		LineHeight:   v.LineHeight,
		Kinds:        parseList(f.kinds),
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		opts.Width = f.width
	}
	if flags.Changed("height") {
		opts.Height = f.height
	}
	if flags.Changed("zoom") {
		opts.ZoomLinear = f.zoomLinear
	}
	if flags.Changed("zoom-circular") {
		opts.ZoomCircular = f.zoomCircular
	}
	if flags.Changed("line-height") {
		opts.LineHeight = f.lineHeight
	}
	return opts
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// parseList splits a comma-separated flag, dropping empty items.
func parseList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
