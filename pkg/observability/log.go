package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements every hook interface by writing debug-level log lines.
// The CLI registers it when --verbose is set.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnResolveStart(_ context.Context, artist string) {
	h.logger.Debug("resolving artist", "artist", artist)
}

func (h *LogHooks) OnResolveComplete(_ context.Context, artist string, matches int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("artist resolution failed", "artist", artist, "err", err)
		return
	}
	h.logger.Debug("artist resolved", "artist", artist, "matches", matches, "took", d.Round(time.Millisecond))
}

func (h *LogHooks) OnCatalogLoadStart(context.Context) {
	h.logger.Debug("loading artist catalog")
}

func (h *LogHooks) OnCatalogLoadComplete(_ context.Context, artists int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("artist catalog failed", "err", err)
		return
	}
	h.logger.Debug("artist catalog loaded", "artists", artists, "took", d.Round(time.Millisecond))
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("request", "method", method, "host", host, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", status, "took", d.Round(time.Millisecond))
}

func (h *LogHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("request failed", "method", method, "host", host, "path", path, "err", err)
}

var (
	_ GalleryHooks = (*LogHooks)(nil)
	_ CacheHooks   = (*LogHooks)(nil)
	_ HTTPHooks    = (*LogHooks)(nil)
)
