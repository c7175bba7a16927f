// Package cleanup sweeps stale leftovers on an interval: extracted
// upload directories that outlived their retention window and, for
// the in-memory session store, expired sessions.
package cleanup

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// uploadPrefix matches the temp directories the structure analyzer
// creates under the upload dir.
const uploadPrefix = "docgen-"

// Sweeper is an optional hook for stores that need periodic expiry,
// like the in-memory session store.
type Sweeper interface {
	Sweep() int
}

// Cleaner handles periodic cleanup of stale upload directories
type Cleaner struct {
	uploadDir string
	retention time.Duration
	interval  time.Duration
	sweeper   Sweeper
}

// NewCleaner creates a new cleanup worker. sweeper may be nil.
func NewCleaner(uploadDir string, retention, interval time.Duration, sweeper Sweeper) *Cleaner {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	if retention <= 0 {
		retention = time.Hour
	}

	return &Cleaner{
		uploadDir: uploadDir,
		retention: retention,
		interval:  interval,
		sweeper:   sweeper,
	}
}

// Start begins the cleanup worker in a goroutine
func (c *Cleaner) Start(ctx context.Context) {
	go c.run(ctx)
}

// run is the main loop for the cleanup worker
func (c *Cleaner) run(ctx context.Context) {
	slog.Info("cleanup worker started", "interval", c.interval, "retention", c.retention)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	// Run immediately on start
	c.cleanup()

	for {
		select {
		case <-ctx.Done():
			slog.Info("cleanup worker stopped")
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

// cleanup runs one sweep cycle
func (c *Cleaner) cleanup() {
	slog.Debug("running cleanup cycle")

	removed := c.sweepUploads()
	if removed > 0 {
		slog.Info("stale upload directories removed", "count", removed)
	}

	if c.sweeper != nil {
		if expired := c.sweeper.Sweep(); expired > 0 {
			slog.Info("expired sessions removed", "count", expired)
		}
	}
}

// sweepUploads removes extraction directories older than the
// retention window
func (c *Cleaner) sweepUploads() int {
	entries, err := os.ReadDir(c.uploadDir)
	if err != nil {
		slog.Error("failed to read upload directory", "dir", c.uploadDir, "error", err)
		return 0
	}

	cutoff := time.Now().Add(-c.retention)
	removed := 0

	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), uploadPrefix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(c.uploadDir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			slog.Warn("failed to remove stale upload directory", "path", path, "error", err)
			continue
		}
		removed++
	}

	return removed
}
