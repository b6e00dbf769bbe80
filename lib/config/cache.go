// Copyright 2026 The HybridBar Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"log/slog"
	"os"
	"sync"
)

// Cache holds the single in-memory configuration document behind a
// many-reader/single-writer lock. Construct one with New and share it
// by handle; components take the Cache as an explicit dependency
// rather than reaching for package-level state.
type Cache struct {
	logger *slog.Logger

	mu  sync.RWMutex
	doc document
}

// New returns an empty Cache. Lookups report absence until the first
// Refresh populates the document. A nil logger falls back to
// slog.Default().
func New(logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{logger: logger}
}

// Refresh loads the config file from the default path (see
// DefaultPath) and replaces the cached document. See RefreshFromFile
// for the failure contract.
func (c *Cache) Refresh() error {
	return c.RefreshFromFile(DefaultPath())
}

// RefreshFromFile reads and parses the config file at path, then
// atomically replaces the cached document.
//
// Reading and parsing happen before the lock is taken, so a failed
// refresh never disturbs the currently cached document. Both failure
// modes return a *FatalError: configuration is mandatory
// infrastructure and there is no degraded mode, so the top level is
// expected to exit on it.
func (c *Cache) RefreshFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &FatalError{Op: "reading config", Path: path, Err: err}
	}
	return c.refreshBytes(path, data)
}

// RefreshFromBytes parses raw config text and replaces the cached
// document. It backs RefreshFromFile and lets tests and embedders
// supply config without touching the filesystem.
func (c *Cache) RefreshFromBytes(data []byte) error {
	return c.refreshBytes("", data)
}

func (c *Cache) refreshBytes(path string, data []byte) error {
	doc, err := parseDocument(data)
	if err != nil {
		return &FatalError{Op: "parsing config", Path: path, Err: err}
	}

	c.mu.Lock()
	c.doc = doc
	c.mu.Unlock()

	c.logger.Debug("config cached", "path", path, "bytes", len(data))
	return nil
}

// snapshot copies the current document out under the read lock.
// Documents are immutable once parsed, so the caller works on the
// copy without holding the lock; each snapshot is one coherent
// document regardless of concurrent refreshes.
func (c *Cache) snapshot() document {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.doc
}
