// Copyright 2026 The HybridBar Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
)

// EnvConfigFile is the environment variable that overrides the config
// filename component. The directory is fixed; only the filename
// changes, which lets users keep several configs side by side and
// switch between them per invocation.
const EnvConfigFile = "HYBRID_CONFIG"

const (
	configDirName   = "HybridBar"
	defaultFileName = "config.json"
)

// DefaultDir returns the HybridBar configuration directory,
// ~/.config/HybridBar.
func DefaultDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", configDirName)
}

// DefaultPath returns the config file path: DefaultDir joined with the
// filename from HYBRID_CONFIG, or config.json when unset.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), envOr(EnvConfigFile, defaultFileName))
}

// envOr returns the value of the named environment variable, or
// fallback when it is unset or empty.
func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
