// Copyright 2026 The HybridBar Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides the process-wide configuration cache for
// HybridBar.
//
// Configuration lives in a single JSON file, by default
// ~/.config/HybridBar/config.json. The filename component can be
// overridden with the HYBRID_CONFIG environment variable. Files may be
// authored as JSONC (JSON extended with // line comments, /* block
// comments */, and trailing commas); comments are stripped before
// parsing.
//
// The document is a flat two-level namespace: top-level keys are
// sections, each section maps keys to string or 32-bit integer values.
// A reserved section "variables" defines up to 64 name/value string
// pairs that can be substituted into string values at lookup time.
//
// A Cache holds exactly one parsed document and is safe for concurrent
// use: Refresh parses outside the lock and atomically swaps the new
// document in, so readers always see one coherent document. Components
// query the cache on every UI tick through TryGet and GetOrDefault
// instead of re-reading the file.
//
// A missing section or key is a normal outcome, reported as absence.
// An unreadable or malformed config file, a value of the wrong shape,
// or a variable table over its bound is a *FatalError: the application
// cannot render a correct bar with broken configuration, so the top
// level is expected to log the error and exit rather than continue in
// a degraded mode.
package config
