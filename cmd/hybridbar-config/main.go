// Copyright 2026 The HybridBar Authors
// SPDX-License-Identifier: Apache-2.0

// hybridbar-config inspects a HybridBar configuration file using the
// same cache and accessor code the bar itself runs, so what it prints
// is exactly what the bar would see.
//
// Subcommands:
//
//	validate              parse the file and check the variable table
//	get <section> <key>   print one value (string lane by default)
//	vars                  list the variable table in document order
//	update-rate           print the effective refresh interval in ms
//
// The config file defaults to the path the bar uses (see --config).
// An absent key exits 1; a fatal configuration error (unreadable file,
// malformed JSON, wrong-shaped value, too many variables) exits 2.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/Pebor/HybridBar/lib/config"
)

// errNotFound marks an absent section/key lookup so main can map it to
// its own exit code, distinct from fatal configuration errors.
var errNotFound = errors.New("not found")

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(logger); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		logger.Error("hybridbar-config failed", "error", err)
		if config.IsFatal(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	var configPath string
	var intLane bool
	var noVariables bool

	flagSet := pflag.NewFlagSet("hybridbar-config", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", config.DefaultPath(), "path to the config file")
	flagSet.BoolVar(&intLane, "int", false, "read through the integer lane (get only)")
	flagSet.BoolVar(&noVariables, "no-variables", false, "skip variable substitution (get only)")
	flagSet.Usage = func() { printHelp(flagSet) }

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		return err
	}

	args := flagSet.Args()
	if len(args) == 0 {
		printHelp(flagSet)
		return errors.New("missing subcommand")
	}

	cache := config.New(logger)
	if err := cache.RefreshFromFile(configPath); err != nil {
		return err
	}

	switch args[0] {
	case "validate":
		return runValidate(cache, configPath)
	case "get":
		if len(args) != 3 {
			return errors.New("usage: hybridbar-config get <section> <key>")
		}
		return runGet(cache, args[1], args[2], intLane, !noVariables)
	case "vars":
		return runVars(cache)
	case "update-rate":
		return runUpdateRate(cache)
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

// runValidate reports success when the file parsed (the refresh above
// already proved that) and the variable table is within its bound.
func runValidate(cache *config.Cache, path string) error {
	variables, err := cache.Variables()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%s: valid (%d variable(s))\n", path, len(variables))
	return nil
}

func runGet(cache *config.Cache, section, key string, intLane, withVariables bool) error {
	value, ok, err := cache.TryGet(section, key, !intLane, withVariables)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s.%s: %w", section, key, errNotFound)
	}
	if intLane {
		fmt.Fprintf(os.Stdout, "%d\n", value.Int)
	} else {
		fmt.Fprintln(os.Stdout, value.Str)
	}
	return nil
}

func runVars(cache *config.Cache) error {
	variables, err := cache.Variables()
	if err != nil {
		return err
	}
	for _, variable := range variables {
		fmt.Fprintf(os.Stdout, "%s=%s\n", variable.Name, variable.Value)
	}
	return nil
}

func runUpdateRate(cache *config.Cache) error {
	rate, err := cache.UpdateRate()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%d\n", rate/time.Millisecond)
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `HybridBar config inspector.

Loads a HybridBar config file through the bar's own cache and prints
what the bar would see, including variable substitution.

Usage:
  hybridbar-config [flags] validate
  hybridbar-config [flags] get <section> <key>
  hybridbar-config [flags] vars
  hybridbar-config [flags] update-rate

Flags:
%s`, flagSet.FlagUsages())
}
