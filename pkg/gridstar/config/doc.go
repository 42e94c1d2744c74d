/*
Package config loads search configuration from YAML or JSON.

# Overview

Config wraps a map[string]any with typed accessors that fall back to a
default when a key is missing or has the wrong type. Search is the typed
configuration of one run, built by overlaying a Config onto Default, so a
file only needs the keys it changes.

# Basic Usage

	s, err := config.LoadSearch("search.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	if err := s.Validate(); err != nil {
	    log.Fatal(err)
	}

A file setting every key:

	width: 24
	height: 13
	start: {col: 0, row: 0}
	end: {col: 23, row: 11}
	passable_chance: 80
	seed: 12345
	show_progress: true
	delay: 25ms
	max_steps: 0
	log: {level: info, format: text}
	checkpoint: {path: runs.db, interval: 1, run_id: demo}

# Type Coercion

Duration accepts a time.ParseDuration string or a number of milliseconds.
Int accepts JSON numbers only when they have no fractional part.

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation.
*/
package config
