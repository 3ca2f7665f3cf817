// Package config loads, normalizes, and validates egrulfill configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// EGRULFILL_INPUT. File paths, sheet rules, the resume point, and registry
// timing all live here so a run is fully described by one file.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
