// Package config loads, normalizes, and validates mkvlive configuration.
//
// It supplies repository defaults, expands tilde paths, reads TOML files,
// and validates every knob before the CLI acts on it: the Void padding
// interval and size for the live rewrite, the trace repetition cap, and the
// log level and format. Always obtain settings through this package so
// downstream code sees sanitized values and clear validation errors.
package config
