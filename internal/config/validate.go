package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFilter(); err != nil {
		return err
	}
	if err := c.validateTrace(); err != nil {
		return err
	}
	return c.validateLog()
}

func (c *Config) validateFilter() error {
	if c.Filter.ClustersPerPadding < 0 {
		return errors.New("filter.clusters_per_padding must not be negative")
	}
	if c.Filter.PaddingSizeBytes < 0 {
		return errors.New("filter.padding_size_bytes must not be negative")
	}
	if c.Filter.ClustersPerPadding > 0 && c.Filter.PaddingSizeBytes == 0 {
		return errors.New("filter.padding_size_bytes must be set when padding is enabled")
	}
	return nil
}

func (c *Config) validateTrace() error {
	if c.Trace.MaxRepeatedElements < 1 {
		return errors.New("trace.max_repeated_elements must be at least 1")
	}
	return nil
}

func (c *Config) validateLog() error {
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug", "info", "warn", "error", "":
	default:
		return fmt.Errorf("log.level: unsupported value %q", c.Log.Level)
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "console", "json", "":
	default:
		return fmt.Errorf("log.format: unsupported value %q", c.Log.Format)
	}
	return nil
}
