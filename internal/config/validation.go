package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	ext := strings.TrimPrefix(c.Compare.SpreadsheetExtension, ".")
	if ext == "" {
		errs = append(errs, "compare.spreadsheet_extension must not be empty")
	}
	for _, e := range c.Compare.BinaryOnlyExtensions {
		if strings.TrimPrefix(e, ".") == "" {
			errs = append(errs, "compare.binary_only_extensions must not contain empty entries")
			break
		}
	}
	for _, e := range c.Compare.BinaryOnlyExtensions {
		if ext != "" && strings.EqualFold(strings.TrimPrefix(e, "."), ext) {
			errs = append(errs, "compare.binary_only_extensions must not contain compare.spreadsheet_extension")
			break
		}
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level %q is not a valid level", c.Log.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
