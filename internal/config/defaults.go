package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Compare CompareConfig `json:"compare"`
	Log     LogConfig     `json:"log"`
}

type CompareConfig struct {
	// Extensions whose files can only be compared as hex dumps.
	// Matched case-insensitively, with or without the leading dot.
	BinaryOnlyExtensions []string `json:"binary_only_extensions"`

	// Extension routed to the spreadsheet differ.
	SpreadsheetExtension string `json:"spreadsheet_extension"` // Default: "xlsx"
}

type LogConfig struct {
	Level   string `json:"level"`   // Default: "info"
	Verbose bool   `json:"verbose"` // Default: false
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Compare: CompareConfig{
			BinaryOnlyExtensions: []string{
				"7z", "bmp", "class", "dll", "dylib", "exe", "gif", "gz",
				"ico", "jar", "jpeg", "jpg", "o", "pdf", "png", "so",
				"tar", "webp", "zip",
			},
			SpreadsheetExtension: "xlsx",
		},
		Log: LogConfig{
			Level:   "info",
			Verbose: false,
		},
	}
}
