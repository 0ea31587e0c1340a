package config

const (
	defaultClustersPerPadding  = 1
	defaultPaddingSizeBytes    = 128 * 1024
	defaultMaxRepeatedElements = 3
	defaultLogLevel            = "info"
	defaultLogFormat           = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Filter: Filter{
			ClustersPerPadding: defaultClustersPerPadding,
			PaddingSizeBytes:   defaultPaddingSizeBytes,
		},
		Trace: Trace{
			MaxRepeatedElements: defaultMaxRepeatedElements,
		},
		Log: Log{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
