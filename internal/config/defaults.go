package config

const (
	defaultEncoding  = "utf-8"
	defaultCutoff    = 10
	defaultLogFormat = "console"
	defaultLogLevel  = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Input: Input{
			Encoding: defaultEncoding,
		},
		Filter: Filter{
			Cutoff: defaultCutoff,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
