package bytescan

// Config bounds the needles a Substrings matcher accepts.
//
// Example:
//
//	config := bytescan.DefaultConfig()
//	config.MaxNeedles = 16
//	m, err := bytescan.NewSubstringsWithConfig(config, "<!--", "-->")
type Config struct {
	// MaxNeedles is the largest number of needles accepted.
	// Default: 1024
	MaxNeedles int

	// MaxNeedleLen is the longest needle accepted, in bytes.
	// Default: 4096
	MaxNeedleLen int
}

// DefaultConfig returns the configuration used by NewSubstrings.
func DefaultConfig() Config {
	return Config{
		MaxNeedles:   1024,
		MaxNeedleLen: 4096,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - MaxNeedles: 1 to 65,536
//   - MaxNeedleLen: 1 to 1,048,576
func (c Config) Validate() error {
	if c.MaxNeedles < 1 || c.MaxNeedles > 1<<16 {
		return &ConfigError{
			Field:   "MaxNeedles",
			Message: "must be between 1 and 65,536",
		}
	}
	if c.MaxNeedleLen < 1 || c.MaxNeedleLen > 1<<20 {
		return &ConfigError{
			Field:   "MaxNeedleLen",
			Message: "must be between 1 and 1,048,576",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "bytescan: invalid config: " + e.Field + ": " + e.Message
}
