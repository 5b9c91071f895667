package config

import "os"

// Environment variable names for overrides.
const (
	EnvConfig   = "DRIVEMAP_CONFIG"
	EnvDomain   = "DRIVEMAP_DOMAIN"
	EnvLogLevel = "DRIVEMAP_LOG_LEVEL"
)

// EnvOverrides holds values derived from environment variables.
// These are read once by ReadEnvOverrides and applied during Resolve.
type EnvOverrides struct {
	ConfigPath string // DRIVEMAP_CONFIG: override config file path
	Domain     string // DRIVEMAP_DOMAIN: domain hint for credential prompts
	LogLevel   string // DRIVEMAP_LOG_LEVEL: override log verbosity
}

// ReadEnvOverrides reads environment variables and returns any overrides
// found. This does not modify a Config; Resolve applies the relevant fields.
func ReadEnvOverrides() EnvOverrides {
	return EnvOverrides{
		ConfigPath: os.Getenv(EnvConfig),
		Domain:     os.Getenv(EnvDomain),
		LogLevel:   os.Getenv(EnvLogLevel),
	}
}
