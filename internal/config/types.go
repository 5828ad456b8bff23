package config

// Config is the top-level configuration structure for quarkstart.
type Config struct {
	API APIConfig `yaml:"api"`
}

// APIConfig points the tool at a code generation service.
type APIConfig struct {
	URL string `yaml:"url,omitempty"` // Base API URL (default: https://code.quarkus.io/api)
}

// DefaultAPIURL is the public code generation service instance.
const DefaultAPIURL = "https://code.quarkus.io/api"

// APIURLEnvVar overrides the configured API URL when set. Flags still win
// over the environment.
const APIURLEnvVar = "QUARKSTART_API_URL"

// GetDefaultConfig returns the default configuration for quarkstart.
func GetDefaultConfig() Config {
	return Config{
		API: APIConfig{
			URL: DefaultAPIURL,
		},
	}
}
