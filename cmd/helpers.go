package cmd

import (
	"quarkstart/internal/config"
	"quarkstart/internal/platform"
)

// newPlatformClient builds a service client from the resolved configuration:
// --api-url flag, then QUARKSTART_API_URL, then config.yaml, then the public
// service.
func newPlatformClient() (*platform.Client, error) {
	configPath := rootConfigPath
	if configPath == "" {
		configPath = config.GetDefaultConfigPathOrPanic()
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return platform.New(config.ResolveAPIURL(rootAPIURL, cfg)), nil
}
