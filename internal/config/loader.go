package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"quarkstart/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/quarkstart"
	configFileName = "config.yaml"
)

func GetDefaultConfigPathOrPanic() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}

	return filepath.Join(homeDir, userConfigDir)
}

// LoadConfig loads configuration from the specified directory, which should
// contain config.yaml. A missing file is not an error: defaults apply.
func LoadConfig(configPath string) (Config, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("Config", "No config.yaml found at %s, using defaults", configFilePath)
			return config, nil
		}
		logging.Info("Config", "Error loading config.yaml from %s: %s", configFilePath, err)
		return Config{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		// config malformed
		return Config{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
	}
	logging.Debug("Config", "Loaded configuration from %s", configFilePath)
	return config, nil
}

// ResolveAPIURL applies the precedence order for the API URL: explicit
// flag value, then environment, then config file (which defaults the URL
// when unset).
func ResolveAPIURL(flagValue string, cfg Config) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(APIURLEnvVar); env != "" {
		return env
	}
	if cfg.API.URL != "" {
		return cfg.API.URL
	}
	return DefaultAPIURL
}
