package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the client configuration
type Config struct {
	Catalog CatalogConfig `yaml:"catalog" mapstructure:"catalog"`
	Advisor AdvisorConfig `yaml:"advisor" mapstructure:"advisor"`
	Client  ClientConfig  `yaml:"client" mapstructure:"client"`
}

// CatalogConfig contains exoplanet archive settings
type CatalogConfig struct {
	Endpoint        string `yaml:"endpoint" mapstructure:"endpoint"`
	TimeoutSeconds  int    `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
	MaxRetries      int    `yaml:"max_retries" mapstructure:"max_retries"`
	CacheTTLMinutes int    `yaml:"cache_ttl_minutes" mapstructure:"cache_ttl_minutes"`
	DefaultLimit    int    `yaml:"default_limit" mapstructure:"default_limit"`
}

// AdvisorConfig contains generative text service settings. The API key may
// also be supplied via the EXOSCOPE_ADVISOR_API_KEY environment variable.
type AdvisorConfig struct {
	Endpoint        string `yaml:"endpoint" mapstructure:"endpoint"`
	Model           string `yaml:"model" mapstructure:"model"`
	APIKey          string `yaml:"api_key" mapstructure:"api_key"`
	CacheTTLMinutes int    `yaml:"cache_ttl_minutes" mapstructure:"cache_ttl_minutes"`
}

// ClientConfig contains client-specific configuration
type ClientConfig struct {
	DataDir  string `yaml:"data_dir" mapstructure:"data_dir"`
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	exoscopeDir := filepath.Join(homeDir, ".exoscope")

	return &Config{
		Catalog: CatalogConfig{
			Endpoint:        "https://exoplanetarchive.ipac.caltech.edu/TAP/sync",
			TimeoutSeconds:  10,
			MaxRetries:      3,
			CacheTTLMinutes: 60,
			DefaultLimit:    10,
		},
		Advisor: AdvisorConfig{
			Endpoint:        "https://generativelanguage.googleapis.com/v1beta/models",
			Model:           "gemini-2.0-flash-001",
			APIKey:          "",
			CacheTTLMinutes: 60,
		},
		Client: ClientConfig{
			DataDir:  filepath.Join(exoscopeDir, "data"),
			LogLevel: "info",
		},
	}
}

// LoadConfig loads configuration from file or creates default
func LoadConfig() (*Config, error) {
	// Set config paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths
	homeDir, _ := os.UserHomeDir()
	viper.AddConfigPath(filepath.Join(homeDir, ".exoscope"))
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")

	// Set environment variable prefix
	viper.SetEnvPrefix("EXOSCOPE")
	viper.AutomaticEnv()

	// Try to read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found, create default
			return createDefaultConfig()
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal config
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate config
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// SaveConfig saves configuration to file
func SaveConfig(config *Config) error {
	homeDir, _ := os.UserHomeDir()
	configDir := filepath.Join(homeDir, ".exoscope")
	configFile := filepath.Join(configDir, "config.yaml")

	// Create config directory
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create necessary directories
	if err := createDirectories(config); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write config file
	if err := os.WriteFile(configFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Configuration saved to: %s\n", configFile)
	return nil
}

// createDefaultConfig creates and saves a default configuration
func createDefaultConfig() (*Config, error) {
	config := DefaultConfig()

	if err := SaveConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.Catalog.Endpoint == "" {
		return fmt.Errorf("catalog endpoint cannot be empty")
	}

	if config.Catalog.TimeoutSeconds <= 0 {
		return fmt.Errorf("catalog timeout must be positive")
	}

	if config.Catalog.DefaultLimit < 1 || config.Catalog.DefaultLimit > 10000 {
		return fmt.Errorf("catalog default limit must be within [1, 10000]")
	}

	if config.Advisor.Endpoint == "" {
		return fmt.Errorf("advisor endpoint cannot be empty")
	}

	if config.Advisor.Model == "" {
		return fmt.Errorf("advisor model cannot be empty")
	}

	return nil
}

// createDirectories creates necessary directories based on config
func createDirectories(config *Config) error {
	dirs := []string{
		config.Client.DataDir,
	}

	for _, dir := range dirs {
		if dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".exoscope", "config.yaml"), nil
}
