package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Session Session `mapstructure:"session"`
	Display Display `mapstructure:"display"`
	Log     Log     `mapstructure:"log"`
}

// Session configuration
type Session struct {
	StopWord string `mapstructure:"stopWord"`
}

// Display configuration
type Display struct {
	StoreHeader  string `mapstructure:"storeHeader"`
	BasketHeader string `mapstructure:"basketHeader"`
}

// Log configuration
type Log struct {
	Level string `mapstructure:"level"`
}

// LoadConfig loads configuration from YAML files in configDir.
// Uses CONFIG_ENV environment variable to determine which env file to merge.
func LoadConfig(configDir string) (*Config, error) {
	configEnv := os.Getenv("CONFIG_ENV")
	if configEnv == "" {
		configEnv = "local"
	}

	v := viper.New()

	// Load base app-config.yaml as template/defaults (if it exists)
	baseConfigPath := fmt.Sprintf("%s/app-config.yaml", configDir)
	baseConfigExists := false
	if _, err := os.Stat(baseConfigPath); err == nil {
		v.SetConfigFile(baseConfigPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read base config file: %w", err)
		}
		baseConfigExists = true
	}

	// Merge environment-specific config (e.g., local.yaml when CONFIG_ENV=local)
	envConfigPath := fmt.Sprintf("%s/%s.yaml", configDir, configEnv)
	if _, err := os.Stat(envConfigPath); err == nil {
		v.SetConfigFile(envConfigPath)
		if baseConfigExists {
			if err := v.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("failed to merge env config file: %w", err)
			}
		} else if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read env config file: %w", err)
		}
	}

	v.SetEnvPrefix("TALLY")
	v.AutomaticEnv()

	_ = v.BindEnv("session.stopWord", "TALLY_SESSION_STOP_WORD")
	_ = v.BindEnv("display.storeHeader", "TALLY_DISPLAY_STORE_HEADER")
	_ = v.BindEnv("display.basketHeader", "TALLY_DISPLAY_BASKET_HEADER")
	_ = v.BindEnv("log.level", "TALLY_LOG_LEVEL", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// Default returns the configuration used when no file or env var overrides it
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Session.StopWord == "" {
		c.Session.StopWord = "end"
	}
	if c.Display.StoreHeader == "" {
		c.Display.StoreHeader = "Remaining in store:"
	}
	if c.Display.BasketHeader == "" {
		c.Display.BasketHeader = "Remaining in basket:"
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}
