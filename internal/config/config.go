package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"texasholdem-server/internal/util"
)

// Config provides configuration for the poker server
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	StartingChips    int `yaml:"startingChips" envconfig:"starting_chips"`
	BotCount         int `yaml:"botCount" envconfig:"bot_count"`
	BotActionDelayMS int `yaml:"botActionDelayMs" envconfig:"bot_action_delay_ms"`
}

var config Config

// DefaultConfig returns the configuration before any file or environment overrides
func DefaultConfig() Config {
	var c Config
	c.StartingChips = 1000
	c.BotCount = 3
	c.BotActionDelayMS = 1000
	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; the defaults and the environment take over
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("POKER_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		err = yaml.NewDecoder(file).Decode(&config)
		_ = file.Close()

		if err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("poker", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
