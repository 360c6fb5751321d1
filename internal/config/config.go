// Package config loads application settings from an optional YAML file
// and STOCK_-prefixed environment variables, with defaults matching the
// historical store layout (data.txt / inventory.txt, 1000 products).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Store     StoreConfig     `mapstructure:"store"`
	ChangeLog ChangeLogConfig `mapstructure:"changelog"`
	Inventory InventoryConfig `mapstructure:"inventory"`
	Display   DisplayConfig   `mapstructure:"display"`
}

// StoreConfig locates the durable inventory store.
type StoreConfig struct {
	// Path is the delimited text file holding the full inventory.
	Path string `mapstructure:"path"`
}

// ChangeLogConfig controls the audit trail.
type ChangeLogConfig struct {
	// Path is the append-only change log file.
	Path string `mapstructure:"path"`

	// RecentWindow bounds how many trailing lines a history read keeps
	// in memory.
	RecentWindow int `mapstructure:"recent_window"`

	// RecentCount is how many lines the history view shows.
	RecentCount int `mapstructure:"recent_count"`
}

// InventoryConfig bounds the in-memory inventory.
type InventoryConfig struct {
	MaxProducts int `mapstructure:"max_products"`
}

// DisplayConfig holds console rendering settings.
type DisplayConfig struct {
	// Currency is the label printed next to prices.
	Currency string `mapstructure:"currency"`
}

// Load reads configuration from the given file when path is non-empty,
// otherwise from an optional ./stock.yaml, then applies environment
// overrides (STOCK_STORE_PATH, STOCK_INVENTORY_MAX_PRODUCTS, ...).
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("store.path", "data.txt")
	v.SetDefault("changelog.path", "inventory.txt")
	v.SetDefault("changelog.recent_window", 100)
	v.SetDefault("changelog.recent_count", 10)
	v.SetDefault("inventory.max_products", 1000)
	v.SetDefault("display.currency", "FCFA")

	v.SetEnvPrefix("STOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("stock")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Store.Path == "" {
		return errors.New("store.path must not be empty")
	}
	if c.ChangeLog.Path == "" {
		return errors.New("changelog.path must not be empty")
	}
	if c.Inventory.MaxProducts <= 0 {
		return errors.New("inventory.max_products must be positive")
	}
	if c.ChangeLog.RecentWindow <= 0 {
		return errors.New("changelog.recent_window must be positive")
	}
	if c.ChangeLog.RecentCount <= 0 {
		return errors.New("changelog.recent_count must be positive")
	}
	return nil
}
