// Package config loads the CLI configuration from TOML.
package config

import (
	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/rafaelescrich/go-btcaddr/address"
)

// Log holds logging settings.
type Log struct {
	Level string `toml:"level"`
}

// Config is the top-level configuration.
type Config struct {
	Network   string `toml:"network"`
	CacheSize int    `toml:"cacheSize"`
	Workers   int    `toml:"workers"`
	Log       Log    `toml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Network:   address.Testnet.Name,
		CacheSize: 1024,
		Workers:   4,
		Log:       Log{Level: "error"},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := tml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults and validates the result.
func Parse(text string) (*Config, error) {
	cfg := Default()
	if _, err := tml.Decode(text, cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if _, err := address.NetworkByName(c.Network); err != nil {
		return err
	}
	if c.CacheSize < 0 {
		return errors.Errorf("cacheSize must not be negative, got %d", c.CacheSize)
	}
	if c.Workers < 1 {
		return errors.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// NetworkParams returns the configured network.
func (c *Config) NetworkParams() (address.Network, error) {
	return address.NetworkByName(c.Network)
}
