// Package config loads the vigenere command's configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
)

// Cipher modes.
const (
	ModeEncrypt = "encrypt"
	ModeDecrypt = "decrypt"
)

// Config holds all configuration of the vigenere command.
type Config struct {
	Cipher CipherConfig
	Logger LoggerConfig
}

// CipherConfig is the configuration for the cipher run.
// The key is removed from the process environment once read.
type CipherConfig struct {
	Key  string `env:"VIGENERE_KEY,required,unset"`
	Mode string `env:"VIGENERE_MODE" envDefault:"encrypt"`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string `env:"VIGENERE_LOG_LEVEL" envDefault:"info"`
	Mode         string `env:"VIGENERE_LOG_MODE" envDefault:"production"`
	Encoding     string `env:"VIGENERE_LOG_ENCODING" envDefault:"console"`
	ColorEnabled bool   `env:"VIGENERE_LOG_COLOR_ENABLED" envDefault:"false"`
}

// Load loads the configuration from environment variables.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom loads the configuration from the given variables instead of the
// process environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Cipher.Mode {
	case ModeEncrypt, ModeDecrypt:
	default:
		return fmt.Errorf("config: VIGENERE_MODE must be %q or %q, got %q", ModeEncrypt, ModeDecrypt, c.Cipher.Mode)
	}
	if c.Cipher.Key == "" {
		return fmt.Errorf("config: VIGENERE_KEY must not be empty")
	}
	return nil
}
