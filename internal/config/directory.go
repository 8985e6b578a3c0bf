package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/Veraticus/nuban/internal/common"
)

// DefaultDirectoryURL is the bank directory queried when none is configured.
const DefaultDirectoryURL = "https://api.paystack.co"

// DirectoryConfig holds the settings for the online bank directory.
type DirectoryConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// DefaultDirectoryConfig returns the configuration used before any overrides.
func DefaultDirectoryConfig() DirectoryConfig {
	return DirectoryConfig{
		BaseURL: DefaultDirectoryURL,
		Timeout: 30 * time.Second,
	}
}

// Validate ensures all required fields are present.
func (c *DirectoryConfig) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("%w: directory.token is required", common.ErrMissingConfig)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: directory.timeout must be positive", common.ErrInvalidConfig)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: directory.base_url %q is not an http(s) URL", common.ErrInvalidConfig, c.BaseURL)
	}
	return nil
}

// LoadDirectoryConfig loads bank directory configuration from Viper and
// environment variables. It follows this precedence:
// 1. Viper configuration (from config file or NUBAN_ env vars)
// 2. Direct environment variables (PAYSTACK_SECRET_KEY)
// 3. Default values
func LoadDirectoryConfig() (*DirectoryConfig, error) {
	cfg := DefaultDirectoryConfig()

	if v := viper.GetString("directory.base_url"); v != "" {
		cfg.BaseURL = v
	}
	if v := viper.GetString("directory.token"); v != "" {
		cfg.Token = v
	}
	if v := viper.GetDuration("directory.timeout"); v != 0 {
		cfg.Timeout = v
	}

	// Override with direct environment variables if not set
	if cfg.Token == "" {
		cfg.Token = os.Getenv("PAYSTACK_SECRET_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DatabasePath returns the configured cache database path, expanded.
func DatabasePath() string {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/nuban/nuban.db"
	}
	return ExpandPath(dbPath)
}
