package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/nuban/internal/common"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("NUBAN_TEST_DIR", "/tmp/nuban")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "tilde only", in: "~", want: home},
		{name: "tilde prefix", in: "~/data/nuban.db", want: filepath.Join(home, "data/nuban.db")},
		{name: "env var", in: "$NUBAN_TEST_DIR/nuban.db", want: "/tmp/nuban/nuban.db"},
		{name: "plain", in: "/var/lib/nuban.db", want: "/var/lib/nuban.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestDirectoryConfig_Validate(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		cfg     DirectoryConfig
	}{
		{
			name: "valid",
			cfg:  DirectoryConfig{BaseURL: "https://api.example.com", Token: "sk_test", Timeout: time.Second},
		},
		{
			name:    "missing token",
			cfg:     DirectoryConfig{BaseURL: "https://api.example.com", Timeout: time.Second},
			wantErr: common.ErrMissingConfig,
		},
		{
			name:    "bad scheme",
			cfg:     DirectoryConfig{BaseURL: "ftp://api.example.com", Token: "sk_test", Timeout: time.Second},
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "zero timeout",
			cfg:     DirectoryConfig{BaseURL: "https://api.example.com", Token: "sk_test"},
			wantErr: common.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadDirectoryConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("PAYSTACK_SECRET_KEY", "")

	_, err := LoadDirectoryConfig()
	assert.ErrorIs(t, err, common.ErrMissingConfig)

	t.Setenv("PAYSTACK_SECRET_KEY", "sk_env")
	cfg, err := LoadDirectoryConfig()
	require.NoError(t, err)
	assert.Equal(t, "sk_env", cfg.Token)
	assert.Equal(t, DefaultDirectoryURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)

	viper.Set("directory.token", "sk_config")
	viper.Set("directory.base_url", "http://localhost:9000")
	viper.Set("directory.timeout", "5s")
	cfg, err = LoadDirectoryConfig()
	require.NoError(t, err)
	assert.Equal(t, "sk_config", cfg.Token)
	assert.Equal(t, "http://localhost:9000", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestDatabasePath(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("database.path", "/tmp/banks.db")
	assert.Equal(t, "/tmp/banks.db", DatabasePath())
}
