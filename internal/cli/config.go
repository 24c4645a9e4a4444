package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the CLI settings, merged from (highest priority first)
// command-line flags, AMORA_* environment variables, and an optional
// amorctl.yaml in ~/.amora or the working directory.
type Config struct {
	// APIURL is the admin API base URL. Empty means the SDK resolves it
	// (AMORA_API_URL, then the local default).
	APIURL string `mapstructure:"api_url"`

	// TokenDB is the path of the SQLite credential database.
	TokenDB string `mapstructure:"token_db"`

	// Format selects list output: "table" or "json".
	Format string `mapstructure:"format"`

	// LogLevel controls diagnostic output on stderr.
	LogLevel string `mapstructure:"log_level"`

	// RateLimit caps outbound requests per second; 0 disables the limiter.
	RateLimit int `mapstructure:"rate_limit"`
}

// LoadConfig reads the CLI configuration. A missing config file is fine;
// defaults and environment variables still apply.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("amorctl")
	v.SetConfigType("yaml")
	v.AddConfigPath(defaultConfigDir())
	v.AddConfigPath(".")

	v.SetDefault("api_url", "")
	v.SetDefault("token_db", filepath.Join(defaultConfigDir(), "credentials.db"))
	v.SetDefault("format", "table")
	v.SetDefault("log_level", "warn")
	v.SetDefault("rate_limit", 0)

	v.SetEnvPrefix("AMORA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".amora")
}
