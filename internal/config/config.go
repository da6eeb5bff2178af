package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/solvetrace/solvetrace/internal/insight"
)

// Config is the top-level solvetrace configuration.
type Config struct {
	API    API    `mapstructure:"api"`
	DBPath string `mapstructure:"db_path"`
	Server Server `mapstructure:"server"`
	Output Output `mapstructure:"output"`
}

// API configures the language-model provider.
type API struct {
	Key         string  `mapstructure:"key"`
	BaseURL     string  `mapstructure:"base_url"`
	Model       string  `mapstructure:"model"`
	TimeoutMS   int     `mapstructure:"timeout_ms"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
	MaxRetries  int     `mapstructure:"max_retries"`
}

// Server configures the HTTP boundary.
type Server struct {
	Addr string `mapstructure:"addr"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
}

// InsightConfig converts the API settings into the provider's config.
func (c *Config) InsightConfig() insight.Config {
	return insight.Config{
		APIKey:      c.API.Key,
		BaseURL:     c.API.BaseURL,
		Model:       c.API.Model,
		MaxTokens:   c.API.MaxTokens,
		Temperature: c.API.Temperature,
		Timeout:     time.Duration(c.API.TimeoutMS) * time.Millisecond,
		MaxRetries:  c.API.MaxRetries,
	}
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. The API key environment
// variable overrides the file.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("api.key", DefaultAPI.Key)
	v.SetDefault("api.base_url", DefaultAPI.BaseURL)
	v.SetDefault("api.model", DefaultAPI.Model)
	v.SetDefault("api.timeout_ms", DefaultAPI.TimeoutMS)
	v.SetDefault("api.max_tokens", DefaultAPI.MaxTokens)
	v.SetDefault("api.temperature", DefaultAPI.Temperature)
	v.SetDefault("api.max_retries", DefaultAPI.MaxRetries)
	v.SetDefault("db_path", filepath.Join(DefaultConfigDir, DefaultDBName))
	v.SetDefault("server.addr", DefaultServer.Addr)
	v.SetDefault("output.color", DefaultOutput.Color)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if key := os.Getenv(APIKeyEnv); key != "" {
		cfg.API.Key = key
	}

	cfg.DBPath = expandPath(cfg.DBPath)

	return &cfg, nil
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
