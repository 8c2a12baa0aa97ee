// Package config loads console settings from a .rihladz config file and
// RIHLADZ_* environment variables.
package config

import (
	"fmt"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the settings every command needs.
type Config struct {
	BaseURL  string
	Token    string
	CacheDir string
}

// Load reads configuration with viper. A missing config file is fine;
// defaults and environment variables still apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("baseURL", "http://localhost:8080")
	v.SetDefault("cacheDir", "~/.rihladz/cache")
	v.SetConfigName(".rihladz")
	v.SetEnvPrefix("RIHLADZ")
	v.AutomaticEnv()

	home, err := homedir.Dir()
	if err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	cacheDir, err := homedir.Expand(v.GetString("cacheDir"))
	if err != nil {
		return nil, fmt.Errorf("config: expand cache dir: %w", err)
	}

	return &Config{
		BaseURL:  v.GetString("baseURL"),
		Token:    v.GetString("token"),
		CacheDir: filepath.Clean(cacheDir),
	}, nil
}
