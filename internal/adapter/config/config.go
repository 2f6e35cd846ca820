// Package config persists pagescope settings and resolves the API token.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds process-wide settings. Token is the optional bearer
// credential sent with listing requests.
type Config struct {
	Username string
	Token    string
}

// Dir returns the settings directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pagescope"), nil
}

// File returns the settings file path.
func File() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// EnsureDir creates the settings directory if needed.
func EnsureDir() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}

// Load reads the settings file, then lets the environment override the
// token: a .env file is honored and GITHUB_TOKEN always wins. A missing
// settings file is not an error.
func Load() (Config, error) {
	configFile, err := File()
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	v.SetDefault("username", "")
	v.SetDefault("token", "")

	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	cfg := Config{
		Username: v.GetString("username"),
		Token:    v.GetString("token"),
	}

	_ = godotenv.Load()
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		cfg.Token = token
	}

	return cfg, nil
}

// Save writes the settings file.
func Save(cfg Config) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile, err := File()
	if err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("username", cfg.Username)
	v.Set("token", cfg.Token)

	return v.WriteConfigAs(configFile)
}
