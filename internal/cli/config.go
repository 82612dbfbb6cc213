package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	AccessToken string
	TokenFile   string
	Output      string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("WORTLE_SERVER", "http://localhost:8080"),
		AccessToken: os.Getenv("WORTLE_TOKEN"),
		TokenFile:   getEnvOrDefault("WORTLE_TOKEN_FILE", defaultTokenFile()),
		Output:      "text",
	}
}

// LoadToken loads the access token from file if not already set
func (c *Config) LoadToken() error {
	if c.AccessToken != "" {
		return nil
	}

	data, err := os.ReadFile(c.TokenFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No token file is fine
		}
		return err
	}

	c.AccessToken = strings.TrimSpace(string(data))
	return nil
}

// SaveToken saves the access token to the token file
func (c *Config) SaveToken(token string) error {
	c.AccessToken = token

	dir := filepath.Dir(c.TokenFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.TokenFile, []byte(token), 0600)
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wortle-token"
	}
	return filepath.Join(home, ".wortle", "token")
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
