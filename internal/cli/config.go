package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI settings, resolved from flags and NUCLEOBETS_* envs
type Config struct {
	ServerURL string
	Token     string
	TokenFile string
}

// DefaultConfig builds a Config from the environment
func DefaultConfig() *Config {
	cfg := &Config{
		ServerURL: os.Getenv("NUCLEOBETS_SERVER"),
		Token:     os.Getenv("NUCLEOBETS_TOKEN"),
		TokenFile: os.Getenv("NUCLEOBETS_TOKEN_FILE"),
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = "http://localhost:8080"
	}
	if cfg.TokenFile == "" {
		cfg.TokenFile = defaultTokenFile()
	}
	return cfg
}

// LoadToken reads the saved token unless one was already provided.
// A missing token file is not an error; commands that need auth will
// fail against the server instead.
func (c *Config) LoadToken() error {
	if c.Token != "" {
		return nil
	}

	data, err := os.ReadFile(c.TokenFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	c.Token = strings.TrimSpace(string(data))
	return nil
}

// SaveToken persists the token for later invocations
func (c *Config) SaveToken(token string) error {
	c.Token = token

	if err := os.MkdirAll(filepath.Dir(c.TokenFile), 0700); err != nil {
		return err
	}
	return os.WriteFile(c.TokenFile, []byte(token), 0600)
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".nucleobets/token"
	}
	return filepath.Join(home, ".nucleobets", "token")
}
