package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	MessagesPath   string
	BaseLocale     string
	DatabaseURL    string
	MigrationsPath string
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (CI, etc.).
	}

	cfg := &Config{
		MessagesPath:   os.Getenv("MESSAGES_PATH"),
		BaseLocale:     os.Getenv("BASE_LOCALE"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Override applies command-line values on top of the environment and
// re-validates, so a flag-supplied locale gets the same checks as
// BASE_LOCALE. Empty values keep the loaded configuration.
func (c *Config) Override(messagesPath, baseLocale string) error {
	if strings.TrimSpace(messagesPath) != "" {
		c.MessagesPath = messagesPath
	}
	if strings.TrimSpace(baseLocale) != "" {
		c.BaseLocale = baseLocale
	}
	return c.validate()
}

// validate applies defaults and all rules on the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.MessagesPath) == "" {
		c.MessagesPath = "src/i18n/messages.json"
	}

	if strings.TrimSpace(c.BaseLocale) == "" {
		c.BaseLocale = "en"
	}
	if _, err := language.Parse(c.BaseLocale); err != nil {
		return fmt.Errorf("config: BASE_LOCALE %q is not a valid locale code: %w", c.BaseLocale, err)
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = "migrations"
	}

	// DATABASE_URL is only needed by push/pull; when present it must at
	// least look like a connection URL.
	if strings.TrimSpace(c.DatabaseURL) != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: DATABASE_URL invalid (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: DATABASE_URL invalid (%q): missing scheme or host", c.DatabaseURL)
		}
	}

	return nil
}
