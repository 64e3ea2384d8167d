package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port            int
	DatabaseURL     string
	DatabaseType    string
	WordPressURL    string
	WordPressAPIKey string
	PublicBaseURL   string
	ProxyEndpoint   string
}

// ParseFlags validates flags and sets defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("menu-diario", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// WordPress credentials (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.WordPressURL, "wordpress-url", "", "WordPress base URL (prefer env)")
	fs.StringVar(&cfg.WordPressAPIKey, "wordpress-key", "", "WordPress API key (prefer env)")
	fs.StringVar(&cfg.PublicBaseURL, "public-url", "", "Public site URL for the view-on-web link")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3319 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "file:menu.db" // local single-operator default
	}

	// WordPress settings are optional at startup: the proxy endpoint checks
	// them per request and fails fast when they are missing (strict mode).
	if cfg.WordPressURL == "" {
		cfg.WordPressURL = os.Getenv("WORDPRESS_URL")
	}
	cfg.WordPressURL = strings.TrimSuffix(cfg.WordPressURL, "/")
	if cfg.WordPressAPIKey == "" {
		cfg.WordPressAPIKey = os.Getenv("WORDPRESS_API_KEY")
	}
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = os.Getenv("PUBLIC_BASE_URL")
	}
	cfg.PublicBaseURL = strings.TrimSuffix(cfg.PublicBaseURL, "/")

	// The publisher goes through the local proxy so the API key never
	// reaches the editing surface.
	cfg.ProxyEndpoint = fmt.Sprintf("http://127.0.0.1:%d/api/update-menu", cfg.Port)

	return cfg, nil
}
