// Copyright (c) 2025 El Reino de Drácula.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3319)
  - DatabaseURL: Database connection string (default: file:menu.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - WordPressURL: Remote CMS base URL (checked per request by the proxy)
  - WordPressAPIKey: Remote CMS write credential (never sent to clients)
  - PublicBaseURL: Public site URL used for the view-on-web link
  - ProxyEndpoint: Local update-menu endpoint the publisher posts to

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	--wordpress-url  WordPress base URL
	--wordpress-key  WordPress API key
	--public-url     Public site URL

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	WORDPRESS_URL     → --wordpress-url
	WORDPRESS_API_KEY → --wordpress-key
	PUBLIC_BASE_URL   → --public-url

CLI flags take precedence over environment variables. main loads a local
.env file first (via godotenv), so a dotenv file behaves like exported
environment variables.

# Validation

WordPress settings are deliberately not required at startup: the update-menu
proxy rejects publish requests with a configuration error when they are
missing, which keeps the editing and PDF surface usable without them.
*/
package cliparse
