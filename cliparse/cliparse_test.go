// Copyright (c) 2025 El Reino de Drácula.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_URL", "DATABASE_TYPE",
		"WORDPRESS_URL", "WORDPRESS_API_KEY", "PUBLIC_BASE_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.Port != 3319 {
		t.Errorf("Expected default port 3319, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("Expected sqlite default, got %q", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "file:menu.db" {
		t.Errorf("Expected local sqlite file default, got %q", cfg.DatabaseURL)
	}
	if cfg.ProxyEndpoint != "http://127.0.0.1:3319/api/update-menu" {
		t.Errorf("Unexpected proxy endpoint %q", cfg.ProxyEndpoint)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "4000")

	cfg, err := ParseFlags([]string{"-p", "5000"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.Port != 5000 {
		t.Errorf("Flag should win over env, got %d", cfg.Port)
	}
}

func TestEnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORDPRESS_URL", "https://example.com/")
	t.Setenv("WORDPRESS_API_KEY", "secret")
	t.Setenv("PUBLIC_BASE_URL", "https://example.com/menu/")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.WordPressURL != "https://example.com" {
		t.Errorf("Expected trailing slash trimmed, got %q", cfg.WordPressURL)
	}
	if cfg.WordPressAPIKey != "secret" {
		t.Errorf("Expected API key from env, got %q", cfg.WordPressAPIKey)
	}
	if cfg.PublicBaseURL != "https://example.com/menu" {
		t.Errorf("Expected trailing slash trimmed, got %q", cfg.PublicBaseURL)
	}
}

func TestInvalidPortEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-port")

	if _, err := ParseFlags(nil); err == nil {
		t.Error("Expected error for invalid PORT")
	}
}

func TestInvalidDatabaseType(t *testing.T) {
	clearEnv(t)

	if _, err := ParseFlags([]string{"-t", "mysql"}); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}

func TestPostgresRequiresURL(t *testing.T) {
	clearEnv(t)

	if _, err := ParseFlags([]string{"-t", "postgres"}); err == nil {
		t.Error("Expected error for postgres without a database URL")
	}
}
