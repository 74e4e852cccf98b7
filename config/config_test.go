package config

import "testing"

// clearEnv blanks every variable Load reads so a test sees only its
// own overrides.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"API_TITLE", "API_DESCRIPTION", "API_VERSION", "SERVER_URL",
		"PORT", "CORS_ORIGINS", "STORAGE_BACKEND",
		"SHEET_ID", "SHEET_NAME", "GOOGLE_APPLICATION_CREDENTIALS",
		"MYSQL_DSN", "ECHO_ORDER_FIELDS",
		"ADMIN_USERNAME", "ADMIN_PASSWORD_HASH", "JWT_SECRET",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.Title != "Retail Procurement API" {
		t.Fatalf("Title: %q", cfg.Title)
	}
	if cfg.Version != "1.0.0" {
		t.Fatalf("Version: %q", cfg.Version)
	}
	if cfg.Port != "8081" {
		t.Fatalf("Port: %q", cfg.Port)
	}
	if cfg.Backend != BackendSheets {
		t.Fatalf("Backend: %q", cfg.Backend)
	}
	if cfg.SheetName != "Sheet1" {
		t.Fatalf("SheetName: %q", cfg.SheetName)
	}
	if cfg.JWTSecret != "default-secret" {
		t.Fatalf("JWTSecret: %q", cfg.JWTSecret)
	}
	if cfg.EchoOrderFields {
		t.Fatalf("EchoOrderFields should default to false")
	}
	if cfg.AuthEnabled() {
		t.Fatalf("auth should be off without admin credentials")
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_TITLE", "Ledger API")
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_BACKEND", "mysql")
	t.Setenv("MYSQL_DSN", "user:pw@tcp(db:3306)/ledger")
	t.Setenv("ECHO_ORDER_FIELDS", "true")
	t.Setenv("JWT_SECRET", "prod-secret")

	cfg := Load()
	if cfg.Title != "Ledger API" {
		t.Fatalf("Title: %q", cfg.Title)
	}
	if cfg.Port != "9000" {
		t.Fatalf("Port: %q", cfg.Port)
	}
	if cfg.Backend != BackendMySQL {
		t.Fatalf("Backend: %q", cfg.Backend)
	}
	if cfg.MySQLDSN != "user:pw@tcp(db:3306)/ledger" {
		t.Fatalf("MySQLDSN: %q", cfg.MySQLDSN)
	}
	if !cfg.EchoOrderFields {
		t.Fatalf("EchoOrderFields should be on")
	}
	if cfg.JWTSecret != "prod-secret" {
		t.Fatalf("JWTSecret: %q", cfg.JWTSecret)
	}
}

func TestLoad_BackendNormalization(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"", BackendSheets},
		{"sheets", BackendSheets},
		{"MySQL", BackendMySQL},
		{" mysql ", BackendMySQL},
		{"postgres", BackendSheets},
	}
	for _, tc := range cases {
		clearEnv(t)
		t.Setenv("STORAGE_BACKEND", tc.raw)
		if cfg := Load(); cfg.Backend != tc.want {
			t.Fatalf("backend %q: got %q want %q", tc.raw, cfg.Backend, tc.want)
		}
	}
}

func TestLoad_EchoToggleParsing(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"banana", false},
	}
	for _, tc := range cases {
		clearEnv(t)
		t.Setenv("ECHO_ORDER_FIELDS", tc.raw)
		if cfg := Load(); cfg.EchoOrderFields != tc.want {
			t.Fatalf("echo %q: got %v want %v", tc.raw, cfg.EchoOrderFields, tc.want)
		}
	}
}

func TestAuthEnabled(t *testing.T) {
	cfg := Config{}
	if cfg.AuthEnabled() {
		t.Fatalf("empty config should not enable auth")
	}
	cfg.AdminUsername = "admin"
	if cfg.AuthEnabled() {
		t.Fatalf("username alone should not enable auth")
	}
	cfg.AdminPasswordHash = "$2a$10$hash"
	if !cfg.AuthEnabled() {
		t.Fatalf("username plus hash should enable auth")
	}
}
