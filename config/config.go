package config

import (
	"os"
	"strconv"
	"strings"
)

// Ledger backends selectable through STORAGE_BACKEND.
const (
	BackendSheets = "sheets"
	BackendMySQL  = "mysql"
)

// Config carries the process-wide service settings. It is loaded once
// at startup and passed to the boundary layer; request handlers never
// mutate it.
type Config struct {
	// Service metadata surfaced on GET /.
	Title       string
	Description string
	Version     string
	ServerURL   string

	Port         string
	AllowOrigins string

	// Backend selects the ledger store: BackendSheets or BackendMySQL.
	Backend string

	// Google Sheets coordinates for the sheets backend.
	SheetID         string
	SheetName       string
	CredentialsFile string

	// MySQL connection string for the mysql backend.
	MySQLDSN string

	// EchoOrderFields switches POST /orders to the richer confirmation
	// that repeats the submitted fields back to the caller.
	EchoOrderFields bool

	// Optional admin login. Both must be set for the order endpoints
	// to require a bearer token.
	AdminUsername     string
	AdminPasswordHash string
	JWTSecret         string
}

// Load reads the configuration from the environment, falling back to
// the development defaults.
func Load() Config {
	return Config{
		Title:       getenv("API_TITLE", "Retail Procurement API"),
		Description: getenv("API_DESCRIPTION", "Retail procurement management API for submitting and viewing purchase orders, tracking price changes, and managing staff approvals."),
		Version:     getenv("API_VERSION", "1.0.0"),
		ServerURL:   getenv("SERVER_URL", "http://localhost:8081"),

		Port:         getenv("PORT", "8081"),
		AllowOrigins: getenv("CORS_ORIGINS", "*"),

		Backend: normalizeBackend(os.Getenv("STORAGE_BACKEND")),

		SheetID:         getenv("SHEET_ID", "1bnyC1w1z2VX3ZJjz6iex4oHFPK7D2F3ws3SxgKLc_XI"),
		SheetName:       getenv("SHEET_NAME", "Sheet1"),
		CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		MySQLDSN: getenv("MYSQL_DSN", "root:@tcp(localhost:3306)/procurement?charset=utf8mb4&parseTime=True&loc=Local"),

		EchoOrderFields: getenvBool("ECHO_ORDER_FIELDS", false),

		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         getenv("JWT_SECRET", "default-secret"),
	}
}

// AuthEnabled reports whether an admin login is configured. Without
// one the order endpoints stay open and login answers 503.
func (c Config) AuthEnabled() bool {
	return c.AdminUsername != "" && c.AdminPasswordHash != ""
}

func getenv(key, fallback string) string {
	if os.Getenv(key) != "" {
		return os.Getenv(key)
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// normalizeBackend maps the raw STORAGE_BACKEND value onto a known
// backend, defaulting to the sheets store.
func normalizeBackend(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case BackendMySQL:
		return BackendMySQL
	default:
		return BackendSheets
	}
}
