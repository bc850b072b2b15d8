package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string

	AuthCookieSecure  bool
	SessionTTLMinutes int

	DefaultLocale string

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int

	RedisAddr     string
	RedisPassword string

	// BootstrapAdminPassword seeds the first admin account when the
	// employees table is empty. Ignored afterwards.
	BootstrapAdminPassword string

	ExportSettingsPath string
}

// Module wires configuration loading.
var Module = fx.Module("config",
	fx.Provide(Load),
	fx.Provide(LoadExportSettings),
)

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	environment := getenv("ENVIRONMENT", "development")
	authCookieSecure := environment == "production"
	if !authCookieSecure {
		authCookieSecure = getenvBool("AUTH_COOKIE_SECURE", false)
	}

	return Config{
		AppName:                getenv("APP_SERVICE", "backoffice"),
		AppVersion:             getenv("APP_VERSION", "0.1.0"),
		Environment:            environment,
		HTTPAddr:               getenv("HTTP_ADDR", ":8080"),
		AuthCookieSecure:       authCookieSecure,
		SessionTTLMinutes:      getenvInt("SESSION_TTL_MINUTES", 12*60),
		DefaultLocale:          NormalizeLocale(getenv("DEFAULT_LOCALE", "ku")),
		DBType:                 getenv("DATABASE_TYPE", "postgres"),
		DBHost:                 getenv("DATABASE_HOST", "localhost"),
		DBPort:                 getenv("DATABASE_PORT", "5432"),
		DBName:                 getenv("DATABASE_NAME", "backoffice"),
		DBUser:                 getenv("DATABASE_USER", "postgres"),
		DBPassword:             getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:              getenv("DATABASE_SSLMODE", "disable"),
		DBMaxIdleConn:          getenvInt("DATABASE_MAX_IDLE_CONN", 5),
		DBMaxOpenConn:          getenvInt("DATABASE_MAX_OPEN_CONN", 25),
		DBConnMaxLifetime:      getenvInt("DATABASE_CONN_MAX_LIFETIME", 30),
		RedisAddr:              getenv("REDIS_ADDR", ""),
		RedisPassword:          getenv("REDIS_PASSWORD", ""),
		BootstrapAdminPassword: getenv("BOOTSTRAP_ADMIN_PASSWORD", ""),
		ExportSettingsPath:     getenv("EXPORT_SETTINGS_PATH", "export.yaml"),
	}
}

// Supported UI locales. Locale drives text direction and font stacks in
// printable documents.
const (
	LocaleKurdish = "ku"
	LocaleArabic  = "ar"
	LocaleEnglish = "en"
)

// RTL reports whether a locale uses right-to-left script.
func RTL(locale string) bool {
	switch NormalizeLocale(locale) {
	case LocaleKurdish, LocaleArabic:
		return true
	default:
		return false
	}
}

func NormalizeLocale(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case LocaleArabic:
		return LocaleArabic
	case LocaleEnglish:
		return LocaleEnglish
	default:
		return LocaleKurdish
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if value == "" {
		return def
	}
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}
