package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var (
	ServerPort  string
	DbHost      string
	DbPort      string
	DbUser      string
	DbPassword  string
	DbName      string
	DbSSLMode   string
	DatabaseURL string

	JwtSecret string
	Issuer    string
	TokenTTL  time.Duration

	FrontendDir string
	CorsOrigins []string

	LogLevel  string
	LogFormat string

	OrphanReportSchedule string
)

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	ServerPort = getEnv("SERVER_PORT", "5000")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "bugtrackr")
	DbSSLMode = getEnv("DB_SSLMODE", "disable")
	DatabaseURL = getEnv("DATABASE_URL", "")

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "bugtrackr")
	TokenTTL = getDuration("TOKEN_TTL", 24*time.Hour)

	FrontendDir = getEnv("FRONTEND_DIR", "")
	CorsOrigins = splitList(getEnv("CORS_ORIGINS", "*"))

	LogLevel = getEnv("LOG_LEVEL", "info")
	LogFormat = getEnv("LOG_FORMAT", "console")

	OrphanReportSchedule = getEnv("ORPHAN_REPORT_SCHEDULE", "@every 24h")
}

// DSN returns DATABASE_URL when set, otherwise a key/value DSN built from the
// discrete DB_* settings.
func DSN() string {
	if DatabaseURL != "" {
		return DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		DbHost,
		DbPort,
		DbUser,
		DbPassword,
		DbName,
		DbSSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Warn().Str("key", key).Str("value", raw).Msg("invalid duration, using default")
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
