// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAddr        = ":8080"
	DefaultVersion     = "0.1.0"
	DefaultDatabaseURL = "sqlite:///./data.db"
	DefaultAPIURL      = "http://localhost:8080"
	DefaultPublicDir   = "./public"
)

var defaultAllowedOrigins = []string{
	"https://app.blackhole.bond",
	"http://localhost:5173",
	"http://localhost:8000",
}

type Config struct {
	Addr           string
	Version        string
	Env            string
	DatabaseURL    string
	DBTimeout      time.Duration
	APIURL         string
	AllowedOrigins []string
	PublicDir      string
	LogLevel       string
	RateLimitRPS   float64
	RateLimitBurst int
}

// LoadEnvFiles reads .env and .env.local without overriding variables
// already present in the process environment.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load builds a Config from the environment.
func Load() (Config, error) {
	cfg := Config{
		Addr:           GetEnv("APP_ADDR", DefaultAddr),
		Version:        GetEnv("APP_VERSION", DefaultVersion),
		Env:            strings.ToLower(GetEnv("ENV", "dev")),
		DatabaseURL:    GetEnv("DATABASE_URL", DefaultDatabaseURL),
		APIURL:         strings.TrimRight(GetEnv("API_URL", DefaultAPIURL), "/"),
		AllowedOrigins: SplitCSV(os.Getenv("ALLOWED_ORIGINS")),
		PublicDir:      GetEnv("PUBLIC_DIR", DefaultPublicDir),
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = append([]string(nil), defaultAllowedOrigins...)
	}

	var err error
	if cfg.DBTimeout, err = time.ParseDuration(GetEnv("DB_TIMEOUT", "3s")); err != nil {
		return Config{}, fmt.Errorf("parse DB_TIMEOUT: %w", err)
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(GetEnv("RATE_LIMIT_RPS", "20"), 64); err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(GetEnv("RATE_LIMIT_BURST", "40")); err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_BURST: %w", err)
	}
	return cfg, nil
}

// IsDev reports whether the service runs in the development environment.
func (c Config) IsDev() bool {
	return c.Env == "dev"
}

// SafeDatabaseURL returns DatabaseURL with sslmode=require added to
// Postgres URLs outside of dev, unless an sslmode is already set.
func (c Config) SafeDatabaseURL() string {
	raw := c.DatabaseURL
	if c.IsDev() {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "postgres" && u.Scheme != "postgresql") {
		return raw
	}
	q := u.Query()
	if q.Get("sslmode") != "" {
		return raw
	}
	q.Set("sslmode", "require")
	u.RawQuery = q.Encode()
	return u.String()
}

func GetEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// SplitCSV splits a comma separated list, dropping blank items.
func SplitCSV(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// RedactDSN hides the credentials part of a connection string.
func RedactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
