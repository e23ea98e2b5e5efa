// Package config собирает настройки сервера из флагов и переменных окружения.
//
// Приоритет (от высшего к низшему):
//  1. флаг командной строки
//  2. переменная окружения QRFEEDBACK_*
//  3. значение по умолчанию
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Config содержит настройки сервера
type Config struct {
	Addr            string
	DBPath          string
	PublicURL       string
	LogLevel        slog.Level
	LogFormat       string
	RateLimit       int
	RateWindow      time.Duration
	ShutdownTimeout time.Duration
	ShowVersion     bool
	TrustProxy      bool // брать IP клиента из X-Forwarded-For / X-Real-IP
}

const envPrefix = "QRFEEDBACK_"

// Load разбирает args (без имени программы). getenv обычно os.Getenv.
// Возвращает flag.ErrHelp, если запрошена справка.
func Load(args []string, getenv func(string) string, output io.Writer) (*Config, error) {
	cfg := &Config{}
	var logLevel string

	fs := flag.NewFlagSet("qrfeedback-server", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Addr, "addr", envString(getenv, "ADDR", ":8080"), "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db", envString(getenv, "DB", "qrfeedback.db"), "Path to SQLite database")
	fs.StringVar(&cfg.PublicURL, "public-url", envString(getenv, "PUBLIC_URL", "http://localhost:8080"), "External URL encoded into QR codes")
	fs.StringVar(&logLevel, "log-level", envString(getenv, "LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", envString(getenv, "LOG_FORMAT", "json"), "Log format (json, text)")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")

	rateLimit, err := envInt(getenv, "RATE_LIMIT", 10)
	if err != nil {
		return nil, err
	}
	rateWindow, err := envDuration(getenv, "RATE_WINDOW", time.Minute)
	if err != nil {
		return nil, err
	}
	shutdown, err := envDuration(getenv, "SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	trustProxy, err := envBool(getenv, "TRUST_PROXY", false)
	if err != nil {
		return nil, err
	}
	fs.IntVar(&cfg.RateLimit, "rate-limit", rateLimit, "Feedback submissions allowed per client per window")
	fs.DurationVar(&cfg.RateWindow, "rate-window", rateWindow, "Rate limit window")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", shutdown, "Graceful shutdown timeout")
	fs.BoolVar(&cfg.TrustProxy, "trust-proxy", trustProxy, "Trust X-Forwarded-For / X-Real-IP (only behind a reverse proxy)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error

	if c.Addr == "" {
		errs = append(errs, errors.New("addr cannot be empty"))
	}
	if c.DBPath == "" {
		errs = append(errs, errors.New("db path cannot be empty"))
	}
	if c.RateLimit <= 0 {
		errs = append(errs, errors.New("rate limit must be positive"))
	}
	if c.RateWindow <= 0 {
		errs = append(errs, errors.New("rate window must be positive"))
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

func envString(getenv func(string) string, key, def string) string {
	if v := strings.TrimSpace(getenv(envPrefix + key)); v != "" {
		return v
	}
	return def
}

func envInt(getenv func(string) string, key string, def int) (int, error) {
	v := strings.TrimSpace(getenv(envPrefix + key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s%s: %w", envPrefix, key, err)
	}
	return n, nil
}

func envDuration(getenv func(string) string, key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(getenv(envPrefix + key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s%s: %w", envPrefix, key, err)
	}
	return d, nil
}

func envBool(getenv func(string) string, key string, def bool) (bool, error) {
	v := strings.TrimSpace(getenv(envPrefix + key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s%s: %w", envPrefix, key, err)
	}
	return b, nil
}
