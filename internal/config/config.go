// Package config provides application configuration loaded from environment
// variables through viper, with defaults and validation. It centralizes
// server timeouts, logging, database selection, rate limiting and
// observability settings.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// CORSConfig defines Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig defines security-related settings such as HSTS.
type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// DBConfig selects and tunes the relational store.
type DBConfig struct {
	Driver       string        // DB_DRIVER: sqlite|postgres
	Path         string        // DB_PATH: SQLite file
	URL          string        // DATABASE_URL: Postgres DSN (URL or key=value)
	QueryTimeout time.Duration // DB_QUERY_TIMEOUT: Postgres statement_timeout; 0 disables
	MaxOpenConns int           // DB_MAX_OPEN_CONNS: pool size
	SeedOnStart  bool          // SEED_ON_START: reload the development dataset at startup
}

// OTELConfig defines OpenTelemetry observability settings.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT (e.g. "otel:4317")
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE (true if no TLS)
	ServiceName string  // OTEL_SERVICE_NAME (e.g. "go-news-backend")
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG in [0..1]
}

// Config holds all configuration values for the application.
type Config struct {
	// Server
	Port              string        // just the number
	ReadTimeout       time.Duration // e.g. 15s
	ReadHeaderTimeout time.Duration // e.g. 10s
	WriteTimeout      time.Duration // e.g. 20s
	IdleTimeout       time.Duration // e.g. 60s
	MaxHeaderBytes    int           // bytes
	GinMode           string        // debug|release|test

	// Logging / Docs
	LogLevel       string // debug|info|warn|error|fatal|panic
	LogPretty      bool   // pretty console logs in dev
	SwaggerEnabled bool   // enable Swagger UI route
	APIBasePath    string // base path for API routes

	DB DBConfig

	// Rate limiting
	RateRPS   float64 // tokens per second (>= 0)
	RateBurst int     // bucket size (>= 1)

	// Web protection
	CORS     CORSConfig
	Security SecurityConfig

	// Observability
	OTEL OTELConfig
}

// MustLoad loads the configuration and panics if validation fails.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configuration from environment variables,
// applies defaults, normalizes values, and validates the result.
func Load() (Config, error) {
	return LoadFrom(viper.New())
}

// LoadFrom is Load over a caller-owned viper instance. Flags bound with
// v.BindPFlag under the env key (e.g. "DB_DRIVER") win over the environment.
func LoadFrom(v *viper.Viper) (Config, error) {
	v.AutomaticEnv()
	for k, def := range defaults {
		v.SetDefault(k, def)
	}
	r := &reader{v: v}

	cfg := Config{
		// Server
		Port:              r.str("PORT"),
		ReadTimeout:       r.dur("READ_TIMEOUT"),
		ReadHeaderTimeout: r.dur("READ_HEADER_TIMEOUT"),
		WriteTimeout:      r.dur("WRITE_TIMEOUT"),
		IdleTimeout:       r.dur("IDLE_TIMEOUT"),
		MaxHeaderBytes:    r.int("MAX_HEADER_BYTES"),
		GinMode:           strings.ToLower(r.str("GIN_MODE")),

		// Logging / Docs
		LogLevel:       strings.ToLower(r.str("LOG_LEVEL")),
		LogPretty:      r.bool("LOG_PRETTY"),
		SwaggerEnabled: r.bool("SWAGGER_ENABLED"),
		APIBasePath:    normalizeBasePath(r.str("API_BASE_PATH")),

		DB: DBConfig{
			Driver:       strings.ToLower(r.str("DB_DRIVER")),
			Path:         r.str("DB_PATH"),
			URL:          r.str("DATABASE_URL"),
			QueryTimeout: r.dur("DB_QUERY_TIMEOUT"),
			MaxOpenConns: r.int("DB_MAX_OPEN_CONNS"),
			SeedOnStart:  r.bool("SEED_ON_START"),
		},

		// Rate limiting
		RateRPS:   r.float("RATE_RPS"),
		RateBurst: r.int("RATE_BURST"),

		// Web protection
		CORS: CORSConfig{
			AllowedOrigins: splitCSV(r.str("CORS_ALLOWED_ORIGINS")),
		},
		Security: SecurityConfig{
			EnableHSTS: r.bool("ENABLE_HSTS"),
			HSTSMaxAge: r.dur("HSTS_MAX_AGE"),
		},

		// Observability (OpenTelemetry)
		OTEL: OTELConfig{
			Enabled:     r.bool("OTEL_ENABLED"),
			Endpoint:    r.str("OTEL_EXPORTER_OTLP_ENDPOINT"),
			Insecure:    r.bool("OTEL_EXPORTER_OTLP_INSECURE"),
			ServiceName: r.str("OTEL_SERVICE_NAME"),
			SampleRatio: r.float("OTEL_TRACES_SAMPLER_ARG"),
		},
	}
	if err := errors.Join(r.errs...); err != nil {
		return cfg, err
	}

	// --- normalization ---
	if cfg.LogLevel == "warning" {
		cfg.LogLevel = "warn"
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		cfg.GinMode = "release"
	}
	switch cfg.DB.Driver {
	case "postgresql", "pg":
		cfg.DB.Driver = "postgres"
	case "sqlite3":
		cfg.DB.Driver = "sqlite"
	}

	// --- validation ---
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return cfg, errors.New("LOG_LEVEL must be one of: debug, info, warn, error, fatal, panic")
	}
	if strings.TrimSpace(cfg.Port) == "" {
		return cfg, errors.New("PORT must not be empty")
	}
	if cfg.ReadTimeout <= 0 || cfg.ReadHeaderTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.IdleTimeout <= 0 {
		return cfg, errors.New("timeouts must be positive durations")
	}
	if cfg.MaxHeaderBytes <= 0 {
		return cfg, errors.New("MAX_HEADER_BYTES must be > 0")
	}
	if err := cfg.DB.validate(); err != nil {
		return cfg, err
	}
	if cfg.RateRPS < 0 {
		return cfg, errors.New("RATE_RPS must be >= 0")
	}
	if cfg.RateBurst < 1 {
		return cfg, errors.New("RATE_BURST must be >= 1")
	}
	if cfg.Security.HSTSMaxAge < 0 {
		return cfg, errors.New("HSTS_MAX_AGE must be >= 0")
	}
	if cfg.OTEL.SampleRatio < 0 || cfg.OTEL.SampleRatio > 1 {
		return cfg, errors.New("OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	}

	return cfg, nil
}

func (db DBConfig) validate() error {
	switch db.Driver {
	case "sqlite":
		if strings.TrimSpace(db.Path) == "" {
			return errors.New("DB_PATH must not be empty")
		}
	case "postgres":
		if strings.TrimSpace(db.URL) == "" {
			return errors.New("DATABASE_URL must not be empty when DB_DRIVER=postgres")
		}
	default:
		return errors.New("DB_DRIVER must be one of: sqlite, postgres")
	}
	if db.QueryTimeout < 0 {
		return errors.New("DB_QUERY_TIMEOUT must be >= 0")
	}
	if db.MaxOpenConns < 1 {
		return errors.New("DB_MAX_OPEN_CONNS must be >= 1")
	}
	return nil
}

// defaults keyed by environment variable.
var defaults = map[string]any{
	"PORT":                        "8080",
	"READ_TIMEOUT":                15 * time.Second,
	"READ_HEADER_TIMEOUT":         10 * time.Second,
	"WRITE_TIMEOUT":               20 * time.Second,
	"IDLE_TIMEOUT":                60 * time.Second,
	"MAX_HEADER_BYTES":            1 << 20,
	"GIN_MODE":                    "release",
	"LOG_LEVEL":                   "info",
	"LOG_PRETTY":                  false,
	"SWAGGER_ENABLED":             false,
	"API_BASE_PATH":               "/api",
	"DB_DRIVER":                   "sqlite",
	"DB_PATH":                     "news.db",
	"DATABASE_URL":                "",
	"DB_QUERY_TIMEOUT":            5 * time.Second,
	"DB_MAX_OPEN_CONNS":           10,
	"SEED_ON_START":               false,
	"RATE_RPS":                    20.0,
	"RATE_BURST":                  40,
	"CORS_ALLOWED_ORIGINS":        "",
	"ENABLE_HSTS":                 false,
	"HSTS_MAX_AGE":                180 * 24 * time.Hour,
	"OTEL_ENABLED":                false,
	"OTEL_EXPORTER_OTLP_ENDPOINT": "localhost:4317",
	"OTEL_EXPORTER_OTLP_INSECURE": true,
	"OTEL_SERVICE_NAME":           "go-news-backend",
	"OTEL_TRACES_SAMPLER_ARG":     1.0,
}

// reader converts viper values and collects every parse failure so that
// Load reports all malformed variables at once.
type reader struct {
	v    *viper.Viper
	errs []error
}

func (r *reader) fail(key, kind string) {
	r.errs = append(r.errs, fmt.Errorf("%s must be %s, got %q", key, kind, r.v.GetString(key)))
}

func (r *reader) str(key string) string { return r.v.GetString(key) }

func (r *reader) int(key string) int {
	n, err := cast.ToIntE(strings.TrimSpace(cast.ToString(r.v.Get(key))))
	if err != nil {
		r.fail(key, "an integer")
	}
	return n
}

func (r *reader) float(key string) float64 {
	f, err := cast.ToFloat64E(strings.TrimSpace(cast.ToString(r.v.Get(key))))
	if err != nil {
		r.fail(key, "a number")
	}
	return f
}

func (r *reader) dur(key string) time.Duration {
	d, err := cast.ToDurationE(r.v.Get(key))
	if err != nil {
		r.fail(key, "a duration")
	}
	return d
}

func (r *reader) bool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(cast.ToString(r.v.Get(key)))) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	}
	r.fail(key, "a boolean")
	return false
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// normalizeBasePath ensures leading '/' and strips trailing '/' (except root).
func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
	}
	return p
}
