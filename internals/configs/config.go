package configs

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	// Quota
	MaxAnnouncementsPerUser int

	// Database
	DB DBConfig

	// HTTP
	Port               string
	RequestTimeout     time.Duration
	CORSAllowOrigins   string
	RateLimitMax       int
	RateLimitWindow    time.Duration
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// Logging
	Log LogConfig
}

// DBConfig describes how to reach the relational store.
type DBConfig struct {
	Driver       string // postgres | mysql | sqlite
	DSN          string
	AutoMigrate  bool
	MaxOpenConns int
	MaxIdleConns int
	SlowQuery    time.Duration
}

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") != "" {
		log.Println("running in Railway, using system ENV")
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system ENV")
		return
	}
	log.Println(".env file loaded")
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// Load reads the configuration from the environment (after LoadEnv) and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		MaxAnnouncementsPerUser: getEnvInt("MAX_ANNOUNCEMENTS_PER_USER", getEnvInt("MaxAnnouncementsPerUser", 10)),
		DB: DBConfig{
			Driver:       strings.ToLower(GetEnv("DB_DRIVER", DriverPostgres)),
			DSN:          GetEnv("DB_DSN"),
			AutoMigrate:  getEnvBool("DB_AUTO_MIGRATE", false),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 20),
			MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 10),
			SlowQuery:    getEnvDuration("DB_SLOW_QUERY", 200*time.Millisecond),
		},
		Port:               GetEnv("PORT", "3000"),
		RequestTimeout:     getEnvDuration("REQUEST_TIMEOUT", 5*time.Second),
		CORSAllowOrigins:   GetEnv("CORS_ALLOW_ORIGINS", "*"),
		RateLimitMax:       getEnvInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow:    getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		ServerReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
		ServerWriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		ServerIdleTimeout:  getEnvDuration("SERVER_IDLE_TIMEOUT", 90*time.Second),
		Log: LogConfig{
			Level:      GetEnv("LOG_LEVEL", "info"),
			Format:     GetEnv("LOG_FORMAT", "json"),
			Output:     GetEnv("LOG_OUTPUT", "stdout"),
			FilePath:   GetEnv("LOG_FILE_PATH", "logs/adverts.log"),
			MaxSize:    getEnvInt("LOG_MAX_SIZE", 100),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
			MaxAge:     getEnvInt("LOG_MAX_AGE", 28),
		},
	}

	if cfg.DB.DSN == "" && cfg.DB.Driver == DriverPostgres {
		cfg.DB.DSN = postgresDSNFromParts()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the invariants the rest of the service relies on.
func (c *Config) Validate() error {
	if c.MaxAnnouncementsPerUser < 1 {
		return fmt.Errorf("MAX_ANNOUNCEMENTS_PER_USER must be >= 1, got %d", c.MaxAnnouncementsPerUser)
	}
	switch c.DB.Driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	if strings.TrimSpace(c.DB.DSN) == "" {
		return errors.New("DB_DSN is required")
	}
	if p, err := strconv.Atoi(c.Port); err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("invalid PORT %q", c.Port)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be positive")
	}
	if c.RateLimitMax < 1 || c.RateLimitWindow <= 0 {
		return errors.New("RATE_LIMIT_MAX and RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

// postgresDSNFromParts builds a DSN from DB_HOST/DB_USER/...; DB_DSN wins when set.
func postgresDSNFromParts() string {
	if GetEnv("DB_HOST") == "" {
		return ""
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=adverts",
		GetEnv("DB_USER"),
		GetEnv("DB_PASSWORD"),
		GetEnv("DB_HOST"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_NAME"),
		GetEnv("DB_SSLMODE", "disable"),
	)
}

func getEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
