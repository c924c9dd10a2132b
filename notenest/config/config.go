package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/magiconair/properties"
)

type Config struct {
	DatabaseURL string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string

	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	ServerPort     string
	RequestTimeout time.Duration
	AutoMigrate    bool

	LogDir     string
	LogLevel   string
	LogConsole bool
}

// LoadConfig reads .env (if any), then the properties file named by
// NOTENEST_CONFIG (if set), then the process environment. Later sources win.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	props := properties.NewProperties()
	if path := os.Getenv("NOTENEST_CONFIG"); path != "" {
		p, err := properties.LoadFile(path, properties.UTF8)
		if err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
		props = p
	}
	return fromSource(source{props: props, lookup: os.LookupEnv})
}

type source struct {
	props  *properties.Properties
	lookup func(string) (string, bool)
}

// get resolves DB_HOST from the env, else db.host from the properties file.
func (s source) get(key, fallback string) string {
	if value, ok := s.lookup(key); ok && value != "" {
		return value
	}
	if value, ok := s.props.Get(propertyKey(key)); ok && value != "" {
		return value
	}
	return fallback
}

func propertyKey(envKey string) string {
	return strings.ReplaceAll(strings.ToLower(envKey), "_", ".")
}

func fromSource(s source) (Config, error) {
	cfg := Config{
		DatabaseURL: s.get("DATABASE_URL", ""),
		DBUser:      s.get("DB_USER", ""),
		DBPassword:  s.get("DB_PASSWORD", ""),
		DBHost:      s.get("DB_HOST", "localhost"),
		DBPort:      s.get("DB_PORT", "5432"),
		DBName:      s.get("DB_NAME", "notenest"),
		DBSSLMode:   s.get("DB_SSLMODE", "disable"),
		ServerPort:  s.get("SERVER_PORT", "8080"),
		LogDir:      s.get("LOG_DIR", "./logs"),
		LogLevel:    s.get("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.DBMaxOpenConns, err = atoi(s, "DB_MAX_OPEN_CONNS", 10); err != nil {
		return Config{}, err
	}
	if cfg.DBMaxIdleConns, err = atoi(s, "DB_MAX_IDLE_CONNS", 5); err != nil {
		return Config{}, err
	}
	if cfg.DBConnMaxLifetime, err = duration(s, "DB_CONN_MAX_LIFETIME", 30*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.RequestTimeout, err = duration(s, "REQUEST_TIMEOUT", 60*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.AutoMigrate, err = boolean(s, "AUTO_MIGRATE", false); err != nil {
		return Config{}, err
	}
	if cfg.LogConsole, err = boolean(s, "LOG_CONSOLE", true); err != nil {
		return Config{}, err
	}
	if _, err := strconv.ParseUint(cfg.ServerPort, 10, 16); err != nil {
		return Config{}, fmt.Errorf("SERVER_PORT must be a valid port: %q", cfg.ServerPort)
	}
	return cfg, nil
}

// DSN returns DATABASE_URL when set, otherwise a keyword/value connection
// string built from the DB_* settings.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost,
		c.DBPort,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBSSLMode,
	)
}

func (c Config) Addr() string {
	return ":" + c.ServerPort
}

func atoi(s source, key string, fallback int) (int, error) {
	raw := s.get(key, "")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer: %q", key, raw)
	}
	return n, nil
}

func duration(s source, key string, fallback time.Duration) (time.Duration, error) {
	raw := s.get(key, "")
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %q", key, raw)
	}
	return d, nil
}

func boolean(s source, key string, fallback bool) (bool, error) {
	raw := s.get(key, "")
	if raw == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %q", key, raw)
	}
	return b, nil
}
