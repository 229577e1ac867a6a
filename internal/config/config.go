// Package config loads application settings from defaults, a TOML file,
// a .env file and environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"getthingsdone/internal/store"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "getthingsdone.toml"

// Config holds all application settings.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Storage StorageConfig `toml:"storage"`
	List    ListConfig    `toml:"list"`
	Log     LogConfig     `toml:"log"`
}

// ServerConfig configures the web front-end.
type ServerConfig struct {
	Port string `toml:"port"`
}

// StorageConfig selects the key-value backend.
type StorageConfig struct {
	Backend       string `toml:"backend"`
	Path          string `toml:"path"`
	Key           string `toml:"key"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	RedisPrefix   string `toml:"redis_prefix"`
}

// ListConfig configures list behavior.
type ListConfig struct {
	Locale     string `toml:"locale"`
	SingleEdit bool   `toml:"single_edit"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080"},
		Storage: StorageConfig{
			Backend:     store.BackendSQLite,
			Path:        "./data/todos.db",
			Key:         "todos",
			RedisAddr:   "localhost:6379",
			RedisPrefix: "getthingsdone",
		},
		List: ListConfig{Locale: "en"},
		Log:  LogConfig{Level: "info", Format: "text"},
	}
}

// Load builds the configuration. path names a TOML file; when empty,
// DefaultFile is used if it exists. Later sources override earlier ones:
// defaults, file, .env, environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := loadFile(cfg, path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	// .env is optional; values never override variables already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return err
	}
	return nil
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("GTD_STORAGE"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("GTD_STORAGE_KEY"); v != "" {
		cfg.Storage.Key = v
	}
	if v := os.Getenv("GTD_REDIS_ADDR"); v != "" {
		cfg.Storage.RedisAddr = v
	}
	if v := os.Getenv("GTD_REDIS_PASSWORD"); v != "" {
		cfg.Storage.RedisPassword = v
	}
	if v := os.Getenv("GTD_REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid GTD_REDIS_DB %q: %w", v, err)
		}
		cfg.Storage.RedisDB = db
	}
	if v := os.Getenv("GTD_LOCALE"); v != "" {
		cfg.List.Locale = v
	}
	if v := os.Getenv("GTD_SINGLE_EDIT"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid GTD_SINGLE_EDIT %q: %w", v, err)
		}
		cfg.List.SingleEdit = enabled
	}
	if v := os.Getenv("GTD_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("GTD_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	return nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case store.BackendSQLite, store.BackendFile, store.BackendRedis, store.BackendMemory:
	default:
		return fmt.Errorf("storage.backend must be one of sqlite, file, redis, memory: got %q", c.Storage.Backend)
	}
	if (c.Storage.Backend == store.BackendSQLite || c.Storage.Backend == store.BackendFile) && c.Storage.Path == "" {
		return errors.New("storage.path is required")
	}
	if strings.TrimSpace(c.Storage.Key) == "" {
		return errors.New("storage.key is required")
	}
	if _, err := language.Parse(c.List.Locale); err != nil {
		return fmt.Errorf("invalid list.locale %q: %w", c.List.Locale, err)
	}
	switch c.Log.Format {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("log.format must be one of text, json, logfmt: got %q", c.Log.Format)
	}
	return nil
}

// Locale returns the collation language.
func (c *Config) Locale() language.Tag {
	tag, err := language.Parse(c.List.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// StoreOptions maps the storage settings to store.Options.
func (c *Config) StoreOptions() store.Options {
	return store.Options{
		Backend:       c.Storage.Backend,
		Path:          c.Storage.Path,
		RedisAddr:     c.Storage.RedisAddr,
		RedisPassword: c.Storage.RedisPassword,
		RedisDB:       c.Storage.RedisDB,
		RedisPrefix:   c.Storage.RedisPrefix,
	}
}
