package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks for the YAML file.
const DefaultPath = "configs/config.yaml"

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Store     StoreConfig     `yaml:"store"`
	Share     ShareConfig     `yaml:"share"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	CORS      CORSConfig      `yaml:"cors"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"`
	Mode            string        `yaml:"mode"`
	BaseURL         string        `yaml:"base_url"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// StoreConfig selects the share store backend: memory, postgres, sqlite or redis.
type StoreConfig struct {
	Driver   string         `yaml:"driver"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	// CleanupInterval is how often expired shares are swept (memory and SQL stores).
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

type DatabaseConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
	// Path is the SQLite database file, used when Driver is "sqlite".
	Path         string `yaml:"path"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

type RedisConfig struct {
	Address   string `yaml:"address"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
}

type ShareConfig struct {
	MaxContentBytes int `yaml:"max_content_bytes"`
	MaxAttempts     int `yaml:"max_attempts"`
	// LookupDelay is a fixed wait before each lookup; negative disables it.
	LookupDelay time.Duration `yaml:"lookup_delay"`
	// Shares never expire when TTL is 0.
	TTL time.Duration `yaml:"ttl"`
}

type RateLimitConfig struct {
	Disabled          bool `yaml:"disabled"`
	RequestsPerMinute int  `yaml:"requests_per_minute"`
	Burst             int  `yaml:"burst"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size"`
	MaxAge     int    `yaml:"max_age"`
	MaxBackups int    `yaml:"max_backups"`
}

func Load() (*Config, error) {
	return LoadFile(DefaultPath)
}

// LoadFile reads the YAML file at path. A missing file is not an error;
// environment variables and defaults are used instead.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg.overrideFromEnv()
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns a configuration populated only with default values.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) overrideFromEnv() {
	// Server
	if val := os.Getenv("SERVER_PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			c.Server.Port = port
		}
	}
	if val := os.Getenv("GIN_MODE"); val != "" {
		c.Server.Mode = val
	}
	if val := os.Getenv("BASE_URL"); val != "" {
		c.Server.BaseURL = val
	}

	// Store
	if val := os.Getenv("STORE_DRIVER"); val != "" {
		c.Store.Driver = val
	}
	if val := os.Getenv("DATABASE_URL"); val != "" {
		c.Store.Database.URL = val
	}
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Store.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			c.Store.Database.Port = port
		}
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Store.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Store.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Store.Database.DBName = val
	}
	if val := os.Getenv("SQLITE_PATH"); val != "" {
		c.Store.Database.Path = val
	}
	if val := os.Getenv("REDIS_ADDR"); val != "" {
		c.Store.Redis.Address = val
	}
	if val := os.Getenv("REDIS_PASSWORD"); val != "" {
		c.Store.Redis.Password = val
	}
	if val := os.Getenv("REDIS_DB"); val != "" {
		if db, err := strconv.Atoi(val); err == nil {
			c.Store.Redis.DB = db
		}
	}

	// Share
	if val := os.Getenv("SHARE_MAX_CONTENT_BYTES"); val != "" {
		if size, err := strconv.Atoi(val); err == nil {
			c.Share.MaxContentBytes = size
		}
	}
	if val := os.Getenv("SHARE_LOOKUP_DELAY"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			c.Share.LookupDelay = d
		}
	}
	if val := os.Getenv("SHARE_TTL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			c.Share.TTL = d
		}
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val, ok := os.LookupEnv("LOG_FILE"); ok {
		c.Log.File = val
	}

	if val := os.Getenv("RATE_LIMIT_DISABLED"); val != "" {
		if disabled, err := strconv.ParseBool(val); err == nil {
			c.RateLimit.Disabled = disabled
		}
	}

	if val := os.Getenv("CORS_ALLOW_ORIGINS"); val != "" {
		c.CORS.AllowOrigins = strings.Split(val, ",")
	}
}

func (c *Config) setDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "debug"
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = fmt.Sprintf("http://localhost:%d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}

	if c.Store.Driver == "" {
		c.Store.Driver = "memory"
	}
	if c.Store.Database.Host == "" {
		c.Store.Database.Host = "localhost"
	}
	if c.Store.Database.Port == 0 {
		c.Store.Database.Port = 5432
	}
	if c.Store.Database.SSLMode == "" {
		c.Store.Database.SSLMode = "disable"
	}
	if c.Store.Database.Path == "" {
		c.Store.Database.Path = "./data/codetext.db"
	}
	if c.Store.Database.MaxOpenConns == 0 {
		c.Store.Database.MaxOpenConns = 25
	}
	if c.Store.Database.MaxIdleConns == 0 {
		c.Store.Database.MaxIdleConns = 5
	}
	if c.Store.Redis.Address == "" {
		c.Store.Redis.Address = "localhost:6379"
	}
	if c.Store.Redis.KeyPrefix == "" {
		c.Store.Redis.KeyPrefix = "share"
	}
	if c.Store.CleanupInterval == 0 {
		c.Store.CleanupInterval = 10 * time.Minute
	}

	if c.Share.MaxContentBytes == 0 {
		c.Share.MaxContentBytes = 1048576 // 1MB
	}
	if c.Share.MaxAttempts == 0 {
		c.Share.MaxAttempts = 5
	}
	if c.Share.LookupDelay == 0 {
		c.Share.LookupDelay = 500 * time.Millisecond
	}

	if c.RateLimit.RequestsPerMinute == 0 {
		c.RateLimit.RequestsPerMinute = 60
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 10
	}

	if len(c.CORS.AllowOrigins) == 0 {
		c.CORS.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.MaxSize == 0 {
		c.Log.MaxSize = 100
	}
	if c.Log.MaxAge == 0 {
		c.Log.MaxAge = 30
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = 3
	}
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "memory", "postgres", "sqlite", "redis":
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Share.MaxAttempts < 1 {
		return fmt.Errorf("share.max_attempts must be positive, got %d", c.Share.MaxAttempts)
	}
	return nil
}

func (c *Config) GetDSN() string {
	db := c.Store.Database
	if db.URL != "" {
		return db.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		db.Host, db.Port, db.User, db.Password, db.DBName, db.SSLMode)
}

func (c *Config) ShareURL(code string) string {
	return fmt.Sprintf("%s/shared/%s", strings.TrimRight(c.Server.BaseURL, "/"), code)
}
