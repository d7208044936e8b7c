package redis

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"go-health/pkg/resource"
)

// Config holds the Redis connection options read from app.redis properties.
type Config struct {
	Host         string
	Port         int
	Password     string
	Database     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// ConfigFromProperties builds the Redis configuration from application
// properties, filling unset values with defaults.
func ConfigFromProperties() Config {
	cfg := Config{
		Host:         resource.GetString("app.redis.host"),
		Port:         resource.GetInt("app.redis.port"),
		Password:     resource.GetString("app.redis.password"),
		Database:     resource.GetInt("app.redis.database"),
		MinIdleConns: resource.GetInt("app.redis.min-idle-conns"),
		DialTimeout:  resource.GetDuration("app.redis.dial-timeout"),
		ReadTimeout:  resource.GetDuration("app.redis.read-timeout"),
		WriteTimeout: resource.GetDuration("app.redis.write-timeout"),
	}
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if cfg.Port == 0 {
		cfg.Port = 6379
	}
	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = 5 * time.Second
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 3 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 3 * time.Second
	}
	return cfg
}

// Addr returns the host:port address of the configured server.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// NewClient creates a go-redis client from the configuration. Connections
// are established lazily, so the client is valid even while the server is
// unreachable.
func NewClient(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.Database,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
}
