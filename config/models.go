package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	Mongo      MongoConfig      `mapstructure:"mongo"`
	Pagination PaginationConfig `mapstructure:"pagination"`
	Counter    CounterConfig    `mapstructure:"counter"`
	CORS       CORSConfig       `mapstructure:"cors"`
	RateLimit  RateLimitConfig  `mapstructure:"ratelimit"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// Validate ensures required fields are present and sane.
func (c Config) Validate() error {
	if c.Server.Port <= 0 {
		return errors.New("server.port is required")
	}
	if c.Mongo.URI == "" {
		return errors.New("mongo.uri is required")
	}
	if c.Mongo.Database == "" {
		return errors.New("mongo.database is required")
	}
	if strings.TrimSpace(c.Mongo.UsersCollection) == "" || strings.TrimSpace(c.Mongo.TeamsCollection) == "" {
		return errors.New("mongo collection names are required")
	}
	if c.Pagination.DefaultLimit < 1 {
		return errors.New("pagination.default_limit must be positive")
	}
	if c.Pagination.MaxLimit < c.Pagination.DefaultLimit {
		return errors.New("pagination.max_limit must be >= pagination.default_limit")
	}
	if c.Counter.UserStart < 1 {
		return errors.New("counter.user_start must be positive")
	}
	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 {
		return errors.New("ratelimit values must not be negative")
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// MongoConfig describes the document store connection.
type MongoConfig struct {
	URI             string        `mapstructure:"uri"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Cluster         string        `mapstructure:"cluster"`
	Database        string        `mapstructure:"database"`
	UsersCollection string        `mapstructure:"users_collection"`
	TeamsCollection string        `mapstructure:"teams_collection"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`
}

type PaginationConfig struct {
	DefaultLimit int `mapstructure:"default_limit"`
	MaxLimit     int `mapstructure:"max_limit"`
}

// CounterConfig sets the first value handed out by the user id sequence.
type CounterConfig struct {
	UserStart int64 `mapstructure:"user_start"`
}

type CORSConfig struct {
	AllowedOrigins string `mapstructure:"allowed_origins"`
}

// RateLimitConfig configures the per-client token bucket. RPS of 0 disables it.
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
