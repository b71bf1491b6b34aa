// Package config loads application configuration.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = ".env"

// Load reads .env (if present) and the process environment into a Config.
// Variables already set in the environment win over .env values.
func Load() (*Config, error) {
	return LoadFile(envFile)
}

// LoadFile is Load with an explicit .env path.
func LoadFile(path string) (*Config, error) {
	if envMap, err := godotenv.Read(path); err == nil {
		for k, val := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, val)
			}
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Mongo.URI == "" {
		cfg.Mongo.URI = cfg.Mongo.BuildURI()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 4001)
	v.SetDefault("server.shutdown_timeout", "5s")

	v.SetDefault("http.request_timeout", "10s")

	v.SetDefault("mongo.uri", "")
	v.SetDefault("mongo.username", "")
	v.SetDefault("mongo.password", "")
	v.SetDefault("mongo.cluster", "cluster0.kysojnx.mongodb.net")
	v.SetDefault("mongo.database", "HeliverseDB")
	v.SetDefault("mongo.users_collection", "Users")
	v.SetDefault("mongo.teams_collection", "Teams")
	v.SetDefault("mongo.connect_timeout", "10s")

	v.SetDefault("pagination.default_limit", 20)
	v.SetDefault("pagination.max_limit", 100)

	v.SetDefault("counter.user_start", 1)

	v.SetDefault("cors.allowed_origins", "*")

	v.SetDefault("ratelimit.rps", 20.0)
	v.SetDefault("ratelimit.burst", 40)
}

func bindEnvs(v *viper.Viper) error {
	// Bare PORT/USERNAME/PASSWORD are still accepted for older deployments.
	aliases := map[string][]string{
		"server.port":    {"SERVER_PORT", "PORT"},
		"mongo.username": {"MONGO_USERNAME", "USERNAME"},
		"mongo.password": {"MONGO_PASSWORD", "PASSWORD"},
	}
	for key, envs := range aliases {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	keys := []string{
		"logging.level",
		"logging.format",
		"server.host",
		"server.shutdown_timeout",
		"http.request_timeout",
		"mongo.uri",
		"mongo.cluster",
		"mongo.database",
		"mongo.users_collection",
		"mongo.teams_collection",
		"mongo.connect_timeout",
		"pagination.default_limit",
		"pagination.max_limit",
		"counter.user_start",
		"cors.allowed_origins",
		"ratelimit.rps",
		"ratelimit.burst",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
	return nil
}

// BuildURI assembles an Atlas SRV connection string from credentials.
func (m MongoConfig) BuildURI() string {
	if m.Username == "" {
		return fmt.Sprintf("mongodb+srv://%s/%s?retryWrites=true&w=majority", m.Cluster, m.Database)
	}
	return fmt.Sprintf(
		"mongodb+srv://%s:%s@%s/%s?retryWrites=true&w=majority",
		url.QueryEscape(m.Username), url.QueryEscape(m.Password), m.Cluster, m.Database,
	)
}
