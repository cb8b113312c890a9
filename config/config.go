package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Deadline engine specifics
	CourseStore CourseStoreConfig
	Completion  CompletionConfig
	Engine      EngineConfig

	// Auth
	Auth AuthConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// CourseStoreConfig points at the document store holding course records.
type CourseStoreConfig struct {
	URL         string
	AccessToken string
	Collection  string
}

// CompletionConfig configures the local completion cache.
type CompletionConfig struct {
	DBPath string
}

// EngineConfig tunes the aggregation engine.
type EngineConfig struct {
	Timezone string
}

type AuthConfig struct {
	JWTSecret          string
	TokenTTL           time.Duration
	GoogleClientID     string
	GoogleClientSecret string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Course record store
	cfg.CourseStore.URL = viper.GetString("course_store.url")
	cfg.CourseStore.AccessToken = viper.GetString("course_store.access_token")
	cfg.CourseStore.Collection = viper.GetString("course_store.collection")
	if storeURL := viper.GetString("course_store_url"); storeURL != "" {
		cfg.CourseStore.URL = storeURL
	}
	if storeToken := viper.GetString("course_store_access_token"); storeToken != "" {
		cfg.CourseStore.AccessToken = storeToken
	}
	if cfg.CourseStore.URL == "" {
		return nil, fmt.Errorf("course_store.url is required")
	}

	// Completion cache
	cfg.Completion.DBPath = viper.GetString("completion.db_path")

	// Engine
	cfg.Engine.Timezone = viper.GetString("engine.timezone")

	// Auth
	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required")
	}
	cfg.Auth.TokenTTL = viper.GetDuration("auth.token_ttl")
	cfg.Auth.GoogleClientID = viper.GetString("auth.google_client_id")
	cfg.Auth.GoogleClientSecret = viper.GetString("auth.google_client_secret")
	if clientID := viper.GetString("google_client_id"); clientID != "" {
		cfg.Auth.GoogleClientID = clientID
	}
	if clientSecret := viper.GetString("google_client_secret"); clientSecret != "" {
		cfg.Auth.GoogleClientSecret = clientSecret
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 600)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("course_store.collection", "course_records")
	viper.SetDefault("completion.db_path", "completion.db")
	viper.SetDefault("engine.timezone", "America/Toronto")
	viper.SetDefault("auth.token_ttl", 30*24*time.Hour)
}
