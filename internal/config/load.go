package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key when read from the environment.
const EnvPrefix = "TRAILS"

// DefaultLocalDatabaseURL is used when neither a URL nor Atlas credentials are configured.
const DefaultLocalDatabaseURL = "mongodb://localhost:27017"

// DefaultAllowedOrigins are the front-end origins served by the original deployment.
var DefaultAllowedOrigins = []string{
	"http://localhost:5173",
	"https://blissful-trails.web.app",
	"https://blissful-trails.firebaseapp.com",
}

// Each key is bound to its prefixed variable first, then to the legacy name.
var envBindings = map[string][]string{
	"server.port":                      {"TRAILS_SERVER_PORT", "PORT"},
	"server.log_level":                 {"TRAILS_SERVER_LOG_LEVEL"},
	"server.allowed_origins":           {"TRAILS_SERVER_ALLOWED_ORIGINS"},
	"database.url":                     {"TRAILS_DATABASE_URL", "MONGODB_URI"},
	"database.name":                    {"TRAILS_DATABASE_NAME"},
	"database.user":                    {"TRAILS_DATABASE_USER", "DB_USER"},
	"database.password":                {"TRAILS_DATABASE_PASSWORD", "DB_PASS"},
	"database.host":                    {"TRAILS_DATABASE_HOST", "DB_HOST"},
	"database.connect_timeout_seconds": {"TRAILS_DATABASE_CONNECT_TIMEOUT_SECONDS"},
	"auth.jwt_secret":                  {"TRAILS_AUTH_JWT_SECRET", "ACCESS_TOKEN_SECRET"},
	"auth.token_lifetime_hours":        {"TRAILS_AUTH_TOKEN_LIFETIME_HOURS"},
	"payment.stripe_secret_key":        {"TRAILS_PAYMENT_STRIPE_SECRET_KEY", "STRIPE_SECRET_KEY"},
	"payment.currency":                 {"TRAILS_PAYMENT_CURRENCY"},
}

// Load configuration from environment variables and optionally config files.
// A .env file in the working directory is loaded first without overriding
// variables that are already set. Environment variables take precedence over
// values from the YAML file named by TRAILS_CONFIG_FILE.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	v.SetDefault("server.port", 5000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.allowed_origins", DefaultAllowedOrigins)
	v.SetDefault("database.name", "tourDB")
	v.SetDefault("database.connect_timeout_seconds", 10)
	v.SetDefault("auth.token_lifetime_hours", 365*24)
	v.SetDefault("payment.currency", "usd")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, names := range envBindings {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("error binding environment variable for %s: %w", key, err)
		}
	}

	if err := v.BindEnv("config_file", EnvPrefix+"_CONFIG_FILE"); err != nil {
		return nil, fmt.Errorf("error binding config file variable: %w", err)
	}
	if path := v.GetString("config_file"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if cfg.Database.URL == "" {
		cfg.Database.URL = buildDatabaseURL(cfg.Database)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// buildDatabaseURL assembles an Atlas SRV connection string from discrete
// credentials, falling back to a local server when they are incomplete.
func buildDatabaseURL(db DatabaseConfig) string {
	if db.User == "" || db.Password == "" || db.Host == "" {
		return DefaultLocalDatabaseURL
	}

	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(db.User, db.Password),
		Host:     db.Host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}
