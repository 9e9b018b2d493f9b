// Package config handles configuration loading, parsing, and validation
// from environment variables, an optional YAML file, and a local .env file.
// Settings keep the names used by the original deployment (PORT,
// ACCESS_TOKEN_SECRET, STRIPE_SECRET_KEY, DB_USER, DB_PASS) as fallbacks for
// the prefixed TRAILS_* variables.
package config
