package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Payment  PaymentConfig  `mapstructure:"payment"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// AllowedOrigins lists the front-end origins accepted by the CORS layer.
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1,dive,required"`
}

// DatabaseConfig contains all MongoDB-related configuration settings.
type DatabaseConfig struct {
	URL  string `mapstructure:"url"  validate:"required,url"`
	Name string `mapstructure:"name" validate:"required"`

	// User, Password and Host are only consulted when URL is not set; they
	// assemble an Atlas SRV connection string.
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Host     string `mapstructure:"host"`

	ConnectTimeoutSeconds int `mapstructure:"connect_timeout_seconds" validate:"required,gt=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret          string `mapstructure:"jwt_secret"           validate:"required,min=32"`
	TokenLifetimeHours int    `mapstructure:"token_lifetime_hours" validate:"required,gt=0"`
}

// PaymentConfig contains the payment processor settings.
type PaymentConfig struct {
	StripeSecretKey string `mapstructure:"stripe_secret_key" validate:"required"`
	Currency        string `mapstructure:"currency"          validate:"required,len=3,lowercase"`
}
