package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment names accepted in the environment key.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// APIServerConfig represents the Hastrology API server configuration
type APIServerConfig struct {
	Environment string          `mapstructure:"environment" validate:"oneof=development production test"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	AIServer    AIServerConfig  `mapstructure:"ai_server"`
	Auth        AuthConfig      `mapstructure:"auth"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
	CORS        CORSConfig      `mapstructure:"cors"`
	Payment     PaymentConfig   `mapstructure:"payment"`
	Logging     LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains database connection settings.
// URL takes precedence over the discrete fields when set.
type DatabaseConfig struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host" validate:"required_without=URL"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// AIServerConfig contains the horoscope generation server settings
type AIServerConfig struct {
	URL           string        `mapstructure:"url" validate:"required,url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	HealthTimeout time.Duration `mapstructure:"health_timeout"`
}

// AuthConfig contains token signing settings
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenTTL  time.Duration `mapstructure:"token_ttl" validate:"gt=0"`
}

// RateLimitConfig contains per-client request throttling settings
type RateLimitConfig struct {
	WindowMS    int `mapstructure:"window_ms" validate:"gt=0"`
	MaxRequests int `mapstructure:"max_requests" validate:"gt=0"`
}

// Window returns the rate limit window as a duration.
func (c RateLimitConfig) Window() time.Duration {
	return time.Duration(c.WindowMS) * time.Millisecond
}

// CORSConfig contains allowed cross-origin settings
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// PaymentConfig contains the fee quoted to clients before generation
type PaymentConfig struct {
	PriceSOL  string `mapstructure:"price_sol" validate:"required,numeric"`
	Recipient string `mapstructure:"recipient"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// IsProduction reports whether the server runs in production mode.
func (c *APIServerConfig) IsProduction() bool {
	return c.Environment == EnvProduction
}

// envBindings maps config keys to the environment variable names the
// deployment has always used.
var envBindings = map[string]string{
	"environment":             "NODE_ENV",
	"server.host":             "HOST",
	"server.port":             "PORT",
	"database.url":            "DATABASE_URL",
	"database.host":           "DB_HOST",
	"database.port":           "DB_PORT",
	"database.user":           "DB_USER",
	"database.password":       "DB_PASSWORD",
	"database.database":       "DB_NAME",
	"database.ssl_mode":       "DB_SSL_MODE",
	"ai_server.url":           "AI_SERVER_URL",
	"auth.jwt_secret":         "JWT_SECRET",
	"auth.token_ttl":          "JWT_TTL",
	"rate_limit.window_ms":    "RATE_LIMIT_WINDOW_MS",
	"rate_limit.max_requests": "RATE_LIMIT_MAX_REQUESTS",
	"cors.allowed_origins":    "ALLOWED_ORIGINS",
	"payment.price_sol":       "PAYMENT_PRICE_SOL",
	"payment.recipient":       "PAYMENT_RECIPIENT",
	"logging.level":           "LOG_LEVEL",
	"logging.format":          "LOG_FORMAT",
}

// LoadAPIServer loads API server configuration.
// configPath is optional; when empty only defaults and the environment are used.
// A .env file in the working directory is loaded first if present.
func LoadAPIServer(configPath string) (*APIServerConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setAPIServerDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config APIServerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	normalize(&config)

	if err := validateAPIServer(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setAPIServerDefaults(v *viper.Viper) {
	v.SetDefault("environment", EnvDevelopment)

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5001)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "45s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "30s")

	// Database defaults
	v.SetDefault("database.url", "")
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "postgres")
	v.SetDefault("database.ssl_mode", "require")

	// AI server defaults
	v.SetDefault("ai_server.url", "")
	v.SetDefault("ai_server.timeout", "30s")
	v.SetDefault("ai_server.health_timeout", "5s")

	// Auth defaults
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", "24h")

	// Rate limit defaults (15 minutes, 100 requests)
	v.SetDefault("rate_limit.window_ms", 900000)
	v.SetDefault("rate_limit.max_requests", 100)

	v.SetDefault("cors.allowed_origins", "*")

	v.SetDefault("payment.price_sol", "0.01")
	v.SetDefault("payment.recipient", "")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output_path", "stdout")
}

func normalize(config *APIServerConfig) {
	origins := make([]string, 0, len(config.CORS.AllowedOrigins))
	for _, raw := range config.CORS.AllowedOrigins {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	config.CORS.AllowedOrigins = origins
}

func validateAPIServer(config *APIServerConfig) error {
	err := validator.New().Struct(config)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %q", fe.Namespace(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
