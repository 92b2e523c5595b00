package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration, read via Viper from
// environment variables with an optional .env file.
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	DB    DBConfig
	Redis RedisConfig
	JWT   JWTConfig
	SMTP  SMTPConfig
	AI    AIConfig
	Tiers TiersConfig
	Store StoreConfig
}

// AppConfig is general application configuration.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig is the HTTP server configuration.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DBConfig is the PostgreSQL configuration. A non-empty DatabaseURL wins
// over the individual fields.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString returns the DSN to use.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// RedisConfig is the settings-cache configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// TTLSeconds is how long store settings stay cached.
	TTLSeconds int
}

// JWTConfig configures token issuing.
type JWTConfig struct {
	Secret     string
	Expiration int // minutes
	Issuer     string
}

// SMTPConfig configures the notification mailer. Empty Host disables
// real sending (the log-only mailer is used instead).
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// AIConfig configures the description generator.
type AIConfig struct {
	AnthropicAPIKey string
	AnthropicModel  string
}

// TiersConfig overrides the partner tier policy; empty fields keep the
// built-in defaults.
type TiersConfig struct {
	SilverDiscount    string
	SilverTermsDays   int
	GoldDiscount      string
	GoldTermsDays     int
	PlatinumDiscount  string
	PlatinumTermsDays int
}

// StoreConfig seeds the store settings row when none exists yet.
type StoreConfig struct {
	DefaultEURRate string
}

// Load reads configuration from env vars (and optionally a .env file in
// the working directory). Env vars take priority.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "gradina-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "gradina"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:       getString(v, "REDIS_ADDR", "localhost:6379"),
			Password:   getString(v, "REDIS_PASSWORD", ""),
			DB:         getInt(v, "REDIS_DB", 0),
			TTLSeconds: getInt(v, "REDIS_SETTINGS_TTL_SECONDS", 60),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "gradina-api"),
		},
		SMTP: SMTPConfig{
			Host:     getString(v, "SMTP_HOST", ""),
			Port:     getInt(v, "SMTP_PORT", 587),
			User:     getString(v, "SMTP_USER", ""),
			Password: getString(v, "SMTP_PASSWORD", ""),
			From:     getString(v, "SMTP_FROM", "noreply@gradina.bg"),
		},
		AI: AIConfig{
			AnthropicAPIKey: getString(v, "ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getString(v, "ANTHROPIC_MODEL", "claude-3-5-haiku-20241022"),
		},
		Tiers: TiersConfig{
			SilverDiscount:    getString(v, "TIER_SILVER_DISCOUNT", ""),
			SilverTermsDays:   getInt(v, "TIER_SILVER_TERMS_DAYS", 0),
			GoldDiscount:      getString(v, "TIER_GOLD_DISCOUNT", ""),
			GoldTermsDays:     getInt(v, "TIER_GOLD_TERMS_DAYS", 0),
			PlatinumDiscount:  getString(v, "TIER_PLATINUM_DISCOUNT", ""),
			PlatinumTermsDays: getInt(v, "TIER_PLATINUM_TERMS_DAYS", 0),
		},
		Store: StoreConfig{
			// Fixed BGN/EUR peg as fallback until the settings row exists.
			DefaultEURRate: getString(v, "STORE_DEFAULT_EUR_RATE", "1.95583"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
