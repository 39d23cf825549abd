package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv string `mapstructure:"APP_ENV"`
	Port   string `mapstructure:"PORT"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSSLMode  string `mapstructure:"DB_SSLMODE"`

	RedisAddr   string `mapstructure:"REDIS_ADDR"`
	KafkaBroker string `mapstructure:"KAFKA_BROKER"`

	JWTSecret     string        `mapstructure:"JWT_SECRET"`
	JWTAccessTTL  time.Duration `mapstructure:"JWT_ACCESS_TTL"`
	JWTRefreshTTL time.Duration `mapstructure:"JWT_REFRESH_TTL"`

	Timezone           string `mapstructure:"APP_TIMEZONE"`
	CompanyEmailDomain string `mapstructure:"COMPANY_EMAIL_DOMAIN"`
	MediaRoot          string `mapstructure:"MEDIA_ROOT"`

	SMTPEnabled  bool   `mapstructure:"SMTP_ENABLED"`
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`
	SMTPUseTLS   bool   `mapstructure:"SMTP_USE_TLS"`

	RateLimitAnonPerMin int `mapstructure:"RATE_LIMIT_ANON_PER_MIN"`
	RateLimitUserPerMin int `mapstructure:"RATE_LIMIT_USER_PER_MIN"`

	// CASUAL:12,SICK:6,PAID:12
	DefaultLeaveEntitlements string `mapstructure:"DEFAULT_LEAVE_ENTITLEMENTS"`
}

var keys = []string{
	"APP_ENV", "PORT",
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"REDIS_ADDR", "KAFKA_BROKER",
	"JWT_SECRET", "JWT_ACCESS_TTL", "JWT_REFRESH_TTL",
	"APP_TIMEZONE", "COMPANY_EMAIL_DOMAIN", "MEDIA_ROOT",
	"SMTP_ENABLED", "SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASSWORD", "SMTP_FROM", "SMTP_USE_TLS",
	"RATE_LIMIT_ANON_PER_MIN", "RATE_LIMIT_USER_PER_MIN",
	"DEFAULT_LEAVE_ENTITLEMENTS",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "3000")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("JWT_ACCESS_TTL", "50m")
	v.SetDefault("JWT_REFRESH_TTL", "168h")
	v.SetDefault("APP_TIMEZONE", "Asia/Kolkata")
	v.SetDefault("COMPANY_EMAIL_DOMAIN", "wealthzonegroupai.com")
	v.SetDefault("MEDIA_ROOT", "media")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_FROM", "no-reply@wealthzonegroupai.com")
	v.SetDefault("SMTP_USE_TLS", true)
	v.SetDefault("RATE_LIMIT_ANON_PER_MIN", 10)
	v.SetDefault("RATE_LIMIT_USER_PER_MIN", 60)
	v.SetDefault("DEFAULT_LEAVE_ENTITLEMENTS", "CASUAL:12,SICK:6,PAID:12")
}

// Load reads an optional .env file and the process environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	_ = v.ReadInConfig()

	// AutomaticEnv hanya berlaku untuk Get, Unmarshal butuh key yang sudah dikenal
	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" && !c.IsDevelopment() {
		return errors.New("JWT_SECRET is required")
	}
	if c.JWTAccessTTL <= 0 || c.JWTRefreshTTL <= 0 {
		return errors.New("JWT token lifetimes must be positive")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.Timezone, err)
	}
	if _, err := ParseEntitlements(c.DefaultLeaveEntitlements); err != nil {
		return err
	}
	if c.SMTPEnabled && c.SMTPHost == "" {
		return errors.New("SMTP_HOST is required when SMTP_ENABLED is true")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Location returns the configured local time zone; Validate guarantees it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ParseEntitlements parses "CASUAL:12,SICK:6" into a map of whole-day allowances.
func ParseEntitlements(raw string) (map[string]int, error) {
	out := map[string]int{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, days, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("invalid leave entitlement %q", part)
		}
		n, err := strconv.Atoi(strings.TrimSpace(days))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid leave entitlement days %q", part)
		}
		out[strings.ToUpper(strings.TrimSpace(name))] = n
	}
	return out, nil
}
