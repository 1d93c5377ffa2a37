package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/flexprice/playbill/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `mapstructure:"deployment" validate:"required"`
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Logging    LoggingConfig    `mapstructure:"logging" validate:"required"`
	Storage    StorageConfig    `mapstructure:"storage" validate:"required"`
	Postgres   PostgresConfig   `mapstructure:"postgres"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Sentry     SentryConfig     `mapstructure:"sentry"`
	Pricing    PricingConfig    `mapstructure:"pricing" validate:"required"`
}

type DeploymentConfig struct {
	Mode types.RunMode `mapstructure:"mode" validate:"required,oneof=local api"`
}

type ServerConfig struct {
	Address string `mapstructure:"address" validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

type StorageConfig struct {
	Type types.StorageType `mapstructure:"type" validate:"required,oneof=memory postgres"`
}

type PostgresConfig struct {
	Host                   string `mapstructure:"host"`
	Port                   int    `mapstructure:"port"`
	User                   string `mapstructure:"user"`
	Password               string `mapstructure:"password"`
	DBName                 string `mapstructure:"dbname"`
	SSLMode                string `mapstructure:"sslmode"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes"`
	ConnectMaxRetries      uint64 `mapstructure:"connect_max_retries"`
}

type CacheConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	ExpirationMinutes int  `mapstructure:"expiration_minutes" validate:"gte=0"`
}

type SentryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	DSN         string  `mapstructure:"dsn" validate:"required_if=Enabled true"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

// PricingConfig holds the statement rule tables, one block per rule.
// Amounts are in minor currency units (cents).
type PricingConfig struct {
	Currency string               `mapstructure:"currency" validate:"required"`
	Tragedy  TragedyPricingConfig `mapstructure:"tragedy"`
	Comedy   ComedyPricingConfig  `mapstructure:"comedy"`
	Credits  CreditsConfig        `mapstructure:"credits"`
}

type TragedyPricingConfig struct {
	BaseAmount           int64 `mapstructure:"base_amount" validate:"gte=0"`
	AudienceThreshold    int   `mapstructure:"audience_threshold" validate:"gte=0"`
	PerSeatOverThreshold int64 `mapstructure:"per_seat_over_threshold" validate:"gte=0"`
}

type ComedyPricingConfig struct {
	BaseAmount           int64 `mapstructure:"base_amount" validate:"gte=0"`
	AudienceThreshold    int   `mapstructure:"audience_threshold" validate:"gte=0"`
	OverThresholdFlat    int64 `mapstructure:"over_threshold_flat" validate:"gte=0"`
	PerSeatOverThreshold int64 `mapstructure:"per_seat_over_threshold" validate:"gte=0"`
	PerSeat              int64 `mapstructure:"per_seat" validate:"gte=0"`
}

type CreditsConfig struct {
	AudienceThreshold  int `mapstructure:"audience_threshold" validate:"gte=0"`
	ComedyBonusDivisor int `mapstructure:"comedy_bonus_divisor" validate:"gt=0"`
}

func NewConfig() (*Configuration, error) {
	// .env is optional, real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/playbill")

	v.SetEnvPrefix("PLAYBILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
		fmt.Fprintf(os.Stderr, "No config file found, using defaults: %v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// setDefaults registers every key so env overrides work without a config file
func setDefaults(v *viper.Viper) {
	d := GetDefaultConfig()

	v.SetDefault("deployment.mode", d.Deployment.Mode)
	v.SetDefault("server.address", d.Server.Address)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("storage.type", d.Storage.Type)

	v.SetDefault("postgres.host", d.Postgres.Host)
	v.SetDefault("postgres.port", d.Postgres.Port)
	v.SetDefault("postgres.user", d.Postgres.User)
	v.SetDefault("postgres.password", d.Postgres.Password)
	v.SetDefault("postgres.dbname", d.Postgres.DBName)
	v.SetDefault("postgres.sslmode", d.Postgres.SSLMode)
	v.SetDefault("postgres.max_open_conns", d.Postgres.MaxOpenConns)
	v.SetDefault("postgres.max_idle_conns", d.Postgres.MaxIdleConns)
	v.SetDefault("postgres.conn_max_lifetime_minutes", d.Postgres.ConnMaxLifetimeMinutes)
	v.SetDefault("postgres.connect_max_retries", d.Postgres.ConnectMaxRetries)

	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.expiration_minutes", d.Cache.ExpirationMinutes)

	v.SetDefault("sentry.enabled", d.Sentry.Enabled)
	v.SetDefault("sentry.dsn", d.Sentry.DSN)
	v.SetDefault("sentry.environment", d.Sentry.Environment)
	v.SetDefault("sentry.sample_rate", d.Sentry.SampleRate)

	v.SetDefault("pricing.currency", d.Pricing.Currency)
	v.SetDefault("pricing.tragedy.base_amount", d.Pricing.Tragedy.BaseAmount)
	v.SetDefault("pricing.tragedy.audience_threshold", d.Pricing.Tragedy.AudienceThreshold)
	v.SetDefault("pricing.tragedy.per_seat_over_threshold", d.Pricing.Tragedy.PerSeatOverThreshold)
	v.SetDefault("pricing.comedy.base_amount", d.Pricing.Comedy.BaseAmount)
	v.SetDefault("pricing.comedy.audience_threshold", d.Pricing.Comedy.AudienceThreshold)
	v.SetDefault("pricing.comedy.over_threshold_flat", d.Pricing.Comedy.OverThresholdFlat)
	v.SetDefault("pricing.comedy.per_seat_over_threshold", d.Pricing.Comedy.PerSeatOverThreshold)
	v.SetDefault("pricing.comedy.per_seat", d.Pricing.Comedy.PerSeat)
	v.SetDefault("pricing.credits.audience_threshold", d.Pricing.Credits.AudienceThreshold)
	v.SetDefault("pricing.credits.comedy_bonus_divisor", d.Pricing.Credits.ComedyBonusDivisor)
}

// GetDefaultConfig returns a default configuration for local development.
// This is useful for running scripts, the CLI and tests.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelInfo},
		Storage:    StorageConfig{Type: types.StorageTypeMemory},
		Postgres: PostgresConfig{
			Host:                   "localhost",
			Port:                   5432,
			User:                   "playbill",
			DBName:                 "playbill",
			SSLMode:                "disable",
			MaxOpenConns:           10,
			MaxIdleConns:           5,
			ConnMaxLifetimeMinutes: 30,
			ConnectMaxRetries:      5,
		},
		Cache: CacheConfig{
			Enabled:           true,
			ExpirationMinutes: 30,
		},
		Sentry: SentryConfig{
			Environment: "local",
			SampleRate:  1.0,
		},
		Pricing: DefaultPricingConfig(),
	}
}

// DefaultPricingConfig returns the reference rule tables
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		Currency: types.DefaultCurrency,
		Tragedy: TragedyPricingConfig{
			BaseAmount:           40000,
			AudienceThreshold:    30,
			PerSeatOverThreshold: 1000,
		},
		Comedy: ComedyPricingConfig{
			BaseAmount:           30000,
			AudienceThreshold:    20,
			OverThresholdFlat:    10000,
			PerSeatOverThreshold: 500,
			PerSeat:              300,
		},
		Credits: CreditsConfig{
			AudienceThreshold:  30,
			ComedyBonusDivisor: 5,
		},
	}
}

func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		c.User,
		c.Password,
		c.DBName,
		c.Host,
		c.Port,
		c.SSLMode,
	)
}
