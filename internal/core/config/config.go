package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"5000"`

	// Database holds the Postgres connection settings.
	Database DatabaseConfig `mapstructure:",squash"`

	// Redis holds the statistics cache settings.
	Redis RedisConfig `mapstructure:",squash"`

	// Billing holds the charge computation settings.
	Billing BillingConfig `mapstructure:",squash"`

	// Invoice holds the document rendering settings.
	Invoice InvoiceConfig `mapstructure:",squash"`
}

// DatabaseConfig holds database connection details.
type DatabaseConfig struct {
	// URL is the Postgres connection string.
	URL string `mapstructure:"DATABASE_URL" required:"true"`
	// AutoMigrate applies pending migrations when the API starts.
	AutoMigrate bool `mapstructure:"DB_AUTO_MIGRATE" default:"true"`
}

// RedisConfig holds the cache connection details.
type RedisConfig struct {
	// URL is the Redis connection string (redis://[:password@]host[:port][/db]).
	URL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
	// StatsTTLSeconds is how long dashboard statistics stay cached. 0 disables caching.
	StatsTTLSeconds int `mapstructure:"STATS_CACHE_TTL_SECONDS" default:"30"`
}

// BillingConfig holds settings used when stamping charge records.
type BillingConfig struct {
	// Timezone is the IANA zone in which charge dates are bucketed into weeks and months.
	Timezone string `mapstructure:"BILLING_TIMEZONE" default:"America/Tegucigalpa"`
}

// InvoiceConfig holds the invoice header and PDF rendering settings.
type InvoiceConfig struct {
	CompanyName    string `mapstructure:"COMPANY_NAME" default:"VBOX"`
	CompanyTagline string `mapstructure:"COMPANY_TAGLINE" default:"Servicio de Courier y Casillero Virtual"`
	CompanyCity    string `mapstructure:"COMPANY_CITY" default:"San Pedro Sula, Honduras"`
	// BrowserBin points to a local Chromium binary. Empty lets rod download one.
	BrowserBin string `mapstructure:"BROWSER_BIN"`
	// RenderTimeoutSeconds bounds a single PDF render.
	RenderTimeoutSeconds int `mapstructure:"RENDER_TIMEOUT_SECONDS" default:"60"`
	// PageFormat is the paper size name (A4, Letter).
	PageFormat string `mapstructure:"PAGE_FORMAT" default:"A4"`
	// PageMarginInches is applied to all four sides.
	PageMarginInches float64 `mapstructure:"PAGE_MARGIN_INCHES" default:"0.5"`
}

// StatsTTL returns the statistics cache TTL as a duration.
func (c RedisConfig) StatsTTL() time.Duration {
	return time.Duration(c.StatsTTLSeconds) * time.Second
}

// RenderTimeout returns the render timeout as a duration.
func (c InvoiceConfig) RenderTimeout() time.Duration {
	return time.Duration(c.RenderTimeoutSeconds) * time.Second
}

// Location resolves the billing time zone, falling back to UTC.
func (c BillingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags binds every tagged field to its env key and registers defaults.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("bind env %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	default:
		return v.IsZero()
	}
}
