package utils

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Booking  BookingConfig
}

type AppConfig struct {
	Name            string
	Port            string
	Debug           bool
	LogPath         string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
	Migrate  bool
}

// BookingConfig holds the business constants of the seat engine.
type BookingConfig struct {
	PairThreshold  float64
	ServiceFee     float64
	Tax            float64
	CommissionRate float64
	SessionTTL     time.Duration // 0 disables expiry
}

func LoadConfig() (*Config, error) {
	return LoadConfigFile(".env")
}

// LoadConfigFile reads an env-style file; a missing file is fine and leaves
// the process environment and defaults in charge.
func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	v.SetDefault("APP_NAME", "bus-ticketing")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIGRATE", true)
	v.SetDefault("BOOKING_PAIR_THRESHOLD", 70.0)
	v.SetDefault("BOOKING_SERVICE_FEE", 2.00)
	v.SetDefault("BOOKING_TAX", 3.50)
	v.SetDefault("BOOKING_COMMISSION_RATE", 0.10)
	v.SetDefault("BOOKING_SESSION_TTL_MINUTES", 0)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:            v.GetString("APP_NAME"),
			Port:            v.GetString("PORT"),
			Debug:           v.GetBool("DEBUG"),
			LogPath:         v.GetString("LOG_PATH"),
			ShutdownTimeout: time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
			Migrate:  v.GetBool("DB_MIGRATE"),
		},
		Booking: BookingConfig{
			PairThreshold:  v.GetFloat64("BOOKING_PAIR_THRESHOLD"),
			ServiceFee:     v.GetFloat64("BOOKING_SERVICE_FEE"),
			Tax:            v.GetFloat64("BOOKING_TAX"),
			CommissionRate: v.GetFloat64("BOOKING_COMMISSION_RATE"),
			SessionTTL:     time.Duration(v.GetInt("BOOKING_SESSION_TTL_MINUTES")) * time.Minute,
		},
	}

	return config, nil
}
