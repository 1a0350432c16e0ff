package cmd

import (
	"fmt"
	"time"
)

// Serial store kinds.
const (
	SerialStorePostgres = "postgres"
	SerialStoreRedis    = "redis"
	SerialStoreMemory   = "memory"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	SerialStore        string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	SerialCheckTimeout time.Duration

	AvailabilityRate  float64
	AvailabilityBurst int

	ReminderSchedule string
	Locale           string
	LogLevel         string
}

// HasDatabase reports whether a postgres database is configured. Without one the
// application keeps orders and serial reservations in memory.
func (c Config) HasDatabase() bool {
	return c.DBName != ""
}

// DSN is the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// Validate checks the settings that have no safe default.
func (c Config) Validate() error {
	if c.HTTPPort == "" {
		return fmt.Errorf("HTTP_PORT is required")
	}
	switch c.SerialStore {
	case SerialStorePostgres, SerialStoreMemory:
	case SerialStoreRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when SERIAL_STORE=redis")
		}
	default:
		return fmt.Errorf("SERIAL_STORE must be postgres, redis or memory, got %q", c.SerialStore)
	}
	return nil
}
