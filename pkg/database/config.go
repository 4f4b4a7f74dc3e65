package database

import (
	"time"

	"github.com/Alijeyrad/complaintdesk/config"
)

// Config holds the Postgres connection and pool settings for the complaint store.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string

	// Connection pooling
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int

	// Migration control
	AutoMigrate bool

	// Query logging
	EnableLogging        bool
	SlowQueryThresholdMs int
}

func (c Config) DSN() string {
	return buildDSN(c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ConnMaxLifetime returns the connection max lifetime as a duration
func (c Config) ConnMaxLifetime() time.Duration {
	if c.ConnMaxLifetimeMin <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.ConnMaxLifetimeMin) * time.Minute
}

// SlowQueryThreshold returns the slow query threshold as a duration
func (c Config) SlowQueryThreshold() time.Duration {
	if c.SlowQueryThresholdMs <= 0 {
		return 200 * time.Millisecond
	}
	return time.Duration(c.SlowQueryThresholdMs) * time.Millisecond
}

func DefaultConfig() Config {
	return Config{
		Host:                 "localhost",
		Port:                 5432,
		SSLMode:              "disable",
		MaxOpenConns:         25,
		MaxIdleConns:         5,
		ConnMaxLifetimeMin:   5,
		AutoMigrate:          false,
		EnableLogging:        false,
		SlowQueryThresholdMs: 200,
	}
}

// FromCentralConfig overlays the set fields of config.DatabaseConfig on DefaultConfig.
func FromCentralConfig(c config.DatabaseConfig) Config {
	out := DefaultConfig()
	out.User = c.User
	out.Password = c.Password
	out.DBName = c.DBName
	out.AutoMigrate = c.Migrations.AutoMigrate
	out.EnableLogging = c.Logging.Enabled

	if c.Host != "" {
		out.Host = c.Host
	}
	if c.Port > 0 {
		out.Port = c.Port
	}
	if c.SSLMode != "" {
		out.SSLMode = c.SSLMode
	}
	if c.Pool.MaxOpenConns > 0 {
		out.MaxOpenConns = c.Pool.MaxOpenConns
	}
	if c.Pool.MaxIdleConns > 0 {
		out.MaxIdleConns = c.Pool.MaxIdleConns
	}
	if c.Pool.ConnMaxLifetimeMin > 0 {
		out.ConnMaxLifetimeMin = c.Pool.ConnMaxLifetimeMin
	}
	if c.Logging.SlowQueryThresholdMs > 0 {
		out.SlowQueryThresholdMs = c.Logging.SlowQueryThresholdMs
	}
	return out
}
