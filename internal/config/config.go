package config

import (
	"fmt"
	"path/filepath"
	"time"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Storage Ingest Query Jobs Retention Authentication

type Configuration struct {
	Server    Server         `debugmap:"visible"`
	Storage   Storage        `debugmap:"visible"`
	Ingest    Ingest         `debugmap:"visible"`
	Query     Query          `debugmap:"visible"`
	Jobs      Jobs           `debugmap:"visible"`
	Retention Retention      `debugmap:"visible"`
	Auth      Authentication `debugmap:"visible"`
	LogFormat string         `debugmap:"visible" default:"console"`
	LogLevel  string         `debugmap:"visible" default:"debug"`
}

type Server struct {
	ServerMode     string `debugmap:"visible" default:"dev"`
	HTTPPort       int    `debugmap:"visible" default:"8000"`
	MetricsEnabled bool   `debugmap:"visible" default:"true"`
}

type Storage struct {
	Driver      string        `debugmap:"visible" default:"duckdb"`
	DataFolder  string        `debugmap:"visible"`
	DBFile      string        `debugmap:"visible" default:"skuledger.duckdb"`
	OpenTimeout time.Duration `debugmap:"visible" default:"30s"`
}

// DatabasePath returns the database location. An empty data folder keeps the
// database in memory.
func (s Storage) DatabasePath() string {
	if s.DataFolder == "" {
		return ":memory:"
	}
	return filepath.Join(s.DataFolder, s.DBFile)
}

type Ingest struct {
	LowStockThreshold int `debugmap:"visible" default:"5"`
}

type Query struct {
	DefaultPageSize        int `debugmap:"visible" default:"100"`
	MaxPageSize            int `debugmap:"visible"`
	StatsLowStockThreshold int `debugmap:"visible" default:"20"`
	LowStockDefault        int `debugmap:"visible" default:"10"`
	SearchDefaultLimit     int `debugmap:"visible" default:"10"`
	TopMoversDefaultLimit  int `debugmap:"visible" default:"10"`
}

type Jobs struct {
	MaxFinishedJobs int `debugmap:"visible" default:"500"`
}

type Retention struct {
	SnapshotRetentionDays int `debugmap:"visible" default:"90"`
}

type Authentication struct {
	Enabled   bool   `debugmap:"visible" default:"false"`
	JWTSecret string `debugmap:"hidden"`
}

// Validate rejects settings the services cannot run with.
func (c *Configuration) Validate() error {
	switch c.Storage.Driver {
	case "duckdb", "sqlite":
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}
	if c.Query.MaxPageSize < 0 {
		return fmt.Errorf("max page size must not be negative, got %d", c.Query.MaxPageSize)
	}
	if c.Query.DefaultPageSize < 1 {
		return fmt.Errorf("default page size must be positive, got %d", c.Query.DefaultPageSize)
	}
	if c.Query.MaxPageSize > 0 && c.Query.DefaultPageSize > c.Query.MaxPageSize {
		return fmt.Errorf("default page size must be within [1, %d], got %d", c.Query.MaxPageSize, c.Query.DefaultPageSize)
	}
	if c.Ingest.LowStockThreshold < 0 {
		return fmt.Errorf("low stock threshold must not be negative, got %d", c.Ingest.LowStockThreshold)
	}
	if c.Jobs.MaxFinishedJobs < 1 {
		return fmt.Errorf("max finished jobs must be positive, got %d", c.Jobs.MaxFinishedJobs)
	}
	if c.Auth.Enabled && c.Auth.JWTSecret == "" {
		return fmt.Errorf("authentication is enabled but no jwt secret is set")
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("unsupported log format %q", c.LogFormat)
	}
	return nil
}
