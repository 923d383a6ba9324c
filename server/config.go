package server

import (
	"log"
	"os"
	"time"
)

// Config holds HTTP server settings.
type Config struct {
	Addr             string
	DefaultAlgorithm Algorithm
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	Logger           *log.Logger
}

// DefaultConfig listens on :8080 and routes with Dijkstra by default.
func DefaultConfig() Config {
	return Config{
		Addr:             ":8080",
		DefaultAlgorithm: Dijkstra,
		ReadTimeout:      10 * time.Second,
		WriteTimeout:     30 * time.Second,
		ShutdownTimeout:  5 * time.Second,
		Logger:           log.New(os.Stderr, "roadgraph ", log.LstdFlags),
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Addr == "" {
		c.Addr = d.Addr
	}
	if c.DefaultAlgorithm == "" {
		c.DefaultAlgorithm = d.DefaultAlgorithm
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = d.ReadTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	if c.Logger == nil {
		c.Logger = d.Logger
	}
	return c
}
