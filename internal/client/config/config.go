// Package config loads runtime configuration for the todokeeper CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file given with -c or -config.
//  3. Command-line flags.
//
// Supported flags
//
//	-a string   address:port of the gRPC endpoint
//	-i int      online status check interval (seconds)
//	-r int      per-request timeout (seconds)
//	-u int      largest photo the server accepts (bytes)
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the CLI.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	RequestTimeout      time.Duration
	// MaxUploadBytes mirrors the server setting so photo messages of that
	// size are accepted in both directions.
	MaxUploadBytes int64
}

// LoadDefaults populates c with defaults pointing at a local server.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 5 * time.Second
	c.MaxUploadBytes = 5 << 20
}

// LoadConfig builds a Config from defaults, the JSON file and flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, os.Args[1:]); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseFlags(cfg, os.Args[1:]); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}

	return cfg, nil
}
