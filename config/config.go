package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rustyeddy/tycoon/session"
	"github.com/rustyeddy/tycoon/sim"
	"gopkg.in/yaml.v3"
)

// Config represents the complete game configuration
type Config struct {
	Session SessionConfig `json:"session" yaml:"session"`
	Engine  EngineConfig  `json:"engine" yaml:"engine"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Save    SaveConfig    `json:"save" yaml:"save"`
	Server  ServerConfig  `json:"server" yaml:"server"`
}

// SessionConfig sets the starting position of a new game
type SessionConfig struct {
	InitialCash  float64 `json:"initial_cash" yaml:"initial_cash"`
	InitialPrice float64 `json:"initial_price" yaml:"initial_price"`
}

// EngineConfig contains the market model parameters
type EngineConfig struct {
	FeeRate         float64 `json:"fee_rate" yaml:"fee_rate"`
	NewsProbability float64 `json:"news_probability" yaml:"news_probability"`
	Volatility      float64 `json:"volatility" yaml:"volatility"`
	Seed            uint64  `json:"seed,omitempty" yaml:"seed,omitempty"` // 0 picks a random seed
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type      string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	FillsFile string `json:"fills_file,omitempty" yaml:"fills_file,omitempty"`
	DaysFile  string `json:"days_file,omitempty" yaml:"days_file,omitempty"`
	DBPath    string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// SaveConfig says where the CLI keeps the running game
type SaveConfig struct {
	Path string `json:"path" yaml:"path"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr        string   `json:"addr" yaml:"addr"`
	CORSOrigins []string `json:"cors_origins,omitempty" yaml:"cors_origins,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Start from defaults so a partial file only overrides what it names.
	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Zero would leave nothing to trade and P/L is measured against it.
	if !(c.Session.InitialCash > 0) {
		return fmt.Errorf("session.initial_cash must be positive")
	}
	if c.Session.InitialPrice < 1 {
		return fmt.Errorf("session.initial_price must be at least 1")
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.FillsFile == "" || c.Journal.DaysFile == "" {
			return fmt.Errorf("journal fills_file and days_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	if c.Save.Path == "" {
		return fmt.Errorf("save.path is required")
	}
	return nil
}

// Params maps the engine section onto simulation parameters.
func (c *Config) Params() sim.Params {
	p := sim.DefaultParams()
	p.FeeRate = c.Engine.FeeRate
	p.NewsProbability = c.Engine.NewsProbability
	p.Volatility = c.Engine.Volatility
	return p
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Session: SessionConfig{
			InitialCash:  session.DefaultCash,
			InitialPrice: session.DefaultPrice,
		},
		Engine: EngineConfig{
			FeeRate:         sim.DefaultFeeRate,
			NewsProbability: sim.DefaultNewsProbability,
			Volatility:      sim.DefaultVolatility,
		},
		Journal: JournalConfig{
			Type: "none",
		},
		Save: SaveConfig{
			Path: "tycoon.json",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}
