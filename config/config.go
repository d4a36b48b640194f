package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rustyeddy/sizer/market"
	"github.com/rustyeddy/sizer/risk"
	"gopkg.in/yaml.v3"
)

// Config holds everything the CLI can pre-load: form defaults, tick-table
// extensions, and plan-journal settings.
type Config struct {
	Defaults    DefaultsConfig     `json:"defaults" yaml:"defaults"`
	Instruments map[string]float64 `json:"instruments,omitempty" yaml:"instruments,omitempty"`
	Journal     JournalConfig      `json:"journal" yaml:"journal"`
}

// DefaultsConfig pre-fills form fields. Zero values leave a field blank.
type DefaultsConfig struct {
	MaxContracts   int     `json:"max_contracts,omitempty" yaml:"max_contracts,omitempty"`
	MaxLoss        float64 `json:"max_loss,omitempty" yaml:"max_loss,omitempty"`
	DailyLossCap   float64 `json:"daily_loss_cap,omitempty" yaml:"daily_loss_cap,omitempty"`
	ProfitTarget   float64 `json:"profit_target,omitempty" yaml:"profit_target,omitempty"`
	TradesToBust   int     `json:"trades_to_bust,omitempty" yaml:"trades_to_bust,omitempty"`
	StopTicks      float64 `json:"stop_ticks,omitempty" yaml:"stop_ticks,omitempty"`
	Symbol         string  `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	TickValue      float64 `json:"tick_value,omitempty" yaml:"tick_value,omitempty"` // custom symbol only
	ConsistencyOn  bool    `json:"consistency_on,omitempty" yaml:"consistency_on,omitempty"`
	ConsistencyPct float64 `json:"consistency_pct,omitempty" yaml:"consistency_pct,omitempty"`
}

// JournalConfig configures where saved plans go. Type "none" (or empty)
// disables journaling.
type JournalConfig struct {
	Type      string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	PlansFile string `json:"plans_file,omitempty" yaml:"plans_file,omitempty"`
	DBPath    string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// TickTable returns the built-in table with this config's overrides and
// extensions applied.
func (c *Config) TickTable() map[string]float64 {
	return market.Merge(c.Instruments)
}

// Snapshot renders the defaults into a form snapshot.
func (c *Config) Snapshot() risk.Snapshot {
	d := c.Defaults
	s := risk.Snapshot{
		Symbol:        d.Symbol,
		ConsistencyOn: d.ConsistencyOn,
	}
	if d.MaxContracts > 0 {
		s.MaxContracts = strconv.Itoa(d.MaxContracts)
	}
	if d.MaxLoss > 0 {
		s.MaxLoss = f(d.MaxLoss)
	}
	if d.DailyLossCap > 0 {
		s.DailyLossCap = f(d.DailyLossCap)
	}
	if d.ProfitTarget > 0 {
		s.ProfitTarget = f(d.ProfitTarget)
	}
	if d.TradesToBust > 0 {
		s.TradesToBust = strconv.Itoa(d.TradesToBust)
	}
	if d.StopTicks > 0 {
		s.StopTicks = f(d.StopTicks)
	}
	if d.TickValue > 0 {
		s.CustomTickValue = f(d.TickValue)
	}
	if d.ConsistencyPct > 0 {
		s.ConsistencyPct = f(d.ConsistencyPct)
	}
	return s
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
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

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
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

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	for sym, tv := range c.Instruments {
		if sym == "" {
			return fmt.Errorf("instruments: empty symbol")
		}
		if tv <= 0 {
			return fmt.Errorf("instruments.%s: tick value must be positive", sym)
		}
	}

	if sym := c.Defaults.Symbol; sym != "" && sym != market.SymbolCustom {
		if _, ok := c.TickTable()[sym]; !ok {
			return fmt.Errorf("defaults.symbol: unknown instrument %q", sym)
		}
	}
	if c.Defaults.Symbol == market.SymbolCustom && c.Defaults.TickValue <= 0 {
		return fmt.Errorf("defaults.tick_value required for the custom instrument")
	}

	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.PlansFile == "" {
			return fmt.Errorf("journal.plans_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal.db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}

	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			MaxContracts: 3,
			MaxLoss:      2500,
			DailyLossCap: 500,
			ProfitTarget: 3000,
			TradesToBust: 10,
			StopTicks:    12,
			Symbol:       "ES",
		},
		Journal: JournalConfig{
			Type: "none",
		},
	}
}
