package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/lifesim/game"
	"github.com/rustyeddy/lifesim/ledger"
	"github.com/rustyeddy/lifesim/player"
)

// Config represents the complete simulation configuration
type Config struct {
	Player     PlayerConfig     `json:"player" yaml:"player"`
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Rules      RulesConfig      `json:"rules" yaml:"rules"`
	Data       DataConfig       `json:"data" yaml:"data"`
	Journal    JournalConfig    `json:"journal" yaml:"journal"`
	Policy     PolicyConfig     `json:"policy" yaml:"policy"`
}

// PlayerConfig describes the character to create
type PlayerConfig struct {
	Name           string       `json:"name" yaml:"name"`
	Profession     string       `json:"profession" yaml:"profession"`
	StartAge       int          `json:"start_age" yaml:"start_age"`
	Happiness      int          `json:"happiness" yaml:"happiness"`
	Stats          player.Stats `json:"stats" yaml:"stats"`
	MaxStats       player.Stats `json:"max_stats" yaml:"max_stats"`
	StarterVehicle string       `json:"starter_vehicle,omitempty" yaml:"starter_vehicle,omitempty"`
}

// SimulationConfig contains the calendar and the seed
type SimulationConfig struct {
	Seed       int64 `json:"seed" yaml:"seed"`
	StartYear  int   `json:"start_year" yaml:"start_year"`
	StartMonth int   `json:"start_month" yaml:"start_month"`
	EndYear    int   `json:"end_year" yaml:"end_year"`
	EndAge     int   `json:"end_age" yaml:"end_age"`
	MaxTurns   int   `json:"max_turns,omitempty" yaml:"max_turns,omitempty"` // 0 means until the game ends
}

// RulesConfig holds the tax and banking rates
type RulesConfig struct {
	FederalRate      float64 `json:"federal_rate" yaml:"federal_rate"`
	FICARate         float64 `json:"fica_rate" yaml:"fica_rate"`
	HealthInsurance  float64 `json:"health_insurance" yaml:"health_insurance"`
	SavingsAPY       float64 `json:"savings_apy" yaml:"savings_apy"`
	BankruptcyMonths int     `json:"bankruptcy_months" yaml:"bankruptcy_months"`
}

// DataConfig points at reference data; empty uses the built-in tables
type DataConfig struct {
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type         string `json:"type" yaml:"type"` // "csv", "sqlite" or "none"
	TurnsFile    string `json:"turns_file,omitempty" yaml:"turns_file,omitempty"`
	CashFlowFile string `json:"cashflow_file,omitempty" yaml:"cashflow_file,omitempty"`
	DBPath       string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// PolicyConfig picks what the autopilot does between turns
type PolicyConfig struct {
	Type     string  `json:"type" yaml:"type"` // "none" or "saver"
	KeepCash float64 `json:"keep_cash,omitempty" yaml:"keep_cash,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg = Default()
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile saves configuration as YAML or JSON depending on the extension
func (c *Config) SaveToFile(path string) error {
	var (
		data []byte
		err  error
	)
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
	p, s, r := c.Player, c.Simulation, c.Rules

	if p.Profession == "" {
		return fmt.Errorf("player.profession is required")
	}
	if p.StartAge < 16 {
		return fmt.Errorf("player.start_age must be at least 16")
	}
	if p.Happiness < player.MinHappiness || p.Happiness > player.MaxHappiness {
		return fmt.Errorf("player.happiness must be between %d and %d", player.MinHappiness, player.MaxHappiness)
	}
	if err := p.Stats.Validate(p.MaxStats); err != nil {
		return fmt.Errorf("player.stats: %w", err)
	}

	if s.StartMonth < 1 || s.StartMonth > 12 {
		return fmt.Errorf("simulation.start_month must be between 1 and 12")
	}
	if s.EndYear < s.StartYear {
		return fmt.Errorf("simulation.end_year must not be before start_year")
	}
	if s.EndAge <= p.StartAge {
		return fmt.Errorf("simulation.end_age must be greater than player.start_age")
	}
	if s.MaxTurns < 0 {
		return fmt.Errorf("simulation.max_turns must not be negative")
	}

	for name, v := range map[string]float64{
		"federal_rate": r.FederalRate,
		"fica_rate":    r.FICARate,
		"savings_apy":  r.SavingsAPY,
	} {
		if v < 0 || v >= 1 {
			return fmt.Errorf("rules.%s must be between 0 and 1", name)
		}
	}
	if r.HealthInsurance < 0 {
		return fmt.Errorf("rules.health_insurance must not be negative")
	}
	if r.BankruptcyMonths <= 0 {
		return fmt.Errorf("rules.bankruptcy_months must be positive")
	}

	switch c.Journal.Type {
	case "none":
	case "csv":
		if c.Journal.TurnsFile == "" || c.Journal.CashFlowFile == "" {
			return fmt.Errorf("journal turns_file and cashflow_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'csv', 'sqlite' or 'none'")
	}

	switch c.Policy.Type {
	case "none":
	case "saver":
		if c.Policy.KeepCash < 0 {
			return fmt.Errorf("policy.keep_cash must not be negative")
		}
	default:
		return fmt.Errorf("policy.type must be 'none' or 'saver'")
	}
	return nil
}

// Rates converts the rules section for the ledger
func (c *Config) Rates() ledger.Rates {
	return ledger.Rates{
		Federal:          c.Rules.FederalRate,
		FICA:             c.Rules.FICARate,
		Health:           c.Rules.HealthInsurance,
		SavingsAPY:       c.Rules.SavingsAPY,
		BankruptcyMonths: c.Rules.BankruptcyMonths,
	}
}

// GameOptions builds the options for game.New
func (c *Config) GameOptions() game.Options {
	return game.Options{
		Seed:           c.Simulation.Seed,
		Name:           c.Player.Name,
		ProfessionID:   c.Player.Profession,
		StartAge:       c.Player.StartAge,
		StartYear:      c.Simulation.StartYear,
		StartMonth:     c.Simulation.StartMonth,
		EndYear:        c.Simulation.EndYear,
		EndAge:         c.Simulation.EndAge,
		Happiness:      c.Player.Happiness,
		Stats:          c.Player.Stats,
		MaxStats:       c.Player.MaxStats,
		StarterVehicle: c.Player.StarterVehicle,
		Rates:          c.Rates(),
	}
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	opts := game.DefaultOptions()
	rates := ledger.DefaultRates()
	return &Config{
		Player: PlayerConfig{
			Name:           opts.Name,
			Profession:     opts.ProfessionID,
			StartAge:       opts.StartAge,
			Happiness:      opts.Happiness,
			Stats:          opts.Stats,
			MaxStats:       opts.MaxStats,
			StarterVehicle: opts.StarterVehicle,
		},
		Simulation: SimulationConfig{
			Seed:       opts.Seed,
			StartYear:  opts.StartYear,
			StartMonth: opts.StartMonth,
			EndYear:    opts.EndYear,
			EndAge:     opts.EndAge,
		},
		Rules: RulesConfig{
			FederalRate:      rates.Federal,
			FICARate:         rates.FICA,
			HealthInsurance:  rates.Health,
			SavingsAPY:       rates.SavingsAPY,
			BankruptcyMonths: rates.BankruptcyMonths,
		},
		Journal: JournalConfig{
			Type:         "csv",
			TurnsFile:    "./turns.csv",
			CashFlowFile: "./cashflow.csv",
		},
		Policy: PolicyConfig{
			Type:     "saver",
			KeepCash: 3000,
		},
	}
}
