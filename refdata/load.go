package refdata

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// DefaultNoopEventID names the event that does nothing when drawn.
const DefaultNoopEventID = "nothing"

// Parse decodes and validates a YAML document.
func Parse(raw []byte) (*Data, error) {
	d := &Data{}
	if err := yaml.Unmarshal(raw, d); err != nil {
		return nil, fmt.Errorf("parse reference data: %w", err)
	}
	if d.NoopEventID == "" {
		d.NoopEventID = DefaultNoopEventID
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid reference data: %w", err)
	}
	return d, nil
}

// Load reads reference data from path. An empty path yields the built-in
// tables.
func Load(path string) (*Data, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference data: %w", err)
	}
	return Parse(raw)
}

// Default returns the built-in tables.
func Default() (*Data, error) {
	return Parse(defaultsYAML)
}

// Validate checks the invariants the engine relies on.
func (d *Data) Validate() error {
	if len(d.Professions) == 0 {
		return fmt.Errorf("at least one profession is required")
	}
	for _, p := range d.Professions {
		if p.ID == "" {
			return fmt.Errorf("profession id is required")
		}
		if p.SalaryMin <= 0 || p.SalaryMax < p.SalaryMin {
			return fmt.Errorf("profession %s: salary range is invalid", p.ID)
		}
		if p.StudentLoan != nil && (p.StudentLoan.Principal <= 0 || p.StudentLoan.TermMonths <= 0) {
			return fmt.Errorf("profession %s: student loan needs principal and term", p.ID)
		}
	}

	seen := map[string]bool{}
	for _, e := range d.Events {
		if e.ID == "" {
			return fmt.Errorf("event id is required")
		}
		if seen[e.ID] {
			return fmt.Errorf("duplicate event %s", e.ID)
		}
		seen[e.ID] = true
		if e.Weight <= 0 {
			return fmt.Errorf("event %s: weight must be positive", e.ID)
		}
		if e.Cooldown < 0 {
			return fmt.Errorf("event %s: cooldown must not be negative", e.ID)
		}
		if e.CostRange.Min() > e.CostRange.Max() {
			return fmt.Errorf("event %s: cost range min exceeds max", e.ID)
		}
	}
	if len(d.Events) > 0 && !seen[d.NoopEventID] {
		return fmt.Errorf("no-op event %q is not defined", d.NoopEventID)
	}

	for _, v := range d.Vehicles {
		if v.Price <= 0 {
			return fmt.Errorf("vehicle %s: price must be positive", v.ID)
		}
	}
	for _, p := range d.Properties {
		if p.BasePrice <= 0 {
			return fmt.Errorf("property %s: base price must be positive", p.ID)
		}
	}
	for _, group := range [][]Security{d.Stocks, d.Cryptos} {
		for _, s := range group {
			if s.Symbol == "" || s.StartPrice <= 0 {
				return fmt.Errorf("security %q: symbol and start price are required", s.Symbol)
			}
		}
	}
	for _, s := range d.Splits {
		if _, ok := d.Stock(s.Symbol); !ok {
			return fmt.Errorf("split for unknown stock %s", s.Symbol)
		}
		if s.Ratio <= 0 || s.Month < 1 || s.Month > 12 {
			return fmt.Errorf("split %s %04d-%02d is invalid", s.Symbol, s.Year, s.Month)
		}
	}
	for _, c := range d.Conversations {
		if c.With != "spouse" && c.With != "child" {
			return fmt.Errorf("conversation with %q: must be spouse or child", c.With)
		}
	}
	return nil
}
