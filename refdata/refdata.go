// Package refdata holds the static tables a simulation is built from:
// professions, life events, pets, side jobs, vehicles, homes, securities
// and the fixed numbers behind one-off actions.
//
// Tables are parsed once, validated, and then only read.
package refdata

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/lifesim/player"
	"gopkg.in/yaml.v3"
)

// CostType says how an event's cost range is interpreted.
type CostType int

const (
	// Fixed costs are drawn in dollars from the range.
	Fixed CostType = iota
	// Percentage costs are a percentage of current cash.
	Percentage
)

func (c CostType) String() string {
	if c == Percentage {
		return "percentage"
	}
	return "fixed"
}

func ParseCostType(s string) (CostType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fixed":
		return Fixed, nil
	case "percentage":
		return Percentage, nil
	}
	return Fixed, fmt.Errorf("unknown cost type %q", s)
}

func (c *CostType) UnmarshalYAML(n *yaml.Node) error {
	ct, err := ParseCostType(n.Value)
	if err != nil {
		return err
	}
	*c = ct
	return nil
}

func (c CostType) MarshalYAML() (any, error) { return c.String(), nil }

// Range is an inclusive [min, max] pair, written as a two element list.
type Range [2]float64

func (r Range) Min() float64  { return r[0] }
func (r Range) Max() float64  { return r[1] }
func (r Range) Mean() float64 { return (r[0] + r[1]) / 2 }

type StudentLoan struct {
	Principal  float64 `yaml:"principal"`
	Rate       float64 `yaml:"rate"`
	TermMonths int     `yaml:"term_months"`
}

type Profession struct {
	ID          string       `yaml:"id"`
	Title       string       `yaml:"title"`
	SalaryMin   float64      `yaml:"salary_min"`
	SalaryMax   float64      `yaml:"salary_max"`
	RaiseRate   float64      `yaml:"raise_rate"`
	FoodCost    float64      `yaml:"food_cost"`
	FixedCosts  float64      `yaml:"fixed_costs"`
	InitialCash float64      `yaml:"initial_cash"`
	StudentLoan *StudentLoan `yaml:"student_loan,omitempty"`
}

type EventDefinition struct {
	ID          string         `yaml:"id"`
	Description string         `yaml:"description"`
	Weight      float64        `yaml:"weight"`
	Cooldown    int            `yaml:"cooldown"`
	CostRange   Range          `yaml:"cost_range"`
	CostType    CostType       `yaml:"cost_type"`
	Effects     player.Effects `yaml:"effects"`
}

// AvgCost is the mean of the cost range. Positive means the event hurts.
func (e EventDefinition) AvgCost() float64 { return e.CostRange.Mean() }

type Pet struct {
	ID               string  `yaml:"id"`
	Name             string  `yaml:"name"`
	Price            float64 `yaml:"price"`
	MonthlyCost      float64 `yaml:"monthly_cost"`
	Happiness        int     `yaml:"happiness"`
	MonthlyHappiness int     `yaml:"monthly_happiness"`
}

type SideJob struct {
	ID       string       `yaml:"id"`
	Name     string       `yaml:"name"`
	Pay      Range        `yaml:"pay"`
	Energy   int          `yaml:"energy"`
	Cooldown int          `yaml:"cooldown"`
	Requires player.Stats `yaml:"requires"`
}

type Vehicle struct {
	ID             string  `yaml:"id"`
	Name           string  `yaml:"name"`
	Price          float64 `yaml:"price"`
	Depreciation   float64 `yaml:"depreciation"`
	Maintenance    float64 `yaml:"maintenance"`
	Insurance      float64 `yaml:"insurance"`
	LicensePlate   float64 `yaml:"license_plate"`
	LoanRate       float64 `yaml:"loan_rate"`
	LoanTermMonths int     `yaml:"loan_term_months"`
}

type Property struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Type        string  `yaml:"type"`
	BasePrice   float64 `yaml:"base_price"`
	BaseRent    float64 `yaml:"base_rent"`
	Maintenance float64 `yaml:"maintenance"`
	PropertyTax float64 `yaml:"property_tax"`
}

type Rental struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	RentPrice float64 `yaml:"rent_price"`
	Deposit   float64 `yaml:"deposit"`
}

type Learning struct {
	ID       string         `yaml:"id"`
	Name     string         `yaml:"name"`
	Cost     float64        `yaml:"cost"`
	Cooldown int            `yaml:"cooldown"`
	Effects  player.Effects `yaml:"effects"`
}

// Security is a stock or crypto symbol. When History has an entry for a
// month it is used verbatim, otherwise prices are generated from
// StartPrice, Trend and Volatility (both annual).
type Security struct {
	Symbol     string             `yaml:"symbol"`
	Name       string             `yaml:"name"`
	StartPrice float64            `yaml:"start_price"`
	Trend      float64            `yaml:"trend"`
	Volatility float64            `yaml:"volatility"`
	ListedFrom string             `yaml:"listed_from,omitempty"` // YYYY-MM
	History    map[string]float64 `yaml:"history,omitempty"`
}

type Split struct {
	Symbol string  `yaml:"symbol"`
	Year   int     `yaml:"year"`
	Month  int     `yaml:"month"`
	Ratio  float64 `yaml:"ratio"`
}

// RealEstateHistory carries monthly sale and rent indices keyed by YYYY-MM.
// A property's price is the index times its type multiplier.
type RealEstateHistory struct {
	Prices          map[string]float64 `yaml:"prices,omitempty"`
	Rents           map[string]float64 `yaml:"rents,omitempty"`
	TypeMultipliers map[string]float64 `yaml:"type_multipliers,omitempty"`
}

type Conversation struct {
	With      string `yaml:"with"` // spouse or child
	Message   string `yaml:"message"`
	Happiness int    `yaml:"happiness"`
}

type Lending struct {
	MortgageRate        float64 `yaml:"mortgage_rate"`
	MortgageTermMonths  int     `yaml:"mortgage_term_months"`
	MortgageDownPayment float64 `yaml:"mortgage_down_payment"`
	VehicleDownPayment  float64 `yaml:"vehicle_down_payment"`
}

type Parents struct {
	Cooldown  int     `yaml:"cooldown"`
	MaxAge    int     `yaml:"max_age"`
	Gift      Range   `yaml:"gift"`
	Happiness int     `yaml:"happiness"`
	MaxCash   float64 `yaml:"max_cash"`
}

type Lottery struct {
	Price       float64 `yaml:"price"`
	Jackpot     float64 `yaml:"jackpot"`
	JackpotOdds float64 `yaml:"jackpot_odds"`
	SmallPrize  float64 `yaml:"small_prize"`
	SmallOdds   float64 `yaml:"small_odds"`
}

type Data struct {
	Professions   []Profession       `yaml:"professions"`
	Events        []EventDefinition  `yaml:"events"`
	NoopEventID   string             `yaml:"noop_event"`
	Pets          []Pet              `yaml:"pets"`
	SideJobs      []SideJob          `yaml:"side_jobs"`
	Vehicles      []Vehicle          `yaml:"vehicles"`
	Properties    []Property         `yaml:"properties"`
	Rentals       []Rental           `yaml:"rentals"`
	Learning      []Learning         `yaml:"learning"`
	Stocks        []Security         `yaml:"stocks"`
	Cryptos       []Security         `yaml:"cryptos"`
	Splits        []Split            `yaml:"splits"`
	RealEstate    *RealEstateHistory `yaml:"real_estate,omitempty"`
	Conversations []Conversation     `yaml:"conversations"`
	Lending       Lending            `yaml:"lending"`
	Parents       Parents            `yaml:"parents"`
	Lottery       Lottery            `yaml:"lottery"`
}

func find[T any](items []T, key func(T) string, id string) (T, bool) {
	for _, it := range items {
		if key(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (d *Data) Profession(id string) (Profession, bool) {
	return find(d.Professions, func(p Profession) string { return p.ID }, id)
}

func (d *Data) Event(id string) (EventDefinition, bool) {
	return find(d.Events, func(e EventDefinition) string { return e.ID }, id)
}

func (d *Data) Pet(id string) (Pet, bool) {
	return find(d.Pets, func(p Pet) string { return p.ID }, id)
}

func (d *Data) SideJob(id string) (SideJob, bool) {
	return find(d.SideJobs, func(j SideJob) string { return j.ID }, id)
}

func (d *Data) Vehicle(id string) (Vehicle, bool) {
	return find(d.Vehicles, func(v Vehicle) string { return v.ID }, id)
}

func (d *Data) Property(id string) (Property, bool) {
	return find(d.Properties, func(p Property) string { return p.ID }, id)
}

func (d *Data) Rental(id string) (Rental, bool) {
	return find(d.Rentals, func(r Rental) string { return r.ID }, id)
}

func (d *Data) LearningEvent(id string) (Learning, bool) {
	return find(d.Learning, func(l Learning) string { return l.ID }, id)
}

func (d *Data) Stock(symbol string) (Security, bool) {
	return find(d.Stocks, func(s Security) string { return s.Symbol }, symbol)
}

func (d *Data) Crypto(symbol string) (Security, bool) {
	return find(d.Cryptos, func(s Security) string { return s.Symbol }, symbol)
}
