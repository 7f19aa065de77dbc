// Package player holds the mutable state tree of one simulated life: the
// character, their career, money, assets and family.
//
// A State is owned by a single caller and mutated in place by the engine
// packages; nothing here is safe for concurrent use.
package player

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/rustyeddy/lifesim/loan"
)

// Level is a career level. Levels only move forward.
type Level int

const (
	Junior Level = iota
	Regular
	Senior
)

func (l Level) String() string {
	switch l {
	case Junior:
		return "junior"
	case Regular:
		return "regular"
	case Senior:
		return "senior"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

type Career struct {
	ProfessionID string
	Title        string
	GrossAnnual  float64
	BaseRaise    float64
	Level        Level
	YearsAtLevel int

	// PromotionYear is the junior tenure (2 or 3) at which the promotion to
	// regular fires. Zero until it has been drawn.
	PromotionYear int
}

type Holding struct {
	Shares    float64
	TotalCost float64
}

// CostPerShare is the average price paid for the held shares.
func (h Holding) CostPerShare() float64 {
	if h.Shares == 0 {
		return 0
	}
	return h.TotalCost / h.Shares
}

type Portfolio struct {
	Cash    float64
	Bank    float64
	Savings float64
	Stocks  map[string]Holding
	Crypto  map[string]float64
}

type Car struct {
	ID           string
	VehicleID    string
	Name         string
	Value        float64
	Depreciation float64 // annual fraction
	Maintenance  float64
	Insurance    float64
	LicensePlate float64
	LoanID       string
}

type Property struct {
	ID          string
	PropertyID  string
	Name        string
	Type        string
	Value       float64
	Maintenance float64
	PropertyTax float64
	LoanID      string
	IsRentedOut bool
	MonthlyRent float64
}

type Rental struct {
	RentalID  string
	Name      string
	RentPrice float64
	Deposit   float64
}

type Pet struct {
	ID          string
	PetID       string
	Name        string
	Price       float64
	MonthlyCost float64
	Happiness   int // applied every month
}

// Housing is where the character currently lives.
type Housing int

const (
	WithParents Housing = iota
	Renting
	Owning
)

func (h Housing) String() string {
	switch h {
	case Renting:
		return "renting"
	case Owning:
		return "owning"
	}
	return "with parents"
}

type State struct {
	Name      string
	AgeYears  int
	Year      int
	Month     int
	Turn      int
	Happiness int

	NegativeCashStreak int

	Stats    Stats
	MaxStats Stats // captured at character creation

	Career       Career
	Portfolio    Portfolio
	Loans        []loan.Loan
	Cars         []Car
	Properties   []Property
	Rental       *Rental
	Pets         []Pet
	Relationship Relationship

	EventCooldowns  map[string]int
	ActionCooldowns map[string]int

	History History
}

// New returns an empty state with its maps allocated.
func New() *State {
	return &State{
		Portfolio: Portfolio{
			Stocks: map[string]Holding{},
			Crypto: map[string]float64{},
		},
		EventCooldowns:  map[string]int{},
		ActionCooldowns: map[string]int{},
	}
}

// YearMonth formats the current date as "YYYY-MM", the key used by every
// monthly series.
func (s *State) YearMonth() string {
	return YearMonth(s.Year, s.Month)
}

// Date is the first day of the current simulated month.
func (s *State) Date() time.Time {
	return time.Date(s.Year, time.Month(s.Month), 1, 0, 0, 0, 0, time.UTC)
}

func YearMonth(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// NextMonth returns the calendar month after (year, month).
func NextMonth(year, month int) (int, int) {
	if month >= 12 {
		return year + 1, 1
	}
	return year, month + 1
}

// AdjustHappiness adds delta and clamps to [0, 1000]. It returns the change
// actually applied.
func (s *State) AdjustHappiness(delta int) int {
	before := s.Happiness
	s.Happiness = clamp(s.Happiness+delta, MinHappiness, MaxHappiness)
	return s.Happiness - before
}

// ApplyEffects applies every non-zero delta, clamping each attribute.
func (s *State) ApplyEffects(e Effects) {
	s.AdjustHappiness(e.Happiness)
	s.Stats = Stats{
		Energy: s.Stats.Energy + e.Energy,
		Focus:  s.Stats.Focus + e.Focus,
		Wisdom: s.Stats.Wisdom + e.Wisdom,
		Charm:  s.Stats.Charm + e.Charm,
		Luck:   s.Stats.Luck + e.Luck,
		PSP:    s.Stats.PSP + e.PSP,
	}.Clamp(s.MaxStats)
}

func (s *State) Housing() Housing {
	if s.Rental != nil {
		return Renting
	}
	if len(s.Properties) > 0 {
		return Owning
	}
	return WithParents
}

func (s *State) Loan(id string) (int, *loan.Loan) {
	for i := range s.Loans {
		if s.Loans[i].ID == id {
			return i, &s.Loans[i]
		}
	}
	return -1, nil
}

// RemoveLoan drops a loan and clears the back reference on its asset.
func (s *State) RemoveLoan(id string) {
	i, l := s.Loan(id)
	if l == nil {
		return
	}
	asset := l.AssetID
	s.Loans = slices.Delete(s.Loans, i, i+1)
	s.UnlinkAsset(asset)
}

// UnlinkAsset clears the loan reference on the car or property with id.
func (s *State) UnlinkAsset(id string) {
	if id == "" {
		return
	}
	for j := range s.Cars {
		if s.Cars[j].ID == id {
			s.Cars[j].LoanID = ""
		}
	}
	for j := range s.Properties {
		if s.Properties[j].ID == id {
			s.Properties[j].LoanID = ""
		}
	}
}

// TickCooldowns decrements every action cooldown, dropping expired ones.
func (s *State) TickCooldowns() {
	for k, v := range s.ActionCooldowns {
		if v <= 1 {
			delete(s.ActionCooldowns, k)
			continue
		}
		s.ActionCooldowns[k] = v - 1
	}
}

// Clone returns a deep copy.
func (s *State) Clone() *State {
	c := *s
	c.Portfolio.Stocks = maps.Clone(s.Portfolio.Stocks)
	c.Portfolio.Crypto = maps.Clone(s.Portfolio.Crypto)
	c.Loans = slices.Clone(s.Loans)
	c.Cars = slices.Clone(s.Cars)
	c.Properties = slices.Clone(s.Properties)
	c.Pets = slices.Clone(s.Pets)
	if s.Rental != nil {
		r := *s.Rental
		c.Rental = &r
	}
	c.Relationship.Children = slices.Clone(s.Relationship.Children)
	c.EventCooldowns = maps.Clone(s.EventCooldowns)
	c.ActionCooldowns = maps.Clone(s.ActionCooldowns)
	c.History = s.History.clone()
	return &c
}
