// Package game is the monthly simulation engine. A Game owns one
// player.State and advances it one month per EndTurn call; between turns
// the caller may issue commands that buy, sell and act on that state.
package game

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/rustyeddy/lifesim/events"
	"github.com/rustyeddy/lifesim/internal/id"
	"github.com/rustyeddy/lifesim/ledger"
	"github.com/rustyeddy/lifesim/loan"
	"github.com/rustyeddy/lifesim/market"
	"github.com/rustyeddy/lifesim/player"
	"github.com/rustyeddy/lifesim/refdata"
	"github.com/rustyeddy/lifesim/rng"
)

type Options struct {
	Seed           int64
	Name           string
	ProfessionID   string
	StartAge       int
	StartYear      int
	StartMonth     int
	EndYear        int // the game is won once the year passes this
	EndAge         int // or once the character reaches this age
	Happiness      int
	Stats          player.Stats
	MaxStats       player.Stats
	StarterVehicle string
	Rates          ledger.Rates

	// Source overrides the seeded generator. Tests use it to script draws.
	Source rng.Source
	Logger *slog.Logger
}

func DefaultOptions() Options {
	return Options{
		Seed:           1,
		Name:           "Alex",
		ProfessionID:   "software_developer",
		StartAge:       24,
		StartYear:      2000,
		StartMonth:     1,
		EndYear:        2025,
		EndAge:         49,
		Happiness:      500,
		Stats:          player.Stats{Energy: 60, Focus: 50, Wisdom: 30, Charm: 40, Luck: 25, PSP: 10},
		MaxStats:       player.Stats{Energy: 100, Focus: 100, Wisdom: 100, Charm: 100, Luck: 79, PSP: 100},
		StarterVehicle: "used_sedan",
		Rates:          ledger.DefaultRates(),
	}
}

// Outcome is how the game stands after a turn.
type Outcome int

const (
	Playing Outcome = iota
	Victory
	Bankrupt
)

func (o Outcome) String() string {
	switch o {
	case Victory:
		return "victory"
	case Bankrupt:
		return "bankrupt"
	}
	return "playing"
}

type Game struct {
	State  *player.State
	Data   *refdata.Data
	Market *market.Model

	opts       Options
	profession refdata.Profession
	ledger     *ledger.Ledger
	events     *events.Engine
	src        rng.Source
	ids        *id.Generator
	log        *slog.Logger

	outcome Outcome
	reason  string
}

// New creates the character and generates the market.
func New(data *refdata.Data, opts Options) (*Game, error) {
	if data == nil {
		return nil, fmt.Errorf("new game: reference data is required")
	}
	prof, ok := data.Profession(opts.ProfessionID)
	if !ok {
		return nil, fmt.Errorf("new game: unknown profession %q", opts.ProfessionID)
	}
	if err := opts.Stats.Validate(opts.MaxStats); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if opts.StartMonth < 1 || opts.StartMonth > 12 {
		return nil, fmt.Errorf("new game: start month must be 1-12")
	}
	if opts.EndYear < opts.StartYear {
		return nil, fmt.Errorf("new game: end year before start year")
	}
	if opts.Rates.BankruptcyMonths <= 0 {
		return nil, fmt.Errorf("new game: bankruptcy months must be positive")
	}

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	src := opts.Source
	if src == nil {
		src = rng.New(opts.Seed)
	}

	s := player.New()
	s.Name = opts.Name
	s.AgeYears = opts.StartAge
	s.Year, s.Month = opts.StartYear, opts.StartMonth
	s.Happiness = opts.Happiness
	s.Stats = opts.Stats
	s.MaxStats = opts.MaxStats

	g := &Game{
		State:      s,
		Data:       data,
		opts:       opts,
		profession: prof,
		events:     events.New(data.Events, data.NoopEventID),
		src:        src,
		log:        log,
		ids:        id.NewGenerator(opts.Seed, s.Date),
	}
	g.ledger = ledger.New(opts.Rates, g.ids.New, log)

	months := (opts.EndYear-opts.StartYear+1)*12 + 1
	g.Market = market.New(data, opts.StartYear, opts.StartMonth, months, src)

	if err := g.createCharacter(); err != nil {
		return nil, err
	}
	log.Info("game created",
		"name", s.Name,
		"profession", prof.ID,
		"salary", player.Cents(s.Career.GrossAnnual),
		"cash", s.Portfolio.Cash,
	)
	return g, nil
}

func (g *Game) createCharacter() error {
	s, prof := g.State, g.profession

	gross := rng.Uniform(g.src, prof.SalaryMin, prof.SalaryMax)
	s.Career = player.Career{
		ProfessionID: prof.ID,
		Title:        prof.Title,
		GrossAnnual:  math.Round(gross/100) * 100,
		BaseRaise:    prof.RaiseRate,
		Level:        player.Junior,
	}
	s.Portfolio.Cash = prof.InitialCash

	if sl := prof.StudentLoan; sl != nil {
		l, err := loan.New(g.ids.New(), loan.Student, sl.Principal, sl.Rate, sl.TermMonths, "")
		if err != nil {
			return fmt.Errorf("new game: student loan: %w", err)
		}
		s.Loans = append(s.Loans, l)
	}

	if g.opts.StarterVehicle != "" {
		v, ok := g.Data.Vehicle(g.opts.StarterVehicle)
		if !ok {
			return fmt.Errorf("new game: unknown starter vehicle %q", g.opts.StarterVehicle)
		}
		s.Cars = append(s.Cars, newCar(g.ids.New(), v))
	}
	return nil
}

func newCar(id string, v refdata.Vehicle) player.Car {
	return player.Car{
		ID:           id,
		VehicleID:    v.ID,
		Name:         v.Name,
		Value:        v.Price,
		Depreciation: v.Depreciation,
		Maintenance:  v.Maintenance,
		Insurance:    v.Insurance,
		LicensePlate: v.LicensePlate,
	}
}

func (g *Game) Profession() refdata.Profession { return g.profession }

func (g *Game) Outcome() Outcome { return g.outcome }

// Reason explains why the game ended.
func (g *Game) Reason() string { return g.reason }

func (g *Game) Over() bool { return g.outcome != Playing }

func (g *Game) costs() ledger.Costs {
	return ledger.Costs{Fixed: g.profession.FixedCosts, Food: g.profession.FoodCost}
}

// NetIncome is this month's take-home pay.
func (g *Game) NetIncome() float64 {
	return g.ledger.Rates.NetIncome(g.State.Career.GrossAnnual)
}

// ExpenseBreakdown is the monthly spending with food at its nominal cost.
func (g *Game) ExpenseBreakdown() ledger.Expenses {
	return ledger.Compute(g.State, g.costs(), 1)
}

func (g *Game) CashFlowHistory() []player.CashFlowRecord {
	return g.State.History.Records()
}

// OnCashFlow registers fn to receive every cash-flow record from now on.
// A nil fn stops delivery.
func (g *Game) OnCashFlow(fn func(player.CashFlowRecord)) {
	g.ledger.OnRecord = fn
}

// NetWorth is everything owned at current prices less all loan balances.
func (g *Game) NetWorth() float64 {
	s := g.State
	nw := s.Portfolio.Cash + s.Portfolio.Bank + s.Portfolio.Savings
	nw += g.Market.HoldingsValue(s, s.YearMonth())
	for _, c := range s.Cars {
		nw += c.Value
	}
	for _, p := range s.Properties {
		nw += p.Value
	}
	if s.Rental != nil {
		nw += s.Rental.Deposit
	}
	return nw - loan.TotalBalance(s.Loans)
}

func (g *Game) end(o Outcome, reason string) {
	g.outcome = o
	g.reason = reason
	g.log.Info("game over", "outcome", o.String(), "reason", reason, "date", g.State.YearMonth())
}
