// Package ledger settles a month of money: salary after tax, living
// expenses, savings interest, rent collected, loan payments and the
// negative-cash streak that ends in bankruptcy.
package ledger

import (
	"log/slog"

	"github.com/rustyeddy/lifesim/loan"
	"github.com/rustyeddy/lifesim/player"
	"github.com/rustyeddy/lifesim/rng"
)

type Rates struct {
	Federal          float64 // fraction of monthly gross
	FICA             float64 // fraction of monthly gross
	Health           float64 // flat monthly premium
	SavingsAPY       float64 // compounded monthly
	BankruptcyMonths int     // consecutive months below zero that end the game
}

func DefaultRates() Rates {
	return Rates{
		Federal:          0.245,
		FICA:             0.0765,
		Health:           200,
		SavingsAPY:       0.03,
		BankruptcyMonths: 6,
	}
}

const (
	PsychiatristThreshold = 10
	PsychiatristCost      = 75
	PsychiatristHappiness = 10

	FoodJitterMin = 0.8
	FoodJitterMax = 1.2
)

type Paycheck struct {
	Gross   float64
	Federal float64
	FICA    float64
	Health  float64
	Net     float64
}

func (r Rates) Paycheck(grossAnnual float64) Paycheck {
	p := Paycheck{Gross: grossAnnual / 12}
	p.Federal = p.Gross * r.Federal
	p.FICA = p.Gross * r.FICA
	p.Health = r.Health
	p.Net = p.Gross - p.Federal - p.FICA - p.Health
	return p
}

// NetIncome is monthly take-home pay.
func (r Rates) NetIncome(grossAnnual float64) float64 {
	return r.Paycheck(grossAnnual).Net
}

// Costs are the profession's fixed monthly costs.
type Costs struct {
	Fixed float64
	Food  float64
}

type Settlement struct {
	Paycheck     Paycheck
	Expenses     Expenses
	FoodFactor   float64
	Interest     float64
	RentalIncome float64
	PetHappiness int
	Repaid       []loan.Loan
	Streak       int
	Bankrupt     bool
}

// Net is the month's change in cash from salary, expenses and rent.
func (s Settlement) Net() float64 {
	return s.Paycheck.Net - s.Expenses.Total() + s.RentalIncome
}

type Ledger struct {
	Rates Rates
	NewID func() string
	Log   *slog.Logger

	// OnRecord sees every record as it is written, including those the
	// bounded history later evicts.
	OnRecord func(player.CashFlowRecord)
}

func New(rates Rates, newID func() string, log *slog.Logger) *Ledger {
	if log == nil {
		log = slog.Default()
	}
	if newID == nil {
		newID = func() string { return "" }
	}
	return &Ledger{Rates: rates, NewID: newID, Log: log}
}

// Record moves amount in or out of cash and appends a history record.
// Positive amounts with Income add cash, Expense subtracts it.
func (l *Ledger) Record(s *player.State, kind player.FlowType, amount float64, desc, category string) {
	if kind == player.Expense {
		s.Portfolio.Cash -= amount
	} else {
		s.Portfolio.Cash += amount
	}
	l.Note(s, kind, amount, desc, category)
}

// Note appends a history record for a movement already applied.
func (l *Ledger) Note(s *player.State, kind player.FlowType, amount float64, desc, category string) {
	if amount < 0 {
		amount = -amount
		if kind == player.Expense {
			kind = player.Income
		} else {
			kind = player.Expense
		}
	}
	rec := s.History.Add(player.CashFlowRecord{
		ID:           l.NewID(),
		Date:         s.YearMonth(),
		Type:         kind,
		Amount:       amount,
		Description:  desc,
		Category:     category,
		BalanceAfter: s.Portfolio.Cash,
	})
	if l.OnRecord != nil {
		l.OnRecord(rec)
	}
}

// Settle applies one month of income and spending to s.
func (l *Ledger) Settle(s *player.State, costs Costs, src rng.Source) Settlement {
	var out Settlement

	out.Paycheck = l.Rates.Paycheck(s.Career.GrossAnnual)
	out.FoodFactor = rng.Uniform(src, FoodJitterMin, FoodJitterMax)
	out.Expenses = Compute(s, costs, out.FoodFactor)

	l.Record(s, player.Income, out.Paycheck.Net, "Salary after tax", "salary")
	l.Record(s, player.Expense, out.Expenses.Total(), "Monthly expenses", "living")

	before := s.Portfolio.Savings
	s.Portfolio.Savings *= 1 + l.Rates.SavingsAPY/12
	out.Interest = s.Portfolio.Savings - before

	for _, p := range s.Properties {
		if p.IsRentedOut && p.MonthlyRent > 0 {
			out.RentalIncome += p.MonthlyRent
			l.Record(s, player.Income, p.MonthlyRent, "Rent from "+p.Name, "rental")
		}
	}

	for _, pet := range s.Pets {
		out.PetHappiness += pet.Happiness
	}
	s.AdjustHappiness(out.PetHappiness)

	var active []loan.Loan
	active, out.Repaid = loan.AmortizeAll(s.Loans)
	s.Loans = active
	for _, r := range out.Repaid {
		s.UnlinkAsset(r.AssetID)
		l.Log.Info("loan repaid", "loan", r.ID, "kind", r.Kind.String())
	}

	if s.Portfolio.Cash < 0 {
		s.NegativeCashStreak++
		l.Log.Warn("cash is negative",
			"date", s.YearMonth(),
			"cash", player.Cents(s.Portfolio.Cash),
			"streak", s.NegativeCashStreak,
		)
		if s.NegativeCashStreak >= l.Rates.BankruptcyMonths {
			out.Bankrupt = true
		}
	} else {
		s.NegativeCashStreak = 0
	}
	out.Streak = s.NegativeCashStreak
	return out
}

// Psychiatrist books a visit when happiness drops below the threshold.
func (l *Ledger) Psychiatrist(s *player.State) bool {
	if s.Happiness >= PsychiatristThreshold {
		return false
	}
	l.Record(s, player.Expense, PsychiatristCost, "Psychiatrist visit", "health")
	s.AdjustHappiness(PsychiatristHappiness)
	return true
}
