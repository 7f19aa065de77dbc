package ledger

import (
	"fmt"
	"testing"

	"github.com/rustyeddy/lifesim/loan"
	"github.com/rustyeddy/lifesim/player"
	"github.com/rustyeddy/lifesim/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedger() *Ledger {
	n := 0
	return New(DefaultRates(), func() string {
		n++
		return fmt.Sprintf("cf-%d", n)
	}, nil)
}

func newState(cash, gross float64) *player.State {
	s := player.New()
	s.Year, s.Month = 2000, 1
	s.Happiness = 500
	s.Portfolio.Cash = cash
	s.Career = player.Career{GrossAnnual: gross, Level: player.Junior}
	return s
}

// U(0.8,1.2) at 0.5 is exactly 1.0.
func flatFood() *rng.Sequence { return &rng.Sequence{Floats: []float64{0.5}} }

func TestPaycheck(t *testing.T) {
	p := DefaultRates().Paycheck(24000)
	assert.InDelta(t, 2000, p.Gross, 1e-9)
	assert.InDelta(t, 490, p.Federal, 1e-9)
	assert.InDelta(t, 153, p.FICA, 1e-9)
	assert.InDelta(t, 200, p.Health, 1e-9)
	assert.InDelta(t, 1157, p.Net, 1e-9)
}

func TestSettleAppliesNetCashFlow(t *testing.T) {
	l := newLedger()
	s := newState(500, 24000)

	out := l.Settle(s, Costs{Fixed: 200, Food: 300}, flatFood())

	assert.InDelta(t, 500, out.Expenses.Total(), 1e-9)
	assert.InDelta(t, 500+1157-500, s.Portfolio.Cash, 1e-9)
	assert.InDelta(t, out.Net(), s.Portfolio.Cash-500, 1e-9)
	assert.False(t, out.Bankrupt)

	recs := s.History.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, "living", recs[0].Category)
	assert.Equal(t, player.Expense, recs[0].Type)
	assert.Equal(t, "salary", recs[1].Category)
	assert.Equal(t, "2000-01", recs[1].Date)
}

func TestExpensesBreakdown(t *testing.T) {
	s := newState(0, 24000)
	l1, err := loan.New("L1", loan.Vehicle, 10000, 0.06, 60, "car")
	require.NoError(t, err)
	s.Loans = []loan.Loan{l1}
	s.Cars = []player.Car{{ID: "car", Insurance: 100, LicensePlate: 20, Maintenance: 999}}
	s.Properties = []player.Property{{ID: "p", Maintenance: 150, PropertyTax: 180}}
	s.Pets = []player.Pet{{MonthlyCost: 60}}
	s.Relationship = player.Relationship{Status: player.Married, MonthlyFamilyCost: 400}

	e := Compute(s, Costs{Fixed: 300, Food: 400}, 1.2)
	assert.InDelta(t, 480, e.Food, 1e-9)
	assert.InDelta(t, l1.MonthlyPayment, e.Loans, 1e-9)
	assert.InDelta(t, 120, e.Cars, 1e-9)
	assert.InDelta(t, 330, e.Properties, 1e-9)
	assert.InDelta(t, 60, e.Pets, 1e-9)
	assert.Equal(t, 0.0, e.Housing)
	assert.InDelta(t, 400, e.Family, 1e-9)

	s.Properties = nil
	s.Rental = &player.Rental{RentPrice: 1100}
	assert.InDelta(t, 1100, Compute(s, Costs{}, 1).Housing, 1e-9)
}

func TestSettleSavingsRentAndLoans(t *testing.T) {
	l := newLedger()
	s := newState(1000, 60000)
	s.Portfolio.Savings = 10000
	s.Properties = []player.Property{{ID: "p1", Name: "Condo", IsRentedOut: true, MonthlyRent: 1400, LoanID: "m"}}
	done, err := loan.New("done", loan.Student, 50, 0, 1, "")
	require.NoError(t, err)
	mort, err := loan.New("m", loan.Mortgage, 100000, 0.06, 360, "p1")
	require.NoError(t, err)
	s.Loans = []loan.Loan{done, mort}

	out := l.Settle(s, Costs{}, flatFood())

	assert.InDelta(t, 10025, s.Portfolio.Savings, 1e-9)
	assert.InDelta(t, 25, out.Interest, 1e-9)
	assert.InDelta(t, 1400, out.RentalIncome, 1e-9)
	require.Len(t, out.Repaid, 1)
	require.Len(t, s.Loans, 1)
	assert.Equal(t, "m", s.Loans[0].ID)
	assert.Less(t, s.Loans[0].Balance, 100000.0)
	assert.Equal(t, "m", s.Properties[0].LoanID)
}

func TestNegativeStreakEndsInBankruptcy(t *testing.T) {
	l := newLedger()
	s := newState(-100, 0)
	costs := Costs{Fixed: 1000}

	for i := 1; i <= 5; i++ {
		out := l.Settle(s, costs, flatFood())
		assert.Equal(t, i, out.Streak)
		assert.False(t, out.Bankrupt)
	}
	out := l.Settle(s, costs, flatFood())
	assert.True(t, out.Bankrupt)
	assert.Equal(t, 6, s.NegativeCashStreak)
}

func TestNonNegativeCashResetsStreak(t *testing.T) {
	l := newLedger()
	s := newState(-100, 0)
	for i := 0; i < 4; i++ {
		l.Settle(s, Costs{Fixed: 10}, flatFood())
	}
	require.Equal(t, 4, s.NegativeCashStreak)

	s.Portfolio.Cash = 1000
	l.Settle(s, Costs{Fixed: 10}, flatFood())
	assert.Equal(t, 0, s.NegativeCashStreak)
}

func TestPsychiatrist(t *testing.T) {
	l := newLedger()
	s := newState(100, 0)
	s.Happiness = 10
	assert.False(t, l.Psychiatrist(s))

	s.Happiness = 3
	assert.True(t, l.Psychiatrist(s))
	assert.Equal(t, 13, s.Happiness)
	assert.InDelta(t, 25, s.Portfolio.Cash, 1e-9)
	assert.Equal(t, "health", s.History.Records()[0].Category)
}

func TestPetsAddMonthlyHappiness(t *testing.T) {
	l := newLedger()
	s := newState(0, 60000)
	s.Pets = []player.Pet{{Happiness: 2}, {Happiness: 3}}

	out := l.Settle(s, Costs{}, flatFood())
	assert.Equal(t, 5, out.PetHappiness)
	assert.Equal(t, 505, s.Happiness)
}

func TestNoteFlipsNegativeAmounts(t *testing.T) {
	l := newLedger()
	s := newState(0, 0)
	l.Record(s, player.Expense, -250, "Refund", "event")

	assert.InDelta(t, 250, s.Portfolio.Cash, 1e-9)
	rec := s.History.Records()[0]
	assert.Equal(t, player.Income, rec.Type)
	assert.Equal(t, 250.0, rec.Amount)
	assert.Equal(t, "cf-1", rec.ID)
}

func TestNetIncomeAtDefaultRates(t *testing.T) {
	r := DefaultRates()

	// 2000 gross less 490 federal, 153 FICA and 200 health insurance.
	p := r.Paycheck(24000)
	assert.InDelta(t, 490, p.Federal, 1e-9)
	assert.InDelta(t, 153, p.FICA, 1e-9)
	assert.InDelta(t, 1157, r.NetIncome(24000), 1e-9)

	assert.InDelta(t, 3192.5, r.NetIncome(60000), 1e-9)
}

func TestOnRecordSeesStoredRecord(t *testing.T) {
	l := newLedger()
	var got []player.CashFlowRecord
	l.OnRecord = func(rec player.CashFlowRecord) { got = append(got, rec) }

	s := newState(100, 0)
	l.Record(s, player.Expense, 10.456, "Snacks", "food")
	l.Record(s, player.Income, 5, "Found", "event")

	require.Len(t, got, 2)
	assert.Equal(t, 10.46, got[0].Amount)
	assert.Equal(t, "Found", got[1].Description)
	assert.Equal(t, s.History.Records()[0], got[1])
}
