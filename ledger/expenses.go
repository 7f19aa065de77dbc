package ledger

import (
	"github.com/rustyeddy/lifesim/loan"
	"github.com/rustyeddy/lifesim/player"
)

// Expenses is the monthly spending breakdown.
type Expenses struct {
	Fixed      float64
	Food       float64
	Loans      float64
	Cars       float64
	Properties float64
	Pets       float64
	Housing    float64
	Dating     float64
	Family     float64
}

func (e Expenses) Total() float64 {
	return e.Fixed + e.Food + e.Loans + e.Cars + e.Properties + e.Pets + e.Housing + e.Dating + e.Family
}

// Compute builds the breakdown for s with food scaled by foodFactor.
// Housing is the rent of an active rental. Owned homes are already covered
// by maintenance and tax, and living with parents is free.
func Compute(s *player.State, costs Costs, foodFactor float64) Expenses {
	e := Expenses{
		Fixed:  costs.Fixed,
		Food:   costs.Food * foodFactor,
		Loans:  loan.TotalPayment(s.Loans),
		Dating: s.Relationship.MonthlyDatingCost,
		Family: s.Relationship.MonthlyFamilyCost,
	}
	for _, c := range s.Cars {
		e.Cars += c.Insurance + c.LicensePlate
	}
	for _, p := range s.Properties {
		e.Properties += p.Maintenance + p.PropertyTax
	}
	for _, p := range s.Pets {
		e.Pets += p.MonthlyCost
	}
	if s.Rental != nil {
		e.Housing = s.Rental.RentPrice
	}
	return e
}
