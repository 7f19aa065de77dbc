package game

import (
	"fmt"
	"slices"

	"github.com/rustyeddy/lifesim/loan"
	"github.com/rustyeddy/lifesim/player"
)

// PetSaleRefund is the share of a pet's price returned when it is sold.
const (
	PetSaleRefund    = 0.5
	PetSaleHappiness = -10
)

// finance opens a loan for price less the down payment and returns the
// cash needed today.
func (g *Game) finance(kind loan.Kind, price, downShare, rate float64, term int, assetID string) (loan.Loan, float64, error) {
	down := player.Cents(price * downShare)
	l, err := loan.New(g.ids.New(), kind, price-down, rate, term, assetID)
	if err != nil {
		return loan.Loan{}, 0, invalid("Could not finance: %v", err)
	}
	return l, down, nil
}

// BuyVehicle buys a car outright or with a loan for all but the down
// payment.
func (g *Game) BuyVehicle(vehicleID string, financed bool) (string, error) {
	if g.Over() {
		return "", ErrGameOver
	}
	v, ok := g.Data.Vehicle(vehicleID)
	if !ok {
		return "", invalid("Unknown vehicle %q", vehicleID)
	}
	s := g.State
	car := newCar(g.ids.New(), v)

	due := v.Price
	var l loan.Loan
	if financed {
		var err error
		l, due, err = g.finance(loan.Vehicle, v.Price, g.Data.Lending.VehicleDownPayment, v.LoanRate, v.LoanTermMonths, car.ID)
		if err != nil {
			return "", err
		}
	}
	if s.Portfolio.Cash < due {
		return "", invalid("Not enough cash: you need %s for the %s", money(due), v.Name)
	}

	if financed {
		car.LoanID = l.ID
		s.Loans = append(s.Loans, l)
	}
	s.Cars = append(s.Cars, car)
	g.ledger.Record(s, player.Expense, due, "Bought "+v.Name, "vehicle")
	if financed {
		return fmt.Sprintf("Bought a %s with %s down, %s/month for %d months", v.Name, money(due), money(l.MonthlyPayment), l.TermMonths), nil
	}
	return fmt.Sprintf("Bought a %s for %s", v.Name, money(due)), nil
}

// SellVehicle sells a car at its depreciated value, paying off any loan
// on it. The last car cannot be sold.
func (g *Game) SellVehicle(carID string) (string, error) {
	if g.Over() {
		return "", ErrGameOver
	}
	s := g.State
	i := slices.IndexFunc(s.Cars, func(c player.Car) bool { return c.ID == carID })
	if i < 0 {
		return "", invalid("You don't own that vehicle")
	}
	if len(s.Cars) == 1 {
		return "", invalid("You can't sell your only vehicle")
	}
	car := s.Cars[i]
	net, err := g.payoff(car.Value, car.LoanID)
	if err != nil {
		return "", err
	}

	s.RemoveLoan(car.LoanID)
	s.Cars = slices.Delete(s.Cars, i, i+1)
	g.ledger.Record(s, player.Income, net, "Sold "+car.Name, "vehicle")
	return fmt.Sprintf("Sold your %s for %s", car.Name, money(car.Value)), nil
}

// payoff returns what selling an asset worth value nets once its loan is
// cleared, failing when cash can't cover a shortfall.
func (g *Game) payoff(value float64, loanID string) (float64, error) {
	net := value
	if loanID != "" {
		if _, l := g.State.Loan(loanID); l != nil {
			net -= l.Balance
		}
	}
	if net < 0 && g.State.Portfolio.Cash < -net {
		return 0, invalid("Not enough cash to pay off the loan: you need %s", money(-net))
	}
	return net, nil
}

// BuyProperty buys a home at its current market price. Owning and renting
// are exclusive.
func (g *Game) BuyProperty(propertyID string, financed bool) (string, error) {
	if g.Over() {
		return "", ErrGameOver
	}
	home, ok := g.Market.Home(propertyID)
	if !ok {
		return "", invalid("Unknown property %q", propertyID)
	}
	s := g.State
	if s.Rental != nil {
		return "", invalid("End your rental before buying a home")
	}
	def := home.Def
	prop := player.Property{
		ID:          g.ids.New(),
		PropertyID:  def.ID,
		Name:        def.Name,
		Type:        def.Type,
		Value:       home.Price,
		Maintenance: def.Maintenance,
		PropertyTax: def.PropertyTax,
	}

	due := home.Price
	var l loan.Loan
	if financed {
		lend := g.Data.Lending
		var err error
		l, due, err = g.finance(loan.Mortgage, home.Price, lend.MortgageDownPayment, lend.MortgageRate, lend.MortgageTermMonths, prop.ID)
		if err != nil {
			return "", err
		}
	}
	if s.Portfolio.Cash < due {
		return "", invalid("Not enough cash: you need %s for the %s", money(due), def.Name)
	}

	if financed {
		prop.LoanID = l.ID
		s.Loans = append(s.Loans, l)
	}
	s.Properties = append(s.Properties, prop)
	g.ledger.Record(s, player.Expense, due, "Bought "+def.Name, "property")
	if financed {
		return fmt.Sprintf("Bought a %s with %s down, mortgage %s/month", def.Name, money(due), money(l.MonthlyPayment)), nil
	}
	return fmt.Sprintf("Bought a %s for %s", def.Name, money(due)), nil
}

// SellProperty sells a home at market value, paying off its mortgage.
// Pets need somewhere to live, so the last home can't go while you have
// any.
func (g *Game) SellProperty(id string) (string, error) {
	if g.Over() {
		return "", ErrGameOver
	}
	s := g.State
	i := slices.IndexFunc(s.Properties, func(p player.Property) bool { return p.ID == id })
	if i < 0 {
		return "", invalid("You don't own that property")
	}
	if len(s.Properties) == 1 && len(s.Pets) > 0 {
		return "", invalid("Rehome your pets before selling your last home")
	}
	prop := s.Properties[i]
	net, err := g.payoff(prop.Value, prop.LoanID)
	if err != nil {
		return "", err
	}

	s.RemoveLoan(prop.LoanID)
	s.Properties = slices.Delete(s.Properties, i, i+1)
	g.ledger.Record(s, player.Income, net, "Sold "+prop.Name, "property")
	return fmt.Sprintf("Sold your %s for %s", prop.Name, money(prop.Value)), nil
}

// Rent moves into a rental, paying the deposit now. Rent itself is a
// monthly expense.
func (g *Game) Rent(rentalID string) (string, error) {
	if g.Over() {
		return "", ErrGameOver
	}
	r, ok := g.Data.Rental(rentalID)
	if !ok {
		return "", invalid("Unknown rental %q", rentalID)
	}
	s := g.State
	switch {
	case s.Rental != nil:
		return "", invalid("You already rent %s", s.Rental.Name)
	case len(s.Properties) > 0:
		return "", invalid("You can't rent while you own a home")
	case s.Portfolio.Cash < r.Deposit:
		return "", invalid("Not enough cash for the %s deposit", money(r.Deposit))
	}
	s.Rental = &player.Rental{RentalID: r.ID, Name: r.Name, RentPrice: r.RentPrice, Deposit: r.Deposit}
	g.ledger.Record(s, player.Expense, r.Deposit, "Deposit for "+r.Name, "housing")
	return fmt.Sprintf("Moved into a %s for %s/month", r.Name, money(r.RentPrice)), nil
}

// EndRental moves back home and returns the deposit.
func (g *Game) EndRental() (string, error) {
	if g.Over() {
		return "", ErrGameOver
	}
	s := g.State
	if s.Rental == nil {
		return "", invalid("You are not renting")
	}
	r := s.Rental
	s.Rental = nil
	g.ledger.Record(s, player.Income, r.Deposit, "Deposit back from "+r.Name, "housing")
	return fmt.Sprintf("Moved out of the %s", r.Name), nil
}

// RentOut lets a property at the current market rent. You need to keep
// one home to live in.
func (g *Game) RentOut(id string) (string, error) {
	if g.Over() {
		return "", ErrGameOver
	}
	s := g.State
	i := slices.IndexFunc(s.Properties, func(p player.Property) bool { return p.ID == id })
	if i < 0 {
		return "", invalid("You don't own that property")
	}
	prop := &s.Properties[i]
	if prop.IsRentedOut {
		return "", invalid("%s is already rented out", prop.Name)
	}
	living := 0
	for _, p := range s.Properties {
		if !p.IsRentedOut {
			living++
		}
	}
	if living <= 1 {
		return "", invalid("You need somewhere to live")
	}
	rent := 0.0
	if home, ok := g.Market.Home(prop.PropertyID); ok {
		rent = player.Cents(home.Rent)
	}
	if rent <= 0 {
		return "", invalid("Nobody wants to rent a %s", prop.Name)
	}
	prop.IsRentedOut = true
	prop.MonthlyRent = rent
	return fmt.Sprintf("Rented out your %s for %s/month", prop.Name, money(rent)), nil
}

func (g *Game) StopRenting(id string) (string, error) {
	if g.Over() {
		return "", ErrGameOver
	}
	s := g.State
	i := slices.IndexFunc(s.Properties, func(p player.Property) bool { return p.ID == id })
	if i < 0 {
		return "", invalid("You don't own that property")
	}
	prop := &s.Properties[i]
	if !prop.IsRentedOut {
		return "", invalid("%s is not rented out", prop.Name)
	}
	prop.IsRentedOut = false
	prop.MonthlyRent = 0
	return fmt.Sprintf("Your %s is no longer rented out", prop.Name), nil
}

// BuyPet adopts a pet. Pets need a home you own.
func (g *Game) BuyPet(petID string) (string, error) {
	if g.Over() {
		return "", ErrGameOver
	}
	def, ok := g.Data.Pet(petID)
	if !ok {
		return "", invalid("Unknown pet %q", petID)
	}
	s := g.State
	switch {
	case len(s.Properties) == 0:
		return "", invalid("You need to own a home to keep a pet")
	case slices.ContainsFunc(s.Pets, func(p player.Pet) bool { return p.PetID == petID }):
		return "", invalid("You already have a %s", def.Name)
	case s.Portfolio.Cash < def.Price:
		return "", invalid("Not enough cash: a %s costs %s", def.Name, money(def.Price))
	}
	s.Pets = append(s.Pets, player.Pet{
		ID:          g.ids.New(),
		PetID:       def.ID,
		Name:        def.Name,
		Price:       def.Price,
		MonthlyCost: def.MonthlyCost,
		Happiness:   def.MonthlyHappiness,
	})
	s.AdjustHappiness(def.Happiness)
	g.ledger.Record(s, player.Expense, def.Price, "Adopted a "+def.Name, "pet")
	return fmt.Sprintf("Adopted a %s (+%d happiness)", def.Name, def.Happiness), nil
}

// SellPet rehomes a pet for half its price.
func (g *Game) SellPet(id string) (string, error) {
	if g.Over() {
		return "", ErrGameOver
	}
	s := g.State
	i := slices.IndexFunc(s.Pets, func(p player.Pet) bool { return p.ID == id })
	if i < 0 {
		return "", invalid("You don't have that pet")
	}
	pet := s.Pets[i]
	refund := player.Cents(pet.Price * PetSaleRefund)
	s.Pets = slices.Delete(s.Pets, i, i+1)
	s.AdjustHappiness(PetSaleHappiness)
	g.ledger.Record(s, player.Income, refund, "Rehomed your "+pet.Name, "pet")
	return fmt.Sprintf("Rehomed your %s for %s", pet.Name, money(refund)), nil
}
