// Package loan implements fixed-payment amortization for student, vehicle
// and mortgage loans.
package loan

import (
	"fmt"
	"math"
	"strings"
)

// Kind tags what a loan was taken out for.
type Kind int

const (
	Student Kind = iota + 1
	Vehicle
	Mortgage
)

func (k Kind) String() string {
	switch k {
	case Student:
		return "student"
	case Vehicle:
		return "vehicle"
	case Mortgage:
		return "mortgage"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps "student", "vehicle" or "mortgage" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "student":
		return Student, nil
	case "vehicle":
		return Vehicle, nil
	case "mortgage":
		return Mortgage, nil
	}
	return 0, fmt.Errorf("unknown loan kind %q", s)
}

// PaidThreshold is the balance below which a loan counts as repaid.
// Float residue after the last scheduled payment stays under a cent.
const PaidThreshold = 0.01

type Loan struct {
	ID             string
	Kind           Kind
	Balance        float64
	AnnualRate     float64
	TermMonths     int
	MonthlyPayment float64 // fixed at origination

	// AssetID links vehicle and mortgage loans to the car or property they
	// financed. Empty for student loans.
	AssetID string
}

// MonthlyPayment returns the fixed payment P·r / (1 - (1+r)^-n) with
// r = annualRate/12. Zero principal or term yields 0.
func MonthlyPayment(principal, annualRate float64, termMonths int) float64 {
	if principal <= 0 || termMonths <= 0 {
		return 0
	}
	r := annualRate / 12
	if r == 0 {
		return principal / float64(termMonths)
	}
	return principal * r / (1 - math.Pow(1+r, -float64(termMonths)))
}

// New originates a loan and fixes its monthly payment.
func New(id string, kind Kind, principal, annualRate float64, termMonths int, assetID string) (Loan, error) {
	switch kind {
	case Student, Vehicle, Mortgage:
	default:
		return Loan{}, fmt.Errorf("new loan: invalid kind %v", kind)
	}
	if principal <= 0 {
		return Loan{}, fmt.Errorf("new loan: principal must be positive")
	}
	if termMonths <= 0 {
		return Loan{}, fmt.Errorf("new loan: term must be positive")
	}
	if annualRate < 0 {
		return Loan{}, fmt.Errorf("new loan: rate must not be negative")
	}
	return Loan{
		ID:             id,
		Kind:           kind,
		Balance:        principal,
		AnnualRate:     annualRate,
		TermMonths:     termMonths,
		MonthlyPayment: MonthlyPayment(principal, annualRate, termMonths),
		AssetID:        assetID,
	}, nil
}

// Interest is this month's interest on the outstanding balance.
func (l *Loan) Interest() float64 {
	return l.Balance * l.AnnualRate / 12
}

// Amortize applies one scheduled payment and returns the new balance.
func (l *Loan) Amortize() float64 {
	l.Balance -= l.MonthlyPayment - l.Interest()
	return l.Balance
}

func (l *Loan) Paid() bool {
	return l.Balance < PaidThreshold
}

// AmortizeAll applies one payment to every loan and splits the result into
// loans still outstanding and loans repaid this month.
func AmortizeAll(loans []Loan) (active, repaid []Loan) {
	active = loans[:0:0]
	for _, l := range loans {
		l.Amortize()
		if l.Paid() {
			l.Balance = 0
			repaid = append(repaid, l)
			continue
		}
		active = append(active, l)
	}
	return active, repaid
}

// TotalPayment sums the monthly payments of loans.
func TotalPayment(loans []Loan) float64 {
	var sum float64
	for _, l := range loans {
		sum += l.MonthlyPayment
	}
	return sum
}

// TotalBalance sums the outstanding balances of loans.
func TotalBalance(loans []Loan) float64 {
	var sum float64
	for _, l := range loans {
		sum += l.Balance
	}
	return sum
}
