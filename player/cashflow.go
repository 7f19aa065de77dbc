package player

import (
	"fmt"
	"math"
	"slices"

	"github.com/shopspring/decimal"
)

type FlowType int

const (
	Income FlowType = iota
	Expense
)

func (f FlowType) String() string {
	if f == Expense {
		return "expense"
	}
	return "income"
}

// ParseFlowType is the inverse of FlowType.String.
func ParseFlowType(s string) (FlowType, error) {
	switch s {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	}
	return Income, fmt.Errorf("unknown cash flow type %q", s)
}

type CashFlowRecord struct {
	ID           string
	Date         string // YYYY-MM
	Type         FlowType
	Amount       float64 // always >= 0, direction is Type
	Description  string
	Category     string
	BalanceAfter float64
}

// HistoryCapacity bounds the cash-flow history.
const HistoryCapacity = 50

// History keeps the most recent cash-flow records, newest first.
type History struct {
	records []CashFlowRecord
}

// Add stores rec at the front, evicting the oldest record once the history
// is full. Amounts are rounded to cents; the stored record is returned.
func (h *History) Add(rec CashFlowRecord) CashFlowRecord {
	rec.Amount = Cents(math.Abs(rec.Amount))
	rec.BalanceAfter = Cents(rec.BalanceAfter)
	if len(h.records) >= HistoryCapacity {
		h.records = h.records[:HistoryCapacity-1]
	}
	h.records = append([]CashFlowRecord{rec}, h.records...)
	return rec
}

// Records returns a copy, newest first.
func (h History) Records() []CashFlowRecord {
	out := make([]CashFlowRecord, len(h.records))
	copy(out, h.records)
	return out
}

func (h History) Len() int { return len(h.records) }

func (h History) clone() History {
	return History{records: slices.Clone(h.records)}
}

// Cents rounds a dollar amount to two decimal places.
func Cents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
