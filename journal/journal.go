// Package journal persists what happened in a simulation run: one row per
// month and every cash movement.
package journal

import (
	"github.com/rustyeddy/lifesim/player"
)

// TurnRecord is the snapshot taken after a month settles.
type TurnRecord struct {
	RunID     string
	Turn      int
	Date      string // YYYY-MM of the settled month
	Age       int
	Cash      float64
	Bank      float64
	Savings   float64
	Debt      float64
	NetWorth  float64
	Happiness int
	Salary    float64 // gross annual
	Event     string
	Family    string
	Outcome   string
}

// CashFlow is a cash-flow record tagged with the run it belongs to.
type CashFlow struct {
	RunID string
	player.CashFlowRecord
}

type Journal interface {
	RecordTurn(TurnRecord) error
	RecordCashFlow(CashFlow) error
	Close() error
}

// Noop discards everything.
type Noop struct{}

func (Noop) RecordTurn(TurnRecord) error { return nil }
func (Noop) RecordCashFlow(CashFlow) error { return nil }
func (Noop) Close() error { return nil }
