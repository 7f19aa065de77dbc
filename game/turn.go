package game

import (
	"fmt"

	"github.com/rustyeddy/lifesim/career"
	"github.com/rustyeddy/lifesim/events"
	"github.com/rustyeddy/lifesim/family"
	"github.com/rustyeddy/lifesim/ledger"
	"github.com/rustyeddy/lifesim/market"
	"github.com/rustyeddy/lifesim/player"
	"github.com/rustyeddy/lifesim/refdata"
)

// Report describes everything one EndTurn did.
type Report struct {
	Turn  int
	Year  int // the month that was settled
	Month int

	Settlement   ledger.Settlement
	Psychiatrist bool
	Splits       []market.SplitResult
	Family       family.Event
	Conversation *refdata.Conversation
	Event        *events.Outcome
	AnnualRaise  float64
	Promotion    *career.Promotion

	Outcome  Outcome
	Reason   string
	Cash     float64
	NetWorth float64
	Log      []string
}

func (r *Report) logf(format string, args ...any) {
	r.Log = append(r.Log, fmt.Sprintf(format, args...))
}

type eventClass int

const (
	genericEvent eventClass = iota
	relationshipEvent
)

// lifeEventClass decides which kind of life event owns this month. A
// relationship or family transition takes the slot and the generic draw
// is skipped.
func lifeEventClass(fe family.Event) eventClass {
	if fe.Transition != family.None {
		return relationshipEvent
	}
	return genericEvent
}

// EndTurn advances the simulation by one month.
//
// Order: ledger settlement, psychiatrist, stock splits, relationship and
// family, generic event, cooldowns, market, calendar (with the career
// update on a new year), end conditions.
func (g *Game) EndTurn() (Report, error) {
	if g.Over() {
		return Report{}, ErrGameOver
	}
	s := g.State
	rep := Report{Turn: s.Turn + 1, Year: s.Year, Month: s.Month}

	rep.Settlement = g.ledger.Settle(s, g.costs(), g.src)
	rep.logf("Salary %s, expenses %s", money(rep.Settlement.Paycheck.Net), money(rep.Settlement.Expenses.Total()))
	if rep.Settlement.RentalIncome > 0 {
		rep.logf("Collected %s in rent", money(rep.Settlement.RentalIncome))
	}
	for _, l := range rep.Settlement.Repaid {
		rep.logf("Paid off your %s loan", l.Kind)
	}
	if s.NegativeCashStreak > 0 {
		rep.logf("Cash is negative (%d month streak)", s.NegativeCashStreak)
	}

	if rep.Psychiatrist = g.ledger.Psychiatrist(s); rep.Psychiatrist {
		rep.logf("Visited a psychiatrist for %s", money(ledger.PsychiatristCost))
	}

	ny, nm := player.NextMonth(s.Year, s.Month)
	rep.Splits = market.ApplySplits(s, g.Market.SplitsAt(ny, nm))
	for _, sp := range rep.Splits {
		rep.logf("%s split %g:1, you now hold %g shares", sp.Split.Symbol, sp.Split.Ratio, sp.NewShares)
	}

	family.JitterCosts(s, g.src)
	rep.Family = family.Resolve(s, g.src, g.ids.New)
	if rep.Family.Transition != family.None {
		rep.logf("You %s (+%d happiness, %s/month)", rep.Family.Transition, rep.Family.Happiness, money(rep.Family.Cost))
	}
	if c, ok := family.Conversation(s, g.Data.Conversations, g.src); ok {
		rep.Conversation = &c
		rep.logf("%s (+%d happiness)", c.Message, c.Happiness)
	}

	if lifeEventClass(rep.Family) == genericEvent {
		if out, ok := g.events.Draw(s, g.src, g.ledger); ok {
			rep.Event = &out
			if !out.Noop {
				rep.logf("%s %s", out.Event.Description, costText(out.Cost))
			}
		}
	}

	g.Market.UpdateHomes(ny, nm, g.src)
	g.Market.Revalue(s)

	events.TickCooldowns(s.EventCooldowns)
	s.TickCooldowns()

	s.Turn++
	s.Year, s.Month = ny, nm
	if nm == 1 {
		s.AgeYears++
		rep.AnnualRaise, rep.Promotion = career.AdvanceYear(s, g.src)
		rep.logf("Happy birthday, you are %d. Annual raise %.1f%%", s.AgeYears, rep.AnnualRaise*100)
		if p := rep.Promotion; p != nil {
			rep.logf("Promoted to %s (+%.1f%%)", p.NewTitle, p.Raise*100)
		}
	}

	switch {
	case rep.Settlement.Bankrupt:
		g.end(Bankrupt, fmt.Sprintf("bankrupt after %d months of negative cash", s.NegativeCashStreak))
	case s.Year > g.opts.EndYear:
		g.end(Victory, fmt.Sprintf("made it to %d", s.Year))
	case s.AgeYears >= g.opts.EndAge:
		g.end(Victory, fmt.Sprintf("reached age %d", s.AgeYears))
	}
	rep.Outcome, rep.Reason = g.outcome, g.reason
	rep.Cash = s.Portfolio.Cash
	rep.NetWorth = g.NetWorth()

	g.log.Debug("turn settled",
		"turn", rep.Turn,
		"date", player.YearMonth(rep.Year, rep.Month),
		"cash", player.Cents(rep.Cash),
		"net_worth", player.Cents(rep.NetWorth),
		"happiness", s.Happiness,
	)
	return rep, nil
}

func costText(cost float64) string {
	switch {
	case cost > 0:
		return "(-" + money(cost) + ")"
	case cost < 0:
		return "(+" + money(-cost) + ")"
	}
	return ""
}
