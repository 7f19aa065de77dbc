// Package events draws the monthly random life event: a weighted pick
// among events whose cooldown has elapsed, with bad events damped by luck.
package events

import (
	"math"

	"github.com/rustyeddy/lifesim/player"
	"github.com/rustyeddy/lifesim/refdata"
	"github.com/rustyeddy/lifesim/rng"
)

const (
	LuckBaseline  = 25
	LuckSpan      = 54
	LuckDampening = 0.5
)

// Recorder books a cash movement. *ledger.Ledger implements it.
type Recorder interface {
	Record(s *player.State, kind player.FlowType, amount float64, desc, category string)
}

// LuckFactor maps luck onto [0, 1]: 0 at or below 25, 1 at 79 and above.
func LuckFactor(luck int) float64 {
	f := float64(luck-LuckBaseline) / LuckSpan
	return math.Max(0, math.Min(1, f))
}

type Candidate struct {
	Def    refdata.EventDefinition
	Weight float64
}

type Outcome struct {
	Event refdata.EventDefinition
	Noop  bool
	Cost  float64 // negative is income
}

type Engine struct {
	defs   []refdata.EventDefinition
	noopID string
}

func New(defs []refdata.EventDefinition, noopID string) *Engine {
	return &Engine{defs: defs, noopID: noopID}
}

// IsBad reports whether luck should damp def: it costs money on average and
// is not the no-op event.
func (e *Engine) IsBad(def refdata.EventDefinition) bool {
	return def.ID != e.noopID && def.AvgCost() > 0
}

// AdjustedWeight is weight·(1 − luckFactor·0.5) for bad events and the raw
// weight otherwise.
func (e *Engine) AdjustedWeight(def refdata.EventDefinition, luck int) float64 {
	if !e.IsBad(def) {
		return def.Weight
	}
	return def.Weight * (1 - LuckFactor(luck)*LuckDampening)
}

// Eligible returns the events whose cooldown has run out, in table order.
func (e *Engine) Eligible(cooldowns map[string]int) []refdata.EventDefinition {
	var out []refdata.EventDefinition
	for _, d := range e.defs {
		if cooldowns[d.ID] <= 0 {
			out = append(out, d)
		}
	}
	return out
}

func (e *Engine) Weigh(eligible []refdata.EventDefinition, luck int) []Candidate {
	out := make([]Candidate, 0, len(eligible))
	for _, d := range eligible {
		out = append(out, Candidate{Def: d, Weight: e.AdjustedWeight(d, luck)})
	}
	return out
}

// Select draws r from U(0, Σweight) and walks the candidates subtracting
// each weight until r ≤ 0. Float residue past the end picks the last one.
func Select(cands []Candidate, src rng.Source) (refdata.EventDefinition, bool) {
	var total float64
	for _, c := range cands {
		total += c.Weight
	}
	if len(cands) == 0 || total <= 0 {
		return refdata.EventDefinition{}, false
	}
	r := rng.Uniform(src, 0, total)
	for _, c := range cands {
		r -= c.Weight
		if r <= 0 {
			return c.Def, true
		}
	}
	return cands[len(cands)-1].Def, true
}

// Cost draws the cash cost of def. Fixed ranges give a whole dollar amount;
// percentage ranges take a share of current cash, and nothing when cash is
// not positive.
func Cost(def refdata.EventDefinition, cash float64, src rng.Source) float64 {
	if def.CostType == refdata.Percentage {
		pct := rng.Uniform(src, def.CostRange.Min(), def.CostRange.Max())
		if cash <= 0 {
			return 0
		}
		return math.Floor(cash * pct / 100)
	}
	return float64(rng.IntRange(src, int(def.CostRange.Min()), int(def.CostRange.Max())))
}

// Apply resolves def against s: cash, clamped stat effects, then the
// event's cooldown.
func (e *Engine) Apply(s *player.State, def refdata.EventDefinition, src rng.Source, rec Recorder) Outcome {
	out := Outcome{Event: def}
	if def.ID == e.noopID {
		out.Noop = true
		return out
	}
	out.Cost = Cost(def, s.Portfolio.Cash, src)
	if out.Cost != 0 {
		rec.Record(s, player.Expense, out.Cost, def.Description, "event")
	}
	s.ApplyEffects(def.Effects)
	if def.Cooldown > 0 {
		s.EventCooldowns[def.ID] = def.Cooldown
	}
	return out
}

// Draw runs the full generic draw for this month. ok is false only when no
// event is eligible.
func (e *Engine) Draw(s *player.State, src rng.Source, rec Recorder) (Outcome, bool) {
	def, ok := Select(e.Weigh(e.Eligible(s.EventCooldowns), s.Stats.Luck), src)
	if !ok {
		return Outcome{}, false
	}
	return e.Apply(s, def, src, rec), true
}

// TickCooldowns decrements every cooldown by one, flooring at zero.
func TickCooldowns(cooldowns map[string]int) {
	for id, left := range cooldowns {
		if left <= 1 {
			delete(cooldowns, id)
			continue
		}
		cooldowns[id] = left - 1
	}
}
