// Package family advances the relationship state machine: Single, Dating,
// Married, then children. Transitions only move forward.
package family

import (
	"math"

	"github.com/rustyeddy/lifesim/player"
	"github.com/rustyeddy/lifesim/refdata"
	"github.com/rustyeddy/lifesim/rng"
)

const (
	DatingChance    = 0.10
	DatingCostMin   = 25
	DatingCostMax   = 100
	DatingHappiness = 35

	MarriageChance    = 0.025
	FamilyCostMin     = 200
	FamilyCostMax     = 500
	MarriageHappiness = 60

	BaseChildChance = 0.025
	ChildChanceStep = 0.01
	MinChildChance  = 0.0025
	ChildCostMin    = 300
	ChildCostMax    = 1000
	ChildHappiness  = 50

	ConversationChance = 0.15
	SpouseShare        = 0.6

	DatingJitter = 0.20
	DatingFloor  = 15
	FamilyJitter = 0.15
	FamilyFloor  = 150
)

type Transition int

const (
	None Transition = iota
	StartedDating
	GotMarried
	ChildBorn
)

func (t Transition) String() string {
	switch t {
	case StartedDating:
		return "started dating"
	case GotMarried:
		return "got married"
	case ChildBorn:
		return "child born"
	}
	return "none"
}

type Event struct {
	Transition Transition
	Cost       float64 // new monthly cost taken on
	Happiness  int
	Child      *player.Child
}

// ChildChance is max(0.25%, 2.5% − children·1%).
func ChildChance(children int) float64 {
	return math.Max(MinChildChance, BaseChildChance-float64(children)*ChildChanceStep)
}

// Decide makes the single draw that says whether the relationship moves
// forward this month.
func Decide(rel player.Relationship, src rng.Source) Transition {
	switch rel.Status {
	case player.Single:
		if rng.Chance(src, DatingChance) {
			return StartedDating
		}
	case player.Dating:
		if rng.Chance(src, MarriageChance) {
			return GotMarried
		}
	case player.Married:
		if rng.Chance(src, ChildChance(rel.ChildrenCount())) {
			return ChildBorn
		}
	}
	return None
}

// Apply carries out t on s.
func Apply(s *player.State, t Transition, src rng.Source, newID func() string) Event {
	ev := Event{Transition: t}
	rel := &s.Relationship
	switch t {
	case StartedDating:
		ev.Cost = float64(rng.IntRange(src, DatingCostMin, DatingCostMax))
		ev.Happiness = DatingHappiness
		rel.Status = player.Dating
		rel.MonthlyDatingCost = ev.Cost
	case GotMarried:
		ev.Cost = float64(rng.IntRange(src, FamilyCostMin, FamilyCostMax))
		ev.Happiness = MarriageHappiness
		rel.Status = player.Married
		rel.MonthlyDatingCost = 0
		rel.MonthlyFamilyCost = ev.Cost
	case ChildBorn:
		ev.Cost = float64(rng.IntRange(src, ChildCostMin, ChildCostMax))
		ev.Happiness = ChildHappiness
		child := player.Child{
			ID:          newID(),
			BirthYear:   s.Year,
			BirthMonth:  s.Month,
			MonthlyCost: ev.Cost,
		}
		rel.MonthlyFamilyCost += ev.Cost
		rel.Children = append(rel.Children, child)
		ev.Child = &child
	default:
		return ev
	}
	s.AdjustHappiness(ev.Happiness)
	return ev
}

// Resolve decides and applies this month's transition.
func Resolve(s *player.State, src rng.Source, newID func() string) Event {
	return Apply(s, Decide(s.Relationship, src), src, newID)
}

// JitterCosts drifts the running relationship costs: ±20% while dating
// (floor $15), ±15% while married (floor $150).
func JitterCosts(s *player.State, src rng.Source) {
	rel := &s.Relationship
	switch rel.Status {
	case player.Dating:
		c := rel.MonthlyDatingCost * rng.Uniform(src, 1-DatingJitter, 1+DatingJitter)
		rel.MonthlyDatingCost = math.Max(DatingFloor, math.Round(c))
	case player.Married:
		c := rel.MonthlyFamilyCost * rng.Uniform(src, 1-FamilyJitter, 1+FamilyJitter)
		rel.MonthlyFamilyCost = math.Max(FamilyFloor, math.Round(c))
	}
}

// Conversation may pick a chat with the spouse or a child and apply its
// happiness bonus. Without a spouse or children nothing is drawn.
func Conversation(s *player.State, pool []refdata.Conversation, src rng.Source) (refdata.Conversation, bool) {
	spouse := s.Relationship.Status == player.Married
	kids := s.Relationship.ChildrenCount() > 0
	if !spouse && !kids {
		return refdata.Conversation{}, false
	}
	if !rng.Chance(src, ConversationChance) {
		return refdata.Conversation{}, false
	}

	with := "child"
	switch {
	case spouse && kids:
		if rng.Chance(src, SpouseShare) {
			with = "spouse"
		}
	case spouse:
		with = "spouse"
	}

	var msgs []refdata.Conversation
	for _, c := range pool {
		if c.With == with {
			msgs = append(msgs, c)
		}
	}
	if len(msgs) == 0 {
		return refdata.Conversation{}, false
	}
	c := msgs[rng.IntRange(src, 0, len(msgs)-1)]
	s.AdjustHappiness(c.Happiness)
	return c, true
}
