package family

import (
	"testing"

	"github.com/rustyeddy/lifesim/player"
	"github.com/rustyeddy/lifesim/refdata"
	"github.com/rustyeddy/lifesim/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState() *player.State {
	s := player.New()
	s.Year, s.Month = 2003, 4
	s.Happiness = 500
	return s
}

func ids() func() string {
	return func() string { return "child-1" }
}

func TestChildChance(t *testing.T) {
	assert.InDelta(t, 0.025, ChildChance(0), 1e-12)
	assert.InDelta(t, 0.015, ChildChance(1), 1e-12)
	assert.InDelta(t, 0.005, ChildChance(2), 1e-12)
	assert.InDelta(t, 0.0025, ChildChance(3), 1e-12)
	assert.InDelta(t, 0.0025, ChildChance(10), 1e-12)
}

func TestSingleToDating(t *testing.T) {
	s := newState()
	assert.Equal(t, None, Resolve(s, &rng.Sequence{Floats: []float64{0.10}}, ids()).Transition)

	ev := Resolve(s, &rng.Sequence{Floats: []float64{0.05, 0}}, ids())
	assert.Equal(t, StartedDating, ev.Transition)
	assert.Equal(t, player.Dating, s.Relationship.Status)
	assert.Equal(t, 25.0, s.Relationship.MonthlyDatingCost)
	assert.Equal(t, 535, s.Happiness)
}

func TestDatingToMarried(t *testing.T) {
	s := newState()
	s.Relationship = player.Relationship{Status: player.Dating, MonthlyDatingCost: 60}

	assert.Equal(t, None, Resolve(s, &rng.Sequence{Floats: []float64{0.025}}, ids()).Transition)

	ev := Resolve(s, &rng.Sequence{Floats: []float64{0.01, 0.99999}}, ids())
	assert.Equal(t, GotMarried, ev.Transition)
	assert.Equal(t, player.Married, s.Relationship.Status)
	assert.Equal(t, 0.0, s.Relationship.MonthlyDatingCost)
	assert.Equal(t, 500.0, s.Relationship.MonthlyFamilyCost)
	assert.Equal(t, 560, s.Happiness)
}

func TestChildBornWithTwoChildren(t *testing.T) {
	s := newState()
	s.Relationship = player.Relationship{
		Status:            player.Married,
		MonthlyFamilyCost: 1000,
		Children:          []player.Child{{ID: "a"}, {ID: "b"}},
	}

	// 0.5% chance: a 0.0051 draw misses, 0.0049 hits.
	assert.Equal(t, None, Decide(s.Relationship, &rng.Sequence{Floats: []float64{0.0051}}))

	ev := Resolve(s, &rng.Sequence{Floats: []float64{0.0049, 0}}, ids())
	require.Equal(t, ChildBorn, ev.Transition)
	require.NotNil(t, ev.Child)
	assert.Equal(t, 3, s.Relationship.ChildrenCount())
	assert.Equal(t, 1300.0, s.Relationship.MonthlyFamilyCost)
	assert.Equal(t, player.Child{ID: "child-1", BirthYear: 2003, BirthMonth: 4, MonthlyCost: 300}, s.Relationship.Children[2])
	assert.Equal(t, 550, s.Happiness)
}

func TestJitterCostsFloors(t *testing.T) {
	s := newState()
	s.Relationship = player.Relationship{Status: player.Dating, MonthlyDatingCost: 16}
	JitterCosts(s, &rng.Sequence{Floats: []float64{0}})
	assert.Equal(t, 15.0, s.Relationship.MonthlyDatingCost)

	s.Relationship = player.Relationship{Status: player.Married, MonthlyFamilyCost: 400}
	JitterCosts(s, &rng.Sequence{Floats: []float64{1}})
	assert.Equal(t, 460.0, s.Relationship.MonthlyFamilyCost)

	s.Relationship.MonthlyFamilyCost = 160
	JitterCosts(s, &rng.Sequence{Floats: []float64{0}})
	assert.Equal(t, 150.0, s.Relationship.MonthlyFamilyCost)

	single := newState()
	seq := &rng.Sequence{}
	JitterCosts(single, seq)
	assert.Equal(t, 0, seq.Drawn())
}

var pool = []refdata.Conversation{
	{With: "spouse", Message: "dinner", Happiness: 10},
	{With: "child", Message: "drawing", Happiness: 12},
}

func TestConversation(t *testing.T) {
	s := newState()
	seq := &rng.Sequence{Floats: []float64{0}}
	_, ok := Conversation(s, pool, seq)
	assert.False(t, ok)
	assert.Equal(t, 0, seq.Drawn(), "single characters have nobody to talk to")

	s.Relationship = player.Relationship{Status: player.Married, Children: []player.Child{{ID: "a"}}}
	c, ok := Conversation(s, pool, &rng.Sequence{Floats: []float64{0.1, 0.7, 0}})
	require.True(t, ok)
	assert.Equal(t, "drawing", c.Message)
	assert.Equal(t, 512, s.Happiness)

	c, ok = Conversation(s, pool, &rng.Sequence{Floats: []float64{0.1, 0.5, 0}})
	require.True(t, ok)
	assert.Equal(t, "dinner", c.Message)

	_, ok = Conversation(s, pool, &rng.Sequence{Floats: []float64{0.15}})
	assert.False(t, ok)
}
