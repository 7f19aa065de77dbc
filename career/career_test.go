package career

import (
	"testing"

	"github.com/rustyeddy/lifesim/player"
	"github.com/rustyeddy/lifesim/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState(level player.Level, years int) *player.State {
	s := player.New()
	s.Happiness = 500
	s.Career = player.Career{
		Title:        "Junior Software Developer",
		GrossAnnual:  60000,
		BaseRaise:    0.03,
		Level:        level,
		YearsAtLevel: years,
	}
	return s
}

func TestAnnualRaiseIsClamped(t *testing.T) {
	tests := []struct {
		name string
		norm float64
		want float64
	}{
		{"mean", 0, 0.03},
		{"capped", 10, AnnualRaiseMax},
		{"floored", -100, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := player.Career{GrossAnnual: 50000, BaseRaise: 0.03}
			r := AnnualRaise(&c, &rng.Sequence{Norms: []float64{tc.norm}})
			assert.InDelta(t, tc.want, r, 1e-12)
			assert.InDelta(t, 50000*(1+tc.want), c.GrossAnnual, 1e-6)
		})
	}
}

func TestJuniorPromotionWithinOneRolloverWhenOverdue(t *testing.T) {
	for _, draw := range []float64{0.1, 0.9} {
		s := newState(player.Junior, 5)
		_, promo := AdvanceYear(s, &rng.Sequence{Floats: []float64{draw, 0.5}})
		require.NotNil(t, promo)
		assert.Equal(t, player.Regular, s.Career.Level)
		assert.Equal(t, 0, s.Career.YearsAtLevel)
	}
}

func TestJuniorPromotionYearDrawnOnce(t *testing.T) {
	s := newState(player.Junior, 1)
	// Reaches 2 years; 0.9 picks year 3, so no promotion yet.
	_, promo := AdvanceYear(s, &rng.Sequence{Floats: []float64{0.9}})
	assert.Nil(t, promo)
	assert.Equal(t, 3, s.Career.PromotionYear)

	// Year 3 fires without another coin flip.
	seq := &rng.Sequence{Floats: []float64{0}}
	_, promo = AdvanceYear(s, seq)
	require.NotNil(t, promo)
	assert.Equal(t, 1, seq.Drawn())
	assert.Equal(t, "Regular Software Developer", s.Career.Title)
	assert.Equal(t, 540, s.Happiness)
	assert.InDelta(t, 60000*1.03*1.03*1.10, s.Career.GrossAnnual, 1e-6)
}

func TestJuniorNotEligibleBeforeTwoYears(t *testing.T) {
	s := newState(player.Junior, 0)
	seq := &rng.Sequence{}
	_, promo := AdvanceYear(s, seq)
	assert.Nil(t, promo)
	assert.Equal(t, 0, seq.Drawn())
	assert.Equal(t, 0, s.Career.PromotionYear)
}

func TestRegularToSenior(t *testing.T) {
	s := newState(player.Regular, 0)
	s.Career.Title = "Regular Software Developer"

	// 1 year + 2.5 < 4: not eligible, no draw.
	seq := &rng.Sequence{}
	_, promo := AdvanceYear(s, seq)
	assert.Nil(t, promo)
	assert.Equal(t, 0, seq.Drawn())

	// 2 years + 2.5 >= 4: a 0.3 draw misses the 25% chance.
	seq = &rng.Sequence{Floats: []float64{0.3}}
	_, promo = AdvanceYear(s, seq)
	assert.Nil(t, promo)
	assert.Equal(t, 1, seq.Drawn())

	_, promo = AdvanceYear(s, &rng.Sequence{Floats: []float64{0.2, 1}})
	require.NotNil(t, promo)
	assert.Equal(t, player.Senior, s.Career.Level)
	assert.Equal(t, "Senior Software Developer", s.Career.Title)
	assert.Equal(t, SeniorHappiness, promo.Happiness)
	assert.InDelta(t, 0.15, promo.Raise, 1e-12)
}

func TestSeniorIsTerminal(t *testing.T) {
	s := newState(player.Senior, 10)
	_, promo := AdvanceYear(s, &rng.Sequence{})
	assert.Nil(t, promo)
	assert.Equal(t, player.Senior, s.Career.Level)
}

func TestRetitle(t *testing.T) {
	assert.Equal(t, "Regular Nurse", Retitle("Junior Nurse", player.Regular))
	assert.Equal(t, "Senior Nurse", Retitle("Regular Nurse", player.Senior))
	assert.Equal(t, "Senior Chef", Retitle("Chef", player.Senior))
	assert.Equal(t, "Chef", Retitle("Chef", player.Regular))
}
