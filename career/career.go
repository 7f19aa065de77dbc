// Package career models salary growth: a yearly raise for everyone plus
// promotions from junior to regular to senior.
package career

import (
	"math"
	"strings"

	"github.com/rustyeddy/lifesim/player"
	"github.com/rustyeddy/lifesim/rng"
)

const (
	// Junior to regular: the promotion year is drawn once, 2 or 3.
	JuniorMinYears = 2
	JuniorMaxYears = 3

	// Regular to senior uses years at level plus an assumed 2.5 years spent
	// as junior as the total career length.
	AssumedJuniorYears = 2.5
	SeniorMinCareer    = 4.0
	SeniorChance       = 0.25

	PromotionRaiseMin = 0.10
	PromotionRaiseMax = 0.15

	RegularHappiness = 40
	SeniorHappiness  = 50

	AnnualRaiseSD  = 0.005
	AnnualRaiseMax = 0.035
)

type Promotion struct {
	From      player.Level
	To        player.Level
	Raise     float64
	OldTitle  string
	NewTitle  string
	Happiness int
}

// AnnualRaise applies clamp(N(base, 0.005), 0, 0.035) to the gross salary
// and returns the rate used.
func AnnualRaise(c *player.Career, src rng.Source) float64 {
	r := rng.Normal(src, c.BaseRaise, AnnualRaiseSD)
	r = math.Max(0, math.Min(AnnualRaiseMax, r))
	c.GrossAnnual *= 1 + r
	return r
}

// AdvanceYear runs the year-end career update: the annual raise, one more
// year at the current level, then the promotion check.
func AdvanceYear(s *player.State, src rng.Source) (float64, *Promotion) {
	raise := AnnualRaise(&s.Career, src)
	s.Career.YearsAtLevel++
	return raise, CheckPromotion(s, src)
}

// CheckPromotion promotes the character if the current level's rule fires.
func CheckPromotion(s *player.State, src rng.Source) *Promotion {
	c := &s.Career
	switch c.Level {
	case player.Junior:
		if c.YearsAtLevel < JuniorMinYears {
			return nil
		}
		if c.PromotionYear == 0 {
			c.PromotionYear = JuniorMaxYears
			if rng.Chance(src, 0.5) {
				c.PromotionYear = JuniorMinYears
			}
		}
		if c.YearsAtLevel < c.PromotionYear {
			return nil
		}
		return promote(s, player.Regular, src)
	case player.Regular:
		if float64(c.YearsAtLevel)+AssumedJuniorYears < SeniorMinCareer {
			return nil
		}
		if !rng.Chance(src, SeniorChance) {
			return nil
		}
		return promote(s, player.Senior, src)
	}
	return nil
}

func promote(s *player.State, to player.Level, src rng.Source) *Promotion {
	c := &s.Career
	p := &Promotion{
		From:     c.Level,
		To:       to,
		Raise:    rng.Uniform(src, PromotionRaiseMin, PromotionRaiseMax),
		OldTitle: c.Title,
		NewTitle: Retitle(c.Title, to),
	}
	p.Happiness = RegularHappiness
	if to == player.Senior {
		p.Happiness = SeniorHappiness
	}

	c.GrossAnnual *= 1 + p.Raise
	c.Title = p.NewTitle
	c.Level = to
	c.YearsAtLevel = 0
	c.PromotionYear = 0
	s.AdjustHappiness(p.Happiness)
	return p
}

// Retitle rewrites a job title for a new level: "Junior" becomes "Regular",
// "Regular" becomes "Senior".
func Retitle(title string, to player.Level) string {
	switch to {
	case player.Regular:
		return strings.Replace(title, "Junior", "Regular", 1)
	case player.Senior:
		if strings.Contains(title, "Regular") {
			return strings.Replace(title, "Regular", "Senior", 1)
		}
		if strings.Contains(title, "Junior") {
			return strings.Replace(title, "Junior", "Senior", 1)
		}
		return "Senior " + title
	}
	return title
}
