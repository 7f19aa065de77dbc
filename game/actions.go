package game

import (
	"fmt"

	"github.com/rustyeddy/lifesim/player"
	"github.com/rustyeddy/lifesim/rng"
)

const parentsCooldown = "parents"

func jobCooldown(id string) string   { return "job:" + id }
func learnCooldown(id string) string { return "learn:" + id }

func (g *Game) cooling(key string) (int, bool) {
	left, ok := g.State.ActionCooldowns[key]
	return left, ok && left > 0
}

// AskParents asks for a cash gift. It only works while young and broke,
// costs some pride, and can't be repeated for a while.
func (g *Game) AskParents() (string, error) {
	if g.Over() {
		return "", ErrGameOver
	}
	s, p := g.State, g.Data.Parents
	if left, ok := g.cooling(parentsCooldown); ok {
		return "", invalid("Your parents helped recently, ask again in %d months", left)
	}
	if s.AgeYears > p.MaxAge {
		return "", invalid("At %d you're too old to ask your parents for money", s.AgeYears)
	}
	if s.Portfolio.Cash > p.MaxCash {
		return "", invalid("Your parents think %s is plenty", money(s.Portfolio.Cash))
	}
	gift := player.Cents(rng.Uniform(g.src, p.Gift.Min(), p.Gift.Max()))
	s.AdjustHappiness(p.Happiness)
	if p.Cooldown > 0 {
		s.ActionCooldowns[parentsCooldown] = p.Cooldown
	}
	g.ledger.Record(s, player.Income, gift, "Help from parents", "family")
	return fmt.Sprintf("Your parents gave you %s", money(gift)), nil
}

// BuyLotteryTicket buys one ticket and draws it immediately.
func (g *Game) BuyLotteryTicket() (string, error) {
	if g.Over() {
		return "", ErrGameOver
	}
	s, l := g.State, g.Data.Lottery
	if s.Portfolio.Cash < l.Price {
		return "", invalid("A ticket costs %s", money(l.Price))
	}
	g.ledger.Record(s, player.Expense, l.Price, "Lottery ticket", "lottery")

	f := g.src.Float64()
	switch {
	case f < l.JackpotOdds:
		g.ledger.Record(s, player.Income, l.Jackpot, "Lottery jackpot", "lottery")
		g.log.Info("lottery jackpot", "prize", l.Jackpot, "date", s.YearMonth())
		return fmt.Sprintf("JACKPOT! You won %s", money(l.Jackpot)), nil
	case f < l.JackpotOdds+l.SmallOdds:
		g.ledger.Record(s, player.Income, l.SmallPrize, "Lottery prize", "lottery")
		return fmt.Sprintf("You won %s", money(l.SmallPrize)), nil
	}
	return "No luck this time", nil
}

// unmet returns the first stat below its requirement. Zero requirements
// are ignored.
func unmet(have, need player.Stats) (string, int, bool) {
	for _, c := range []struct {
		name       string
		have, need int
	}{
		{"energy", have.Energy, need.Energy},
		{"focus", have.Focus, need.Focus},
		{"wisdom", have.Wisdom, need.Wisdom},
		{"charm", have.Charm, need.Charm},
		{"luck", have.Luck, need.Luck},
		{"psp", have.PSP, need.PSP},
	} {
		if c.have < c.need {
			return c.name, c.need, true
		}
	}
	return "", 0, false
}

// SideJob works a one-off gig for pay, spending energy.
func (g *Game) SideJob(jobID string) (string, error) {
	if g.Over() {
		return "", ErrGameOver
	}
	job, ok := g.Data.SideJob(jobID)
	if !ok {
		return "", invalid("Unknown side job %q", jobID)
	}
	s := g.State
	if left, ok := g.cooling(jobCooldown(jobID)); ok {
		return "", invalid("You can do %s again in %d months", job.Name, left)
	}
	if name, need, ok := unmet(s.Stats, job.Requires); ok {
		return "", invalid("%s needs %s of at least %d", job.Name, name, need)
	}
	if s.Stats.Energy-job.Energy < player.MinStat {
		return "", invalid("You're too tired for %s", job.Name)
	}

	pay := player.Cents(rng.Uniform(g.src, job.Pay.Min(), job.Pay.Max()))
	s.ApplyEffects(player.Effects{Energy: -job.Energy})
	if job.Cooldown > 0 {
		s.ActionCooldowns[jobCooldown(jobID)] = job.Cooldown
	}
	g.ledger.Record(s, player.Income, pay, job.Name, "side_job")
	return fmt.Sprintf("Earned %s from %s", money(pay), job.Name), nil
}

// Learn pays for a course or similar and applies its stat effects.
func (g *Game) Learn(learningID string) (string, error) {
	if g.Over() {
		return "", ErrGameOver
	}
	def, ok := g.Data.LearningEvent(learningID)
	if !ok {
		return "", invalid("Unknown learning event %q", learningID)
	}
	s := g.State
	if left, ok := g.cooling(learnCooldown(learningID)); ok {
		return "", invalid("You can take %s again in %d months", def.Name, left)
	}
	if s.Portfolio.Cash < def.Cost {
		return "", invalid("Not enough cash: %s costs %s", def.Name, money(def.Cost))
	}
	s.ApplyEffects(def.Effects)
	if def.Cooldown > 0 {
		s.ActionCooldowns[learnCooldown(learningID)] = def.Cooldown
	}
	g.ledger.Record(s, player.Expense, def.Cost, def.Name, "learning")
	if def.Effects.IsZero() {
		return "Finished " + def.Name, nil
	}
	return fmt.Sprintf("Finished %s (%s)", def.Name, def.Effects), nil
}
