package sim

import (
	"github.com/rustyeddy/lifesim/game"
)

// Policy issues commands on the player's behalf before each turn.
type Policy interface {
	Act(g *game.Game) ([]string, error)
}

// PolicyFunc adapts a function to Policy.
type PolicyFunc func(g *game.Game) ([]string, error)

func (f PolicyFunc) Act(g *game.Game) ([]string, error) { return f(g) }

// Saver sweeps cash above KeepCash into savings.
type Saver struct {
	KeepCash float64
}

func (s Saver) Act(g *game.Game) ([]string, error) {
	extra := g.State.Portfolio.Cash - s.KeepCash
	if extra < 1 {
		return nil, nil
	}
	msg, err := g.Transfer(game.Cash, game.Savings, extra)
	if err != nil {
		return nil, err
	}
	return []string{msg}, nil
}
