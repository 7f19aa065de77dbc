// Package sim drives a game from start to finish: an optional policy acts
// before each month, every turn is journaled, and a context can stop the
// run between turns.
package sim

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/rustyeddy/lifesim/family"
	"github.com/rustyeddy/lifesim/game"
	"github.com/rustyeddy/lifesim/journal"
	"github.com/rustyeddy/lifesim/loan"
	"github.com/rustyeddy/lifesim/player"
)

// Runner advances one game.
type Runner struct {
	Game    *game.Game
	Journal journal.Journal
	Policy  Policy

	// MaxTurns stops the run early. Zero runs until the game ends.
	MaxTurns int
	RunID    string

	// OnTurn, when set, sees every report as it happens.
	OnTurn func(game.Report)

	attached bool
	pending  []player.CashFlowRecord
}

// Run plays turns until the game is over, MaxTurns is reached or ctx is
// done.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if r.Game == nil {
		return Result{}, fmt.Errorf("sim: Game is required")
	}
	if r.Journal == nil {
		r.Journal = journal.Noop{}
	}
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}
	r.attach()

	res := Result{RunID: r.RunID, Start: r.Game.State.YearMonth(), StartNetWorth: r.Game.NetWorth()}
	for !r.Game.Over() && (r.MaxTurns == 0 || res.Turns < r.MaxTurns) {
		if err := ctx.Err(); err != nil {
			return r.finish(res), err
		}

		if r.Policy != nil {
			acts, err := r.Policy.Act(r.Game)
			if err != nil {
				return r.finish(res), fmt.Errorf("policy: %w", err)
			}
			res.Actions += len(acts)
		}

		rep, err := r.Game.EndTurn()
		if err != nil {
			return r.finish(res), err
		}
		res.Turns++
		res.count(rep)

		if err := r.record(rep); err != nil {
			return r.finish(res), fmt.Errorf("journal: %w", err)
		}
		if r.OnTurn != nil {
			r.OnTurn(rep)
		}
	}
	return r.finish(res), nil
}

func (r *Runner) finish(res Result) Result {
	g := r.Game
	res.End = g.State.YearMonth()
	res.Outcome = g.Outcome()
	res.Reason = g.Reason()
	res.Age = g.State.AgeYears
	res.Cash = g.State.Portfolio.Cash
	res.Debt = loan.TotalBalance(g.State.Loans)
	res.NetWorth = g.NetWorth()
	res.Happiness = g.State.Happiness
	res.Salary = g.State.Career.GrossAnnual
	res.Title = g.State.Career.Title
	return res
}

func (r *Runner) record(rep game.Report) error {
	s := r.Game.State
	t := journal.TurnRecord{
		RunID:     r.RunID,
		Turn:      rep.Turn,
		Date:      player.YearMonth(rep.Year, rep.Month),
		Age:       s.AgeYears,
		Cash:      s.Portfolio.Cash,
		Bank:      s.Portfolio.Bank,
		Savings:   s.Portfolio.Savings,
		Debt:      loan.TotalBalance(s.Loans),
		NetWorth:  rep.NetWorth,
		Happiness: s.Happiness,
		Salary:    s.Career.GrossAnnual,
		Outcome:   rep.Outcome.String(),
	}
	if rep.Event != nil && !rep.Event.Noop {
		t.Event = rep.Event.Event.Description
	}
	if rep.Family.Transition != family.None {
		t.Family = rep.Family.Transition.String()
	}
	if err := r.Journal.RecordTurn(t); err != nil {
		return err
	}

	flows := r.pending
	r.pending = nil
	for _, rec := range flows {
		if err := r.Journal.RecordCashFlow(journal.CashFlow{RunID: r.RunID, CashFlowRecord: rec}); err != nil {
			return err
		}
	}
	return nil
}

// attach queues the records made before the run, oldest first, then
// subscribes to every record the game writes from here on.
func (r *Runner) attach() {
	if r.attached {
		return
	}
	r.attached = true
	r.pending = r.Game.CashFlowHistory()
	slices.Reverse(r.pending)
	r.Game.OnCashFlow(func(rec player.CashFlowRecord) {
		r.pending = append(r.pending, rec)
	})
}
