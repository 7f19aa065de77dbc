package sim

import (
	"fmt"
	"io"

	"github.com/rustyeddy/lifesim/game"
)

// Result summarizes a finished (or interrupted) run.
type Result struct {
	RunID string
	Start string
	End   string
	Turns int

	Outcome game.Outcome
	Reason  string

	Age       int
	Title     string
	Salary    float64
	Cash      float64
	Debt      float64
	Happiness int

	StartNetWorth float64
	NetWorth      float64

	Events      int
	Promotions  int
	Children    int
	Splits      int
	Psychiatry  int
	Actions     int
	WorstStreak int
}

func (r *Result) count(rep game.Report) {
	if rep.Event != nil && !rep.Event.Noop {
		r.Events++
	}
	if rep.Promotion != nil {
		r.Promotions++
	}
	if rep.Family.Child != nil {
		r.Children++
	}
	r.Splits += len(rep.Splits)
	if rep.Psychiatrist {
		r.Psychiatry++
	}
	r.WorstStreak = max(r.WorstStreak, rep.Settlement.Streak)
}

func PrintResult(w io.Writer, r Result) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Simulation Result")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Run ID:        %s\n", r.RunID)
	fmt.Fprintf(w, "Period:        %s to %s (%d months)\n", r.Start, r.End, r.Turns)
	fmt.Fprintf(w, "Outcome:       %s\n", r.Outcome)
	if r.Reason != "" {
		fmt.Fprintf(w, "Reason:        %s\n", r.Reason)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Life")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Age:           %d\n", r.Age)
	fmt.Fprintf(w, "Job:           %s ($%.0f/yr)\n", r.Title, r.Salary)
	fmt.Fprintf(w, "Happiness:     %d\n", r.Happiness)
	fmt.Fprintf(w, "Promotions:    %d\n", r.Promotions)
	fmt.Fprintf(w, "Children:      %d\n", r.Children)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Money")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Cash:          $%.2f\n", r.Cash)
	fmt.Fprintf(w, "Debt:          $%.2f\n", r.Debt)
	fmt.Fprintf(w, "Net Worth:     $%.2f (start $%.2f)\n", r.NetWorth, r.StartNetWorth)
	fmt.Fprintf(w, "Events:        %d\n", r.Events)
	fmt.Fprintf(w, "Stock Splits:  %d\n", r.Splits)
	fmt.Fprintf(w, "Worst Streak:  %d months below zero\n", r.WorstStreak)
}
