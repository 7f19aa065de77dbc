package journal

import (
	"fmt"

	"github.com/rustyeddy/lifesim/player"
)

// RunSummary is one run as seen from its last recorded turn.
type RunSummary struct {
	RunID         string
	Turns         int
	FirstDate     string
	LastDate      string
	FinalNetWorth float64
	Outcome       string
}

// Runs lists every run in the journal, oldest first.
func (j *SQLite) Runs() ([]RunSummary, error) {
	rows, err := j.db.Query(`
		SELECT t.run_id, COUNT(*), MIN(t.date), MAX(t.date),
			(SELECT net_worth FROM turns l WHERE l.run_id = t.run_id ORDER BY l.turn DESC LIMIT 1),
			(SELECT outcome FROM turns l WHERE l.run_id = t.run_id ORDER BY l.turn DESC LIMIT 1)
		FROM turns t
		GROUP BY t.run_id
		ORDER BY MIN(t.rowid) ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.RunID, &r.Turns, &r.FirstDate, &r.LastDate, &r.FinalNetWorth, &r.Outcome); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Run returns the summary of a single run.
func (j *SQLite) Run(runID string) (RunSummary, error) {
	runs, err := j.Runs()
	if err != nil {
		return RunSummary{}, err
	}
	for _, r := range runs {
		if r.RunID == runID {
			return r, nil
		}
	}
	return RunSummary{}, fmt.Errorf("run %q not found", runID)
}

// ListTurns returns the turns of a run in order.
func (j *SQLite) ListTurns(runID string) ([]TurnRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, turn, date, age, cash, bank, savings, debt, net_worth, happiness, salary, event, family, outcome
		FROM turns
		WHERE run_id = ?
		ORDER BY turn ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TurnRecord
	for rows.Next() {
		var t TurnRecord
		if err := rows.Scan(
			&t.RunID,
			&t.Turn,
			&t.Date,
			&t.Age,
			&t.Cash,
			&t.Bank,
			&t.Savings,
			&t.Debt,
			&t.NetWorth,
			&t.Happiness,
			&t.Salary,
			&t.Event,
			&t.Family,
			&t.Outcome,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCashFlow returns a run's cash movements in the order they happened.
// An empty category matches everything.
func (j *SQLite) ListCashFlow(runID, category string) ([]CashFlow, error) {
	rows, err := j.db.Query(`
		SELECT id, run_id, date, type, amount, description, category, balance_after
		FROM cashflow
		WHERE run_id = ? AND (? = '' OR category = ?)
		ORDER BY date ASC, id ASC`, runID, category, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CashFlow
	for rows.Next() {
		var (
			c    CashFlow
			kind string
		)
		if err := rows.Scan(&c.ID, &c.RunID, &c.Date, &kind, &c.Amount, &c.Description, &c.Category, &c.BalanceAfter); err != nil {
			return nil, err
		}
		if c.Type, err = player.ParseFlowType(kind); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CategoryTotal is the sum of one category's movements in a run.
type CategoryTotal struct {
	Category string
	Income   float64
	Expense  float64
}

// Totals sums a run's cash flow by category.
func (j *SQLite) Totals(runID string) ([]CategoryTotal, error) {
	rows, err := j.db.Query(`
		SELECT category,
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount END), 0),
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount END), 0)
		FROM cashflow
		WHERE run_id = ?
		GROUP BY category
		ORDER BY category ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CategoryTotal
	for rows.Next() {
		var c CategoryTotal
		if err := rows.Scan(&c.Category, &c.Income, &c.Expense); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
