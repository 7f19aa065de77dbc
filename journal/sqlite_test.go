package journal

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/lifesim/player"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	j, err := NewSQLite(path)
	require.NoError(t, err)
	return j, path
}

func turn(run string, n int, date string, netWorth float64, outcome string) TurnRecord {
	return TurnRecord{RunID: run, Turn: n, Date: date, Age: 24, Cash: 100 * float64(n), NetWorth: netWorth, Happiness: 500, Salary: 24000, Outcome: outcome}
}

func flow(run, id, date string, kind player.FlowType, amount float64, category string) CashFlow {
	return CashFlow{RunID: run, CashFlowRecord: player.CashFlowRecord{
		ID: id, Date: date, Type: kind, Amount: amount, Description: category, Category: category,
	}}
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	require.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('turns','cashflow')`)
	require.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		assert.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	assert.NoError(t, rows.Err())
	assert.True(t, found["turns"])
	assert.True(t, found["cashflow"])
}

func TestSQLiteTurns(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	for i := 1; i <= 3; i++ {
		require.NoError(t, j.RecordTurn(turn("a", i, fmt.Sprintf("2000-%02d", i), float64(i*1000), "playing")))
	}
	require.NoError(t, j.RecordTurn(turn("b", 1, "2000-01", 50, "bankrupt")))

	// (run, turn) is unique
	assert.Error(t, j.RecordTurn(turn("a", 2, "2000-02", 0, "playing")))

	got, err := j.ListTurns("a")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, turn("a", 2, "2000-02", 2000, "playing"), got[1])

	runs, err := j.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, RunSummary{RunID: "a", Turns: 3, FirstDate: "2000-01", LastDate: "2000-03", FinalNetWorth: 3000, Outcome: "playing"}, runs[0])
	assert.Equal(t, "bankrupt", runs[1].Outcome)

	_, err = j.Run("missing")
	assert.ErrorContains(t, err, "not found")
}

func TestSQLiteCashFlow(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	require.NoError(t, j.RecordCashFlow(flow("a", "01", "2000-01", player.Income, 1157, "salary")))
	require.NoError(t, j.RecordCashFlow(flow("a", "02", "2000-01", player.Expense, 605, "living")))
	require.NoError(t, j.RecordCashFlow(flow("a", "03", "2000-02", player.Income, 1157, "salary")))
	require.NoError(t, j.RecordCashFlow(flow("b", "04", "2000-01", player.Income, 99, "salary")))

	all, err := j.ListCashFlow("a", "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "01", all[0].ID)
	assert.Equal(t, player.Expense, all[1].Type)

	salary, err := j.ListCashFlow("a", "salary")
	require.NoError(t, err)
	assert.Len(t, salary, 2)

	totals, err := j.Totals("a")
	require.NoError(t, err)
	assert.Equal(t, []CategoryTotal{
		{Category: "living", Expense: 605},
		{Category: "salary", Income: 2314},
	}, totals)
}

func TestSQLiteCashFlowIDsScopedToRun(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	// Same-seed runs mint the same IDs.
	require.NoError(t, j.RecordCashFlow(flow("a", "01", "2000-01", player.Income, 1157, "salary")))
	require.NoError(t, j.RecordCashFlow(flow("b", "01", "2000-01", player.Income, 1157, "salary")))
	assert.Error(t, j.RecordCashFlow(flow("a", "01", "2000-01", player.Income, 1157, "salary")))

	for _, run := range []string{"a", "b"} {
		got, err := j.ListCashFlow(run, "")
		require.NoError(t, err)
		assert.Len(t, got, 1, run)
	}
}
