package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/lifesim/player"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()
	rows, err := csv.NewReader(fh).ReadAll()
	require.NoError(t, err)
	return rows
}

func newTestCSV(t *testing.T) (*CSV, string, string) {
	t.Helper()
	dir := t.TempDir()
	turns := filepath.Join(dir, "turns.csv")
	cash := filepath.Join(dir, "cashflow.csv")
	j, err := NewCSV(turns, cash)
	require.NoError(t, err)
	return j, turns, cash
}

func TestCSVHeaders(t *testing.T) {
	t.Parallel()

	j, turns, cash := newTestCSV(t)
	assert.NoError(t, j.Close())

	assert.Equal(t, [][]string{turnHeader}, readCSV(t, turns))
	assert.Equal(t, [][]string{cashFlowHeader}, readCSV(t, cash))
}

func TestCSVRecordTurn(t *testing.T) {
	t.Parallel()

	j, turns, _ := newTestCSV(t)
	require.NoError(t, j.RecordTurn(TurnRecord{
		RunID:     "r1",
		Turn:      3,
		Date:      "2000-03",
		Age:       24,
		Cash:      5552.126,
		Bank:      100,
		Savings:   0,
		Debt:      1200.5,
		NetWorth:  10451.6,
		Happiness: 535,
		Salary:    24000,
		Event:     "Car repair",
		Family:    "started dating",
		Outcome:   "playing",
	}))
	assert.NoError(t, j.Close())

	rows := readCSV(t, turns)
	require.Len(t, rows, 2)
	want := []string{"r1", "3", "2000-03", "24", "5552.13", "100.00", "0.00", "1200.50", "10451.60", "535", "24000.00", "Car repair", "started dating", "playing"}
	assert.Equal(t, want, rows[1])
}

func TestCSVRecordCashFlow(t *testing.T) {
	t.Parallel()

	j, _, cash := newTestCSV(t)
	require.NoError(t, j.RecordCashFlow(CashFlow{
		RunID: "r1",
		CashFlowRecord: player.CashFlowRecord{
			ID:           "01H",
			Date:         "2000-01",
			Type:         player.Expense,
			Amount:       605,
			Description:  "Monthly expenses",
			Category:     "living",
			BalanceAfter: 5552,
		},
	}))
	assert.NoError(t, j.Close())

	rows := readCSV(t, cash)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"01H", "r1", "2000-01", "expense", "605.00", "Monthly expenses", "living", "5552.00"}, rows[1])
}

func TestNoop(t *testing.T) {
	var j Journal = Noop{}
	assert.NoError(t, j.RecordTurn(TurnRecord{}))
	assert.NoError(t, j.RecordCashFlow(CashFlow{}))
	assert.NoError(t, j.Close())
}
