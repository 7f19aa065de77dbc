package refdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTablesLoad(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	assert.Equal(t, DefaultNoopEventID, d.NoopEventID)
	_, ok := d.Event("nothing")
	assert.True(t, ok)

	p, ok := d.Profession("barista")
	require.True(t, ok)
	assert.Equal(t, 24000.0, p.SalaryMin)
	assert.Nil(t, p.StudentLoan)

	lost, ok := d.Event("lost_wallet")
	require.True(t, ok)
	assert.Equal(t, Percentage, lost.CostType)
	assert.Equal(t, 3.0, lost.AvgCost())
	assert.Equal(t, -15, lost.Effects.Happiness)

	job, ok := d.SideJob("tutoring")
	require.True(t, ok)
	assert.Equal(t, 40, job.Requires.Wisdom)

	assert.NotEmpty(t, d.Splits)
	assert.Equal(t, 0.065, d.Lending.MortgageRate)
}

func TestParseRejectsUnknownCostType(t *testing.T) {
	_, err := Parse([]byte(`
professions: [{id: p, salary_min: 1, salary_max: 2}]
events:
  - {id: nothing, weight: 1, cost_range: [0, 0], cost_type: sometimes}
`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  string
	}{
		{"no professions", `events: []`, "at least one profession"},
		{"bad salary", `professions: [{id: p, salary_min: 10, salary_max: 5}]`, "salary range"},
		{
			"zero weight",
			"professions: [{id: p, salary_min: 1, salary_max: 2}]\nevents: [{id: nothing, weight: 0}]",
			"weight must be positive",
		},
		{
			"missing noop",
			"professions: [{id: p, salary_min: 1, salary_max: 2}]\nevents: [{id: rain, weight: 1}]",
			"no-op event",
		},
		{
			"split unknown stock",
			"professions: [{id: p, salary_min: 1, salary_max: 2}]\nsplits: [{symbol: ZZZ, year: 2001, month: 1, ratio: 2}]",
			"unknown stock",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
noop_event: idle
professions: [{id: clerk, title: Junior Clerk, salary_min: 30000, salary_max: 30000}]
events: [{id: idle, weight: 1}]
`), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "idle", d.NoopEventID)
	assert.Len(t, d.Professions, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
