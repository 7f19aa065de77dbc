package journal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/lifesim/player"
)

func TestFormatOrg(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	for i := 1; i <= 14; i++ {
		y, m := 2000+(i-1)/12, (i-1)%12+1
		require.NoError(t, j.RecordTurn(turn("run-1", i, fmt.Sprintf("%d-%02d", y, m), float64(i), "playing")))
	}
	require.NoError(t, j.RecordCashFlow(flow("run-1", "01", "2000-01", player.Income, 1157, "salary")))

	r, err := j.Report("run-1")
	require.NoError(t, err)
	out, err := FormatOrg(r)
	require.NoError(t, err)

	assert.Contains(t, out, "* Run run-1")
	assert.Contains(t, out, ":TURNS: 14")
	assert.Contains(t, out, ":NET_WORTH: 14.00")
	assert.Contains(t, out, "| 2000-12 |")
	assert.Contains(t, out, "| 2001-02 |")
	assert.NotContains(t, out, "| 2000-06 |")
	assert.Contains(t, out, "| salary | 1157.00 | 0.00 |")
}
