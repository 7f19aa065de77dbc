//go:build blackbox

package blackbox

import (
	"os"
	"strconv"
	"strings"
	"testing"
)

func contains(s, sub string) bool { return strings.Contains(s, sub) }

// writeConfig writes a YAML config that journals to dbPath.
func writeConfig(t *testing.T, path, dbPath string, turns int) {
	t.Helper()
	body := `player:
  name: Robin
  profession: teacher
  start_age: 24
  happiness: 500
  stats: {energy: 60, focus: 50, wisdom: 30, charm: 40, luck: 25, psp: 10}
  max_stats: {energy: 100, focus: 100, wisdom: 100, charm: 100, luck: 79, psp: 100}
  starter_vehicle: used_sedan
simulation:
  seed: 11
  start_year: 2000
  start_month: 1
  end_year: 2025
  end_age: 49
  max_turns: ` + strconv.Itoa(turns) + `
rules:
  federal_rate: 0.245
  fica_rate: 0.0765
  health_insurance: 200
  savings_apy: 0.03
  bankruptcy_months: 6
journal:
  type: sqlite
  db_path: ` + dbPath + `
policy:
  type: saver
  keep_cash: 2500
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}
