//go:build blackbox

package blackbox

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var lifesimBin string

func TestMain(m *testing.M) {
	tmp, err := os.MkdirTemp("", "lifesim-blackbox-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmp)

	lifesimBin = filepath.Join(tmp, "lifesim")

	// Build the binary once for all tests.
	cmd := exec.Command("go", "build", "-o", lifesimBin, "../../cmd/lifesim")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func run(t *testing.T, args ...string) string {
	t.Helper()

	cmd := exec.Command(lifesimBin, append([]string{"--no-color"}, args...)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("command failed: %v\nargs: %v\noutput:\n%s", err, args, string(out))
	}
	return string(out)
}
