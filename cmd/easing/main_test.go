package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// parseSolved returns the eased value from the single line of output of the
// solve command.
func parseSolved(t *testing.T, out string) float64 {
	t.Helper()
	fields := strings.Fields(out)
	if len(fields) != 2 {
		t.Fatalf("got %q, want one line with two values", out)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		t.Fatal(err)
	}
	return y
}

func TestSolveCommand(t *testing.T) {
	out, err := run(t, "solve", "--preset", "ease", "--epsilon", "1e-6", "0", "0.5", "1.5")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "0.5\t0.8024") {
		t.Errorf("got %q, want the eased value of ease at 0.5", lines[1])
	}
	// ease ends with a horizontal tangent.
	if lines[2] != "1.5\t1" {
		t.Errorf("got %q, want %q", lines[2], "1.5\t1")
	}
}

func TestSolveCommandCurve(t *testing.T) {
	out, err := run(t, "solve", "--curve", "0,0,1,1", "--epsilon", "1e-9", "0.25")
	if err != nil {
		t.Fatal(err)
	}
	if y := parseSolved(t, out); math.Abs(y-0.25) > 1e-8 {
		t.Errorf("got %v, want 0.25", y)
	}
}

func TestSolveCommandErrors(t *testing.T) {
	if _, err := run(t, "solve", "abc"); err == nil {
		t.Error("expected error for invalid progress value")
	}
	if _, err := run(t, "solve", "--preset", "wobble", "0.5"); err == nil {
		t.Error("expected error for unknown preset")
	}
	if _, err := run(t, "solve", "--curve", "0,0,1", "0.5"); err == nil {
		t.Error("expected error for incomplete curve")
	}
	if _, err := run(t, "solve"); err == nil {
		t.Error("expected error without arguments")
	}
}

func TestTableCommand(t *testing.T) {
	out, err := run(t, "table", "--preset", "linear", "--samples", "5", "--epsilon", "1e-9")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want a header and 5 rows:\n%s", len(lines), out)
	}
	if fields := strings.Fields(lines[3]); len(fields) != 3 || fields[0] != "0.5000" || fields[2] != "0.500000" {
		t.Errorf("got row %q", lines[3])
	}
}

func TestPlotCommand(t *testing.T) {
	out, err := run(t, "plot", "--preset", "ease-in-out")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "cubic-bezier(0.42, 0, 0.58, 1)") {
		t.Errorf("plot lacks caption:\n%s", out)
	}
}

func TestPresetsCommand(t *testing.T) {
	out, err := run(t, "presets")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"linear", "ease", "ease-in", "ease-out", "ease-in-out"} {
		if !strings.Contains(out, name) {
			t.Errorf("preset %q not listed", name)
		}
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "easing.yaml")
	if err := os.WriteFile(path, []byte("curve:\n  preset: ease-in\nepsilon: 1e-8\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "solve", "--config", path, "0.5")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "0.5\t0.3153") {
		t.Errorf("got %q, want the eased value of ease-in at 0.5", out)
	}

	// Flags override the file.
	out, err = run(t, "solve", "--config", path, "--preset", "linear", "0.5")
	if err != nil {
		t.Fatal(err)
	}
	if y := parseSolved(t, out); math.Abs(y-0.5) > 1e-7 {
		t.Errorf("got %v, want 0.5", y)
	}
}

func TestVerboseLogging(t *testing.T) {
	out, err := run(t, "solve", "-v", "--curve", "2,0,-1,1", "0.5")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "not monotonic") {
		t.Errorf("expected a warning about the non-monotonic curve:\n%s", out)
	}
}
