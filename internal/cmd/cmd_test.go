package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deanlue0801/alliance-war-planner/internal/domain"
	"github.com/deanlue0801/alliance-war-planner/internal/testutil"
	"github.com/spf13/cobra"
)

// executeCommand runs a cobra command with args and returns captured output.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeRosterFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestPlanCommandPrintsReport(t *testing.T) {
	our := writeRosterFile(t, "our.txt", testutil.PowerText(testutil.UniformRoster(domain.RosterSize, 100)))
	enemy := writeRosterFile(t, "enemy.txt", testutil.PowerText(testutil.UniformRoster(10, 100)))

	out, err := executeCommand(rootCmd, "plan",
		"--our", our,
		"--enemy-left", enemy,
		"--enemy-center", enemy,
		"--enemy-right", enemy,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v (output %s)", err, out)
	}

	var report domain.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("expected JSON report, got %q: %v", out, err)
	}
	if report.Outcome != domain.OutcomeSuccess {
		t.Fatalf("expected success outcome, got %s (%s)", report.Outcome, report.Summary)
	}
}

func TestPlanCommandAppliesAdvantages(t *testing.T) {
	our := writeRosterFile(t, "our.txt", testutil.PowerText(testutil.UniformRoster(domain.RosterSize, 100)))
	enemy := writeRosterFile(t, "enemy.txt", testutil.PowerText(testutil.UniformRoster(10, 100)))

	out, err := executeCommand(rootCmd, "plan",
		"--our", our,
		"--enemy-left", enemy,
		"--enemy-center", enemy,
		"--enemy-right", enemy,
		"--left-advantage", "500",
		"--right-advantage", "-300",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var report domain.Report
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("expected JSON report: %v", err)
	}
	if report.Targets[domain.LaneLeft] != 1500 {
		t.Fatalf("expected left target 1500, got %d", report.Targets[domain.LaneLeft])
	}
	if report.Targets[domain.LaneRight] != 700 {
		t.Fatalf("expected right target 700, got %d", report.Targets[domain.LaneRight])
	}
}

func TestPlanCommandMissingRosterFile(t *testing.T) {
	if _, err := executeCommand(rootCmd, "plan", "--our", "/does/not/exist.txt"); err == nil {
		t.Fatal("expected error for missing roster file")
	}
}

func TestConvertCommandFromFile(t *testing.T) {
	path := writeRosterFile(t, "roster.csv", "1,1000\n2,2000\n")

	out, err := executeCommand(rootCmd, "convert", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "1 1000 2 2000" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestConvertCommandFromStdin(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader("7,700\n"))
	rootCmd.SetArgs([]string{"convert"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "7 700" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestConvertCommandMissingFile(t *testing.T) {
	if _, err := executeCommand(rootCmd, "convert", "/does/not/exist.csv"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
