package attribution

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func compliantRoot(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "LICENSE", "MIT License")
	writeFile(t, dir, "CITATION.cff", "cff-version: 1.2.0")
	writeFile(t, dir, "README.md", "Based on work by the original author.")
	if err := os.MkdirAll(filepath.Join(dir, "cmd", "server"), 0o755); err != nil {
		t.Fatalf("failed to create entry dir: %v", err)
	}
	writeFile(t, dir, filepath.Join("cmd", "server", "main.go"), "// Derived from deebak4064/AI-BLOG-GENERATOR.\npackage main\n")
	return dir
}

func TestTrackerCheckCompliant(t *testing.T) {
	tracker := NewTracker(compliantRoot(t))

	result := tracker.Check()
	if !result.Compliant() {
		t.Fatalf("expected compliant root, got %+v", result)
	}
	if missing := result.Missing(); len(missing) != 0 {
		t.Fatalf("expected nothing missing, got %v", missing)
	}
}

func TestTrackerCheckMissingArtifacts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "A blog generator, no credits here.")
	tracker := NewTracker(dir)

	result := tracker.Check()
	if result.Compliant() {
		t.Fatal("expected non-compliant root")
	}
	missing := result.Missing()
	if len(missing) != 4 {
		t.Fatalf("expected all four items missing, got %v", missing)
	}
}

func TestTrackerCodeHeaderCheck(t *testing.T) {
	dir := compliantRoot(t)
	writeFile(t, dir, filepath.Join("cmd", "server", "main.go"), "package main\n")
	tracker := NewTracker(dir)

	result := tracker.Check()
	if result.CodeHeader {
		t.Fatal("entry file without the author marker must fail the check")
	}
	found := false
	for _, item := range result.Missing() {
		if item == "code_header" {
			found = true
		}
	}
	if !found {
		t.Fatalf("code_header must be reported missing, got %v", result.Missing())
	}
}

func TestTrackerSignatureStable(t *testing.T) {
	a := NewTracker(t.TempDir())
	b := NewTracker(t.TempDir())
	if a.Signature() != b.Signature() {
		t.Fatal("signature must not depend on the root")
	}
	if len(a.Signature()) != 32 {
		t.Fatalf("expected md5 hex signature, got %q", a.Signature())
	}
}

func TestTrackerLogDeployment(t *testing.T) {
	dir := compliantRoot(t)
	tracker := NewTracker(dir)

	if err := tracker.LogDeployment("host-a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tracker.LogDeployment("host-b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report := tracker.GenerateReport()
	if report.Status != "COMPLIANT" {
		t.Fatalf("unexpected status %q", report.Status)
	}
	if report.TotalInstances != 2 || len(report.DeploymentHistory) != 2 {
		t.Fatalf("unexpected history: %+v", report)
	}
	if report.DeploymentHistory[1].Host != "host-b" || !report.DeploymentHistory[1].Attributed {
		t.Fatalf("unexpected entry: %+v", report.DeploymentHistory[1])
	}
}

func TestTrackerReportCapsHistory(t *testing.T) {
	dir := compliantRoot(t)
	tracker := NewTracker(dir)

	for i := 0; i < 12; i++ {
		if err := tracker.LogDeployment("host"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	report := tracker.GenerateReport()
	if report.TotalInstances != 12 {
		t.Fatalf("expected 12 total instances, got %d", report.TotalInstances)
	}
	if len(report.DeploymentHistory) != 10 {
		t.Fatalf("expected history capped at 10, got %d", len(report.DeploymentHistory))
	}
}

func TestTrackerNonCompliantReport(t *testing.T) {
	tracker := NewTracker(t.TempDir())

	report := tracker.GenerateReport()
	if report.Status != "NON-COMPLIANT" {
		t.Fatalf("unexpected status %q", report.Status)
	}
	if len(report.MissingItems) != 4 {
		t.Fatalf("expected four missing items, got %v", report.MissingItems)
	}
}
