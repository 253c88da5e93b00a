// Package attribution checks that a deployment of this application keeps
// the upstream project's attribution requirements and records deployment
// instances to a local log file.
package attribution

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const logFileName = "attribution_logs.json"

var signatureItems = []string{
	"AI Blog Generator",
	"deebak4064",
	"github.com/deebak4064/AI-BLOG-GENERATOR",
	"Deebak Kumar",
}

var readmeKeywords = []string{
	"deebak kumar",
	"deebak4064",
	"github.com/deebak4064",
	"original author",
}

var codeHeaderKeywords = []string{"deepak", "deebak4064"}

// entrySourceFile is the file whose header must carry the attribution.
const entrySourceFile = "cmd/server/main.go"

// CheckResult lists which attribution requirements hold.
type CheckResult struct {
	License           bool `json:"license"`
	Citation          bool `json:"citation"`
	ReadmeAttribution bool `json:"readme_attribution"`
	CodeHeader        bool `json:"code_header"`
}

// Compliant reports whether every requirement is satisfied.
func (r CheckResult) Compliant() bool {
	return r.License && r.Citation && r.ReadmeAttribution && r.CodeHeader
}

// Missing names the unsatisfied requirements.
func (r CheckResult) Missing() []string {
	var missing []string
	if !r.License {
		missing = append(missing, "license")
	}
	if !r.Citation {
		missing = append(missing, "citation")
	}
	if !r.ReadmeAttribution {
		missing = append(missing, "readme_attribution")
	}
	if !r.CodeHeader {
		missing = append(missing, "code_header")
	}
	return missing
}

// DeploymentEntry is one recorded deployment instance.
type DeploymentEntry struct {
	Timestamp  string   `json:"timestamp"`
	Host       string   `json:"host"`
	Attributed bool     `json:"attributed"`
	Missing    []string `json:"missing_attribution"`
}

// Report is the compliance summary served by the API.
type Report struct {
	Status            string            `json:"status"`
	Signature         string            `json:"signature"`
	Checks            CheckResult       `json:"attribution_check"`
	MissingItems      []string          `json:"missing_items"`
	DeploymentHistory []DeploymentEntry `json:"deployment_history"`
	TotalInstances    int               `json:"total_instances"`
}

// Tracker inspects a project root for attribution artifacts.
type Tracker struct {
	root string
}

// NewTracker creates a Tracker rooted at the given directory.
func NewTracker(root string) *Tracker {
	if strings.TrimSpace(root) == "" {
		root = "."
	}
	return &Tracker{root: root}
}

// Signature returns the md5 fingerprint of the original codebase markers.
func (t *Tracker) Signature() string {
	sum := md5.Sum([]byte(strings.Join(signatureItems, "")))
	return hex.EncodeToString(sum[:])
}

// Check verifies the required attribution artifacts exist under the root.
func (t *Tracker) Check() CheckResult {
	return CheckResult{
		License:           t.fileExists("LICENSE"),
		Citation:          t.fileExists("CITATION.cff"),
		ReadmeAttribution: t.readmeMentionsAuthor(),
		CodeHeader:        t.entryHasAttributionHeader(),
	}
}

func (t *Tracker) fileExists(name string) bool {
	info, err := os.Stat(filepath.Join(t.root, name))
	return err == nil && !info.IsDir()
}

func (t *Tracker) readmeMentionsAuthor() bool {
	raw, err := os.ReadFile(filepath.Join(t.root, "README.md"))
	if err != nil {
		return false
	}
	content := strings.ToLower(string(raw))
	for _, keyword := range readmeKeywords {
		if strings.Contains(content, keyword) {
			return true
		}
	}
	return false
}

// entryHasAttributionHeader checks the first 500 bytes of the entry source
// file for the author markers.
func (t *Tracker) entryHasAttributionHeader() bool {
	f, err := os.Open(filepath.Join(t.root, filepath.FromSlash(entrySourceFile)))
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, 500)
	n, err := f.Read(buf)
	if n == 0 && err != nil {
		return false
	}
	head := strings.ToLower(string(buf[:n]))
	for _, keyword := range codeHeaderKeywords {
		if strings.Contains(head, keyword) {
			return true
		}
	}
	return false
}

// LogDeployment appends a deployment instance to the log file. The log is
// best-effort: a write failure is returned but never fatal to the app.
func (t *Tracker) LogDeployment(host string) error {
	result := t.Check()
	entry := DeploymentEntry{
		Timestamp:  time.Now().Format(time.RFC3339),
		Host:       host,
		Attributed: result.Compliant(),
		Missing:    result.Missing(),
	}

	logs := t.readLogs()
	logs = append(logs, entry)

	payload, err := json.MarshalIndent(logs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode attribution log: %w", err)
	}
	if err := os.WriteFile(t.logPath(), payload, 0o644); err != nil {
		return fmt.Errorf("write attribution log: %w", err)
	}
	return nil
}

// GenerateReport summarizes the compliance state and recent deployments.
func (t *Tracker) GenerateReport() Report {
	result := t.Check()
	logs := t.readLogs()

	status := "NON-COMPLIANT"
	if result.Compliant() {
		status = "COMPLIANT"
	}

	history := logs
	if len(history) > 10 {
		history = history[len(history)-10:]
	}

	return Report{
		Status:            status,
		Signature:         t.Signature(),
		Checks:            result,
		MissingItems:      result.Missing(),
		DeploymentHistory: history,
		TotalInstances:    len(logs),
	}
}

func (t *Tracker) logPath() string {
	return filepath.Join(t.root, logFileName)
}

func (t *Tracker) readLogs() []DeploymentEntry {
	raw, err := os.ReadFile(t.logPath())
	if err != nil {
		return nil
	}
	var logs []DeploymentEntry
	if err := json.Unmarshal(raw, &logs); err != nil {
		return nil
	}
	return logs
}
