package scanner

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/workflowsec/wfscan/pkg/constants"
)

// Finding represents a detected insecure permission declaration
type Finding struct {
	RuleID      string
	Level       string
	Message     string
	FilePath    string // relative to the repository root, forward slashes
	LineNumber  int    // 1-based
	ColumnStart int    // 1-based
	ColumnEnd   int    // ColumnStart + matchSpanWidth
}

// idTokenWriteRe matches an id-token: write permission declaration
// anywhere in a line, with flexible spacing around the colon.
var idTokenWriteRe = regexp.MustCompile(`(?i)id-token\s*:\s*write`)

// matchSpanWidth is the fixed reported width of the canonical
// "id-token: write" span. The end column is always start + this width,
// regardless of how much whitespace the actual declaration contains.
const matchSpanWidth = 16

// Scan searches the workflow directory under repoPath for id-token: write
// permissions and returns findings in file-then-line order. A missing
// workflow directory yields an empty result, not an error; unreadable
// files are skipped with a warning so one bad file does not sink the scan.
func Scan(repoPath string) ([]Finding, error) {
	workflowsDir := filepath.Join(repoPath, filepath.FromSlash(constants.WorkflowsDir))

	if _, err := os.Stat(workflowsDir); os.IsNotExist(err) {
		return nil, nil
	}

	entries, err := os.ReadDir(workflowsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read workflow directory %s: %w", workflowsDir, err)
	}

	var findings []Finding

	// os.ReadDir returns entries sorted by file name, which keeps the
	// output stable across runs.
	for _, entry := range entries {
		if entry.IsDir() || !isWorkflowFile(entry.Name()) {
			continue
		}

		content, err := os.ReadFile(filepath.Join(workflowsDir, entry.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping unreadable workflow file %s: %v\n", entry.Name(), err)
			continue
		}

		relPath := path.Join(constants.WorkflowsDir, entry.Name())
		findings = append(findings, scanContent(relPath, content)...)
	}

	return findings, nil
}

// scanContent scans raw workflow text line by line. Each line produces at
// most one finding, for the first occurrence of the pattern.
func scanContent(relPath string, content []byte) []Finding {
	var findings []Finding

	// Normalize line endings so column offsets are stable for CRLF files.
	text := strings.ReplaceAll(string(content), "\r\n", "\n")

	for i, line := range strings.Split(text, "\n") {
		if !idTokenWriteRe.MatchString(line) {
			continue
		}

		col := strings.Index(strings.ToLower(line), "id-token")
		if col == -1 {
			// Unreachable given the pattern, kept as a safe fallback.
			col = 1
		} else {
			col++ // SARIF columns are 1-based
		}

		findings = append(findings, Finding{
			RuleID:      constants.RuleID,
			Level:       constants.RuleLevel,
			Message:     constants.FindingMessage,
			FilePath:    relPath,
			LineNumber:  i + 1,
			ColumnStart: col,
			ColumnEnd:   col + matchSpanWidth,
		})
	}

	return findings
}

// isWorkflowFile reports whether a file name has a workflow definition extension
func isWorkflowFile(name string) bool {
	for _, ext := range constants.WorkflowExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
