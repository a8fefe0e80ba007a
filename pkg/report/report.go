package report

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/workflowsec/wfscan/pkg/scanner"
)

// Generator creates a SARIF report from scan findings
type Generator struct {
	Findings []scanner.Finding
	FilePath string
}

// NewGenerator creates a new report generator writing to filePath
func NewGenerator(findings []scanner.Finding, filePath string) *Generator {
	return &Generator{
		Findings: findings,
		FilePath: filePath,
	}
}

// Generate creates and writes the SARIF report. The report is always
// produced, even when there are no findings.
func (g *Generator) Generate() error {
	return g.generateSARIFReport()
}

// PrintSummary prints the scan outcome to stdout: a one-line count and,
// when findings exist, a table of their locations.
func PrintSummary(findings []scanner.Finding) {
	successStyle := color.New(color.FgGreen, color.Bold)
	errorStyle := color.New(color.FgHiRed, color.Bold)

	if len(findings) == 0 {
		successStyle.Println("No issues found")
		return
	}

	errorStyle.Printf("Found %d issue(s)\n", len(findings))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"File", "Line", "Column", "Rule"})
	table.SetBorder(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	for _, finding := range findings {
		table.Append([]string{
			finding.FilePath,
			strconv.Itoa(finding.LineNumber),
			strconv.Itoa(finding.ColumnStart),
			finding.RuleID,
		})
	}

	table.Render()
	fmt.Println()
}
