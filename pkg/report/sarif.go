package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/workflowsec/wfscan/pkg/constants"
	"github.com/workflowsec/wfscan/pkg/scanner"
)

// SARIF represents a Static Analysis Results Interchange Format report
// Based on SARIF v2.1.0 specification: https://docs.oasis-open.org/sarif/sarif/v2.1.0/sarif-v2.1.0.html
type SARIF struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun represents a single analysis run
type SARIFRun struct {
	Tool    SARIFTool     `json:"tool"`
	Results []SARIFResult `json:"results"`
}

// SARIFTool represents the analysis tool
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver represents the tool driver
type SARIFDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Rules   []SARIFRule `json:"rules"`
}

// SARIFRule represents a rule definition
type SARIFRule struct {
	ID                   string                 `json:"id"`
	Name                 string                 `json:"name"`
	ShortDescription     SARIFMessage           `json:"shortDescription"`
	FullDescription      SARIFMessage           `json:"fullDescription"`
	DefaultConfiguration SARIFRuleConfiguration `json:"defaultConfiguration"`
	Properties           SARIFRuleProperties    `json:"properties"`
}

// SARIFRuleConfiguration represents rule configuration
type SARIFRuleConfiguration struct {
	Level string `json:"level"`
}

// SARIFRuleProperties represents rule property bag entries
type SARIFRuleProperties struct {
	Tags []string `json:"tags"`
}

// SARIFResult represents a single analysis result (finding).
// RuleIndex deliberately has no omitempty: the only rule sits at index 0
// and the index must always serialize.
type SARIFResult struct {
	RuleID    string          `json:"ruleId"`
	RuleIndex int             `json:"ruleIndex"`
	Level     string          `json:"level"`
	Message   SARIFMessage    `json:"message"`
	Locations []SARIFLocation `json:"locations"`
}

// SARIFMessage represents a message in SARIF
type SARIFMessage struct {
	Text string `json:"text"`
}

// SARIFLocation represents a location where an issue was found
type SARIFLocation struct {
	PhysicalLocation SARIFPhysicalLocation `json:"physicalLocation"`
}

// SARIFPhysicalLocation represents a physical location in source code
type SARIFPhysicalLocation struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Region           SARIFRegion           `json:"region"`
}

// SARIFArtifactLocation represents a reference to an artifact
type SARIFArtifactLocation struct {
	URI string `json:"uri"`
}

// SARIFRegion represents a region in a file
type SARIFRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
	EndLine     int `json:"endLine"`
	EndColumn   int `json:"endColumn"`
}

// generateSARIFReport creates a SARIF-compliant report file
func (g *Generator) generateSARIFReport() error {
	sarif := g.createSARIFReport()

	data, err := json.MarshalIndent(sarif, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal SARIF: %w", err)
	}

	if err := os.WriteFile(g.FilePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write SARIF report to file: %w", err)
	}

	fmt.Printf("SARIF report written to %s\n", g.FilePath)
	return nil
}

// createSARIFReport converts scan findings to SARIF format. Everything but
// the results list is constant, so identical findings produce a
// byte-identical document.
func (g *Generator) createSARIFReport() SARIF {
	results := make([]SARIFResult, 0, len(g.Findings))
	for _, finding := range g.Findings {
		results = append(results, createSARIFResult(finding))
	}

	run := SARIFRun{
		Tool: SARIFTool{
			Driver: SARIFDriver{
				Name:    constants.ToolName,
				Version: constants.ToolVersion,
				Rules:   []SARIFRule{idTokenWriteRule()},
			},
		},
		Results: results,
	}

	return SARIF{
		Version: constants.SARIFVersion,
		Schema:  constants.SARIFSchemaURI,
		Runs:    []SARIFRun{run},
	}
}

// idTokenWriteRule returns the single rule definition in the driver's rule table
func idTokenWriteRule() SARIFRule {
	return SARIFRule{
		ID:   constants.RuleID,
		Name: constants.RuleName,
		ShortDescription: SARIFMessage{
			Text: constants.RuleShortDescription,
		},
		FullDescription: SARIFMessage{
			Text: constants.RuleFullDescription,
		},
		DefaultConfiguration: SARIFRuleConfiguration{
			Level: constants.RuleLevel,
		},
		Properties: SARIFRuleProperties{
			Tags: constants.RuleTags,
		},
	}
}

// createSARIFResult converts a finding to a SARIF result
func createSARIFResult(finding scanner.Finding) SARIFResult {
	return SARIFResult{
		RuleID:    finding.RuleID,
		RuleIndex: 0,
		Level:     finding.Level,
		Message: SARIFMessage{
			Text: finding.Message,
		},
		Locations: []SARIFLocation{
			{
				PhysicalLocation: SARIFPhysicalLocation{
					ArtifactLocation: SARIFArtifactLocation{
						URI: finding.FilePath,
					},
					Region: SARIFRegion{
						StartLine:   finding.LineNumber,
						StartColumn: finding.ColumnStart,
						EndLine:     finding.LineNumber,
						EndColumn:   finding.ColumnEnd,
					},
				},
			},
		},
	}
}
