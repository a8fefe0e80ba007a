package constants

// Application constants
const (
	// Version information
	AppName    = "wfscan"
	AppVersion = "1.0.0"
	AppUsage   = "GitHub Actions Workflow Permission Scanner"

	// Tool identity reported in the SARIF driver
	ToolName    = "Workflow Security Scanner"
	ToolVersion = "1.0.0"

	// Common paths
	WorkflowsDir = ".github/workflows"
	OutputFile   = "results.sarif"

	// SARIF document constants
	SARIFVersion   = "2.1.0"
	SARIFSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

	// The single rule this scanner implements
	RuleID               = "github-actions/id-token-write"
	RuleName             = "id-token: write permission detected"
	RuleShortDescription = "Workflow uses id-token: write permission"
	RuleFullDescription  = "Detects when a workflow uses id-token: write permission, which allows the workflow to request OIDC tokens."
	RuleLevel            = "error"

	// Message attached to every finding
	FindingMessage = "Workflow uses 'id-token: write' permission which allows requesting OIDC tokens."
)

// RuleTags are the SARIF rule property tags
var RuleTags = []string{"security", "github-actions"}

// WorkflowExtensions are the file suffixes treated as workflow definitions
var WorkflowExtensions = []string{".yml", ".yaml"}
