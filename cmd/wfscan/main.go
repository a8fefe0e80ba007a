package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/workflowsec/wfscan/pkg/constants"
	"github.com/workflowsec/wfscan/pkg/report"
	"github.com/workflowsec/wfscan/pkg/scanner"
)

func main() {
	app := &cli.App{
		Name:    constants.AppName,
		Version: constants.AppVersion,
		Usage:   constants.AppUsage,
		Action: func(c *cli.Context) error {
			return scan()
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// scan runs the one-shot scan-and-report sequence against the working
// directory. Findings are communicated through the SARIF report, not the
// exit code: the only failure mode is being unable to produce the report.
func scan() error {
	findings, err := scanner.Scan(".")
	if err != nil {
		return fmt.Errorf("failed to scan workflows: %w", err)
	}

	report.PrintSummary(findings)

	generator := report.NewGenerator(findings, constants.OutputFile)
	if err := generator.Generate(); err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	return nil
}
