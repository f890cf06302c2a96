package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/compliscore/internal/pipeline"
	"github.com/sells-group/compliscore/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render a scored broker table as a PDF report",
	Long: `Score broker records and render them as a paginated PDF report with
summary statistics. Without --input the built-in demo dataset is used.

Examples:
  # Report on the demo dataset
  report

  # Report on an uploaded file with a custom policy
  report --input brokers.csv --policy policy.yaml --output brokers.pdf`,
	RunE: runReport,
}

func init() {
	f := reportCmd.Flags()
	f.String("input", "", "input CSV or Excel file (default: demo dataset)")
	f.String("policy", "", "policy YAML file overriding configured thresholds")
	f.String("output", "", "output PDF path (default: CompliScore_Report_<timestamp>.pdf)")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	input, _ := cmd.Flags().GetString("input")
	policyPath, _ := cmd.Flags().GetString("policy")
	outputPath, _ := cmd.Flags().GetString("output")

	if outputPath == "" {
		outputPath = fmt.Sprintf("CompliScore_Report_%s.pdf", time.Now().Format("20060102_1504"))
	}

	policy, err := effectivePolicy(cfg.Policy, policyPath)
	if err != nil {
		return err
	}

	tbl, err := loadInputTable(input, cfg.Demo.Rows)
	if err != nil {
		return err
	}

	st, err := pipeline.Prepare(tbl, policy)
	if err != nil {
		return err
	}
	stats, err := pipeline.Summarize(st)
	if err != nil {
		return err
	}

	w, cleanup, err := outputWriter(outputPath)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := report.Build(w, st, stats, report.Options{
		Title:    cfg.Report.Title,
		Subtitle: cfg.Report.Subtitle,
	}); err != nil {
		return err
	}

	zap.L().Info("report written",
		zap.String("path", outputPath),
		zap.Int("rows", len(st.Records)),
	)
	fmt.Printf("Wrote report for %d brokers to %s\n", len(st.Records), outputPath)
	return nil
}
