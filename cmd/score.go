package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/compliscore/internal/model"
	"github.com/sells-group/compliscore/internal/pipeline"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a broker table and print the results",
	Long: `Score broker records from a CSV or Excel file against the five-check
compliance rulebook. Each row gets a 0-100 score, a status band, and the
list of failed checks. Without --input the built-in demo dataset is scored.

Examples:
  # Score the demo dataset as a terminal table
  score

  # Score an uploaded CSV and export the scored rows
  score --input brokers.csv --format csv --output scored.csv

  # Score with a custom policy file as JSON
  score --input brokers.xlsx --policy policy.yaml --format json`,
	RunE: runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.String("input", "", "input CSV or Excel file (default: demo dataset)")
	f.String("policy", "", "policy YAML file overriding configured thresholds")
	f.String("format", "table", "output format: table, csv, or json")
	f.String("output", "", "output file path (default: stdout)")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	input, _ := cmd.Flags().GetString("input")
	policyPath, _ := cmd.Flags().GetString("policy")
	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")

	if format != "table" && format != "csv" && format != "json" {
		return eris.Errorf("score: --format must be table, csv, or json (got %q)", format)
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

	zap.L().Info("scoring complete",
		zap.Int("rows", len(st.Records)),
		zap.Float64("average_score", stats.Average),
	)

	w, cleanup, err := outputWriter(outputPath)
	if err != nil {
		return err
	}
	defer cleanup()

	switch format {
	case "csv":
		return st.WriteCSV(w)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := struct {
			Columns []string           `json:"columns"`
			Rows    [][]string         `json:"rows"`
			Summary model.SummaryStats `json:"summary"`
		}{st.Columns, st.Rows(), stats}
		if err := enc.Encode(payload); err != nil {
			return eris.Wrap(err, "score: encode json")
		}
		return nil
	default:
		if err := writeScoreTable(w, st); err != nil {
			return err
		}
		printSummary(stats, len(st.Records))
		return nil
	}
}

func writeScoreTable(w *os.File, st *pipeline.ScoredTable) error {
	header := fmt.Sprintf("%-35s %6s %-16s %s\n", "Broker Name", "Score", "Status", "Failed Checks")
	if _, err := fmt.Fprint(w, header); err != nil {
		return eris.Wrap(err, "score: write table header")
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 100)); err != nil {
		return eris.Wrap(err, "score: write table separator")
	}

	for i := range st.Records {
		r := &st.Records[i]
		name := r.Broker.BrokerName
		if len(name) > 35 {
			name = name[:32] + "..."
		}
		failed := r.FailedChecksDisplay()
		if failed == "" {
			failed = "-"
		}
		line := fmt.Sprintf("%-35s %6d %-16s %s\n", name, r.Score, string(r.Status), failed)
		if _, err := fmt.Fprint(w, line); err != nil {
			return eris.Wrap(err, "score: write table row")
		}
	}
	return nil
}

func printSummary(stats model.SummaryStats, total int) {
	fmt.Printf("\n--- Summary ---\n")
	fmt.Printf("Brokers scored: %d\n", total)
	fmt.Printf("Average score:  %.1f\n", stats.Average)
	fmt.Printf("Highest score:  %d\n", stats.Highest)
	fmt.Printf("Lowest score:   %d\n", stats.Lowest)
}
