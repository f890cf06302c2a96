package main

import (
	"encoding/csv"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/compliscore/internal/fetcher"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Generate the built-in demo broker dataset",
	Long: `Generate the deterministic demo dataset of broker records. The same
row count always produces the same records, so the output is suitable for
fixtures and repeatable walkthroughs.

Examples:
  # Print 30 demo rows as CSV
  demo

  # Write a 50-row Excel fixture
  demo --rows 50 --format xlsx --output brokers.xlsx`,
	RunE: runDemo,
}

func init() {
	f := demoCmd.Flags()
	f.Int("rows", 0, "number of rows to generate (0=use config default)")
	f.String("format", "csv", "output format: csv or xlsx")
	f.String("output", "", "output file path (default: stdout, required for xlsx)")

	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	rows, _ := cmd.Flags().GetInt("rows")
	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")

	if rows <= 0 {
		rows = cfg.Demo.Rows
	}

	tbl := fetcher.Demo(rows)

	switch format {
	case "xlsx":
		if outputPath == "" {
			return eris.New("demo: --output is required for xlsx format")
		}
		if err := fetcher.WriteXLSX(tbl, outputPath); err != nil {
			return err
		}
		fmt.Printf("Wrote %d demo rows to %s\n", len(tbl.Rows), outputPath)
		return nil

	case "csv":
		w, cleanup, err := outputWriter(outputPath)
		if err != nil {
			return err
		}
		defer cleanup()

		cw := csv.NewWriter(w)
		if err := cw.Write(tbl.Columns); err != nil {
			return eris.Wrap(err, "demo: write CSV header")
		}
		for _, row := range tbl.Rows {
			if err := cw.Write(row); err != nil {
				return eris.Wrap(err, "demo: write CSV row")
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return eris.Wrap(err, "demo: flush CSV")
		}
		return nil

	default:
		return eris.Errorf("demo: --format must be csv or xlsx (got %q)", format)
	}
}
