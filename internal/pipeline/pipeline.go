// Package pipeline validates a raw broker table, applies the scoring engine
// row-wise, and derives summary statistics over the scored result.
package pipeline

import (
	"strconv"
	"strings"

	"github.com/sells-group/compliscore/internal/config"
	"github.com/sells-group/compliscore/internal/model"
	"github.com/sells-group/compliscore/internal/scorer"
)

// ScoredRecord is one fully scored row: the typed broker record, the
// original source cells, and the engine output.
type ScoredRecord struct {
	Broker       model.BrokerRecord
	Source       []string
	Score        int
	Status       model.Status
	FailedChecks []string
}

// FailedChecksDisplay joins the failure reasons for display; empty string
// when every check passed.
func (r *ScoredRecord) FailedChecksDisplay() string {
	return strings.Join(r.FailedChecks, ", ")
}

// ScoredTable is the derived output table: the input columns plus the three
// appended score columns, one ScoredRecord per input row in input order.
type ScoredTable struct {
	Columns []string
	Records []ScoredRecord
}

// Prepare validates the table schema, scores every row in input order, and
// returns the augmented table. The input table is never mutated. A missing
// required column aborts with a *SchemaError naming every absent column; no
// partial output is produced.
func Prepare(t *model.Table, p config.PolicyConfig) (*ScoredTable, error) {
	idx := t.ColumnIndex()

	var missing []string
	for _, col := range model.RequiredColumns() {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	columns := make([]string, 0, len(t.Columns)+3)
	columns = append(columns, t.Columns...)
	columns = append(columns, model.ColComplianceScore, model.ColStatus, model.ColFailedChecks)

	st := &ScoredTable{
		Columns: columns,
		Records: make([]ScoredRecord, 0, len(t.Rows)),
	}

	for _, row := range t.Rows {
		rec := toBrokerRecord(row, idx)
		score, failed := scorer.Score(rec, p)

		source := make([]string, len(row))
		copy(source, row)

		st.Records = append(st.Records, ScoredRecord{
			Broker:       rec,
			Source:       source,
			Score:        score,
			Status:       scorer.StatusFor(score, p),
			FailedChecks: failed,
		})
	}

	return st, nil
}

// Summarize computes summary statistics over the complianceScore column.
// An empty table yields an *EmptyTableError rather than NaN stats.
func Summarize(st *ScoredTable) (model.SummaryStats, error) {
	if st == nil || len(st.Records) == 0 {
		return model.SummaryStats{}, &EmptyTableError{}
	}

	sum := 0
	highest := st.Records[0].Score
	lowest := st.Records[0].Score
	for i := range st.Records {
		s := st.Records[i].Score
		sum += s
		if s > highest {
			highest = s
		}
		if s < lowest {
			lowest = s
		}
	}

	return model.SummaryStats{
		Average: float64(sum) / float64(len(st.Records)),
		Highest: highest,
		Lowest:  lowest,
	}, nil
}

// Rows materializes the output rows: the source cells followed by the three
// appended columns, in input order.
func (st *ScoredTable) Rows() [][]string {
	rows := make([][]string, 0, len(st.Records))
	for i := range st.Records {
		r := &st.Records[i]
		row := make([]string, 0, len(r.Source)+3)
		row = append(row, r.Source...)
		row = append(row, strconv.Itoa(r.Score), string(r.Status), r.FailedChecksDisplay())
		rows = append(rows, row)
	}
	return rows
}

// toBrokerRecord maps one raw row to a typed record with fail-open numeric
// coercion. Cells beyond the end of a short row read as empty.
func toBrokerRecord(row []string, idx map[string]int) model.BrokerRecord {
	return model.BrokerRecord{
		BrokerName:         cell(row, idx, model.ColBrokerName),
		KYCCompleted:       cell(row, idx, model.ColKYCCompleted),
		CapitalAdequacyPct: scorer.ParseNumeric(cell(row, idx, model.ColCapitalAdequacyPct), 0),
		ClientComplaints:   scorer.ParseCount(cell(row, idx, model.ColClientComplaints), 0),
		ReportingDelayDays: scorer.ParseNumeric(cell(row, idx, model.ColReportingDelayDays), 0),
	}
}

func cell(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
