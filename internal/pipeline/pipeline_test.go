package pipeline

import (
	"bytes"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/compliscore/internal/fetcher"
	"github.com/sells-group/compliscore/internal/model"
	"github.com/sells-group/compliscore/internal/scorer"
)

func testTable() *model.Table {
	return &model.Table{
		Columns: []string{"brokerName", "kycCompleted", "capitalAdequacyPct", "clientComplaints", "reportingDelayDays"},
		Rows: [][]string{
			{"Alpha Securities", "Y", "120", "1", "0"},
			{"Beta Capital", "N", "95", "4", "2"},
			{"Gamma Wealth", "y", "100", "2", "1"},
		},
	}
}

func TestPrepareScoresRows(t *testing.T) {
	st, err := Prepare(testTable(), scorer.DefaultPolicy())
	require.NoError(t, err)
	require.Len(t, st.Records, 3)

	assert.Equal(t, []string{
		"brokerName", "kycCompleted", "capitalAdequacyPct", "clientComplaints", "reportingDelayDays",
		"complianceScore", "status", "failedChecks",
	}, st.Columns)

	assert.Equal(t, 100, st.Records[0].Score)
	assert.Equal(t, model.StatusCompliant, st.Records[0].Status)
	assert.Empty(t, st.Records[0].FailedChecks)

	assert.Equal(t, 0, st.Records[1].Score)
	assert.Equal(t, model.StatusNonCompliant, st.Records[1].Status)
	assert.Equal(t,
		"KYC not completed, Capital adequacy < 100%, Complaints > 2, Reporting delay > 1 day, Major breaches present",
		st.Records[1].FailedChecksDisplay())

	// Boundary-inclusive thresholds and case-insensitive KYC.
	assert.Equal(t, 100, st.Records[2].Score)
}

func TestPreparePreservesRowOrder(t *testing.T) {
	st, err := Prepare(testTable(), scorer.DefaultPolicy())
	require.NoError(t, err)

	rows := st.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "Alpha Securities", rows[0][0])
	assert.Equal(t, "Beta Capital", rows[1][0])
	assert.Equal(t, "Gamma Wealth", rows[2][0])
}

func TestPrepareDoesNotMutateInput(t *testing.T) {
	tbl := testTable()
	st, err := Prepare(tbl, scorer.DefaultPolicy())
	require.NoError(t, err)

	assert.Len(t, tbl.Columns, 5)
	assert.Len(t, tbl.Rows[0], 5)

	// Mutating the output must not reach back into the input.
	st.Records[0].Source[0] = "mutated"
	assert.Equal(t, "Alpha Securities", tbl.Rows[0][0])
}

func TestPrepareSchemaErrorSingleColumn(t *testing.T) {
	tbl := testTable()
	tbl.Columns = []string{"brokerName", "capitalAdequacyPct", "clientComplaints", "reportingDelayDays"}

	_, err := Prepare(tbl, scorer.DefaultPolicy())
	require.Error(t, err)

	var se *SchemaError
	require.True(t, eris.As(err, &se))
	assert.Equal(t, []string{"kycCompleted"}, se.Missing)
	assert.Equal(t, "missing required columns: kycCompleted", se.Error())
}

func TestPrepareSchemaErrorNamesEveryMissingColumn(t *testing.T) {
	tbl := &model.Table{Columns: []string{"brokerName"}}

	_, err := Prepare(tbl, scorer.DefaultPolicy())

	var se *SchemaError
	require.True(t, eris.As(err, &se))
	assert.Equal(t, []string{
		"kycCompleted", "capitalAdequacyPct", "clientComplaints", "reportingDelayDays",
	}, se.Missing)
}

func TestPrepareNormalizesHeaderWhitespace(t *testing.T) {
	tbl := testTable()
	tbl.Columns = []string{" brokerName", "kycCompleted ", " capitalAdequacyPct ", "clientComplaints", "reportingDelayDays"}

	st, err := Prepare(tbl, scorer.DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, 100, st.Records[0].Score)
	assert.Equal(t, "Alpha Securities", st.Records[0].Broker.BrokerName)
}

func TestPrepareCoercionFailOpen(t *testing.T) {
	tbl := testTable()
	tbl.Rows = [][]string{
		{"Delta Markets", "Y", "120", "not-a-number", "0"},
	}

	st, err := Prepare(tbl, scorer.DefaultPolicy())
	require.NoError(t, err)

	// Unparsable complaints read as 0, so the complaints check passes.
	assert.Equal(t, 0, st.Records[0].Broker.ClientComplaints)
	assert.Equal(t, 100, st.Records[0].Score)
}

func TestPrepareShortRow(t *testing.T) {
	tbl := testTable()
	tbl.Rows = [][]string{{"Echo Partners", "Y"}}

	st, err := Prepare(tbl, scorer.DefaultPolicy())
	require.NoError(t, err)

	// Missing cells coerce to zero: capital fails, complaints/delay pass.
	assert.Equal(t, 80, st.Records[0].Score)
	assert.Equal(t, []string{scorer.ReasonCapital}, st.Records[0].FailedChecks)
}

func TestPrepareExtraColumnsPassThrough(t *testing.T) {
	tbl := testTable()
	tbl.Columns = append(tbl.Columns, "region")
	for i := range tbl.Rows {
		tbl.Rows[i] = append(tbl.Rows[i], "EMEA")
	}

	st, err := Prepare(tbl, scorer.DefaultPolicy())
	require.NoError(t, err)

	rows := st.Rows()
	assert.Equal(t, "region", st.Columns[5])
	assert.Equal(t, "EMEA", rows[0][5])
	assert.Len(t, rows[0], 9)
}

func TestPrepareIdempotent(t *testing.T) {
	tbl := testTable()
	p := scorer.DefaultPolicy()

	var a, b bytes.Buffer
	st1, err := Prepare(tbl, p)
	require.NoError(t, err)
	require.NoError(t, st1.WriteCSV(&a))

	st2, err := Prepare(tbl, p)
	require.NoError(t, err)
	require.NoError(t, st2.WriteCSV(&b))

	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestSummarize(t *testing.T) {
	st, err := Prepare(testTable(), scorer.DefaultPolicy())
	require.NoError(t, err)

	stats, err := Summarize(st)
	require.NoError(t, err)

	assert.InDelta(t, 200.0/3.0, stats.Average, 0.0001)
	assert.Equal(t, 100, stats.Highest)
	assert.Equal(t, 0, stats.Lowest)
}

func TestSummarizeEmptyTable(t *testing.T) {
	st, err := Prepare(&model.Table{Columns: model.RequiredColumns()}, scorer.DefaultPolicy())
	require.NoError(t, err)

	_, err = Summarize(st)
	require.Error(t, err)

	var ete *EmptyTableError
	assert.True(t, eris.As(err, &ete))
}

func TestDemoTableStatsDeterministic(t *testing.T) {
	p := scorer.DefaultPolicy()

	st, err := Prepare(fetcher.Demo(30), p)
	require.NoError(t, err)
	stats, err := Summarize(st)
	require.NoError(t, err)

	// The demo generator is pure arithmetic over the row index, so the
	// aggregate stats are fixed.
	assert.InDelta(t, 160.0/3.0, stats.Average, 0.0001)
	assert.Equal(t, 100, stats.Highest)
	assert.Equal(t, 20, stats.Lowest)

	again, err := Prepare(fetcher.Demo(30), p)
	require.NoError(t, err)
	var a, b bytes.Buffer
	require.NoError(t, st.WriteCSV(&a))
	require.NoError(t, again.WriteCSV(&b))
	assert.Equal(t, a.Bytes(), b.Bytes())
}
