package fetcher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/compliscore/internal/model"
)

const sampleCSV = `brokerName, kycCompleted ,capitalAdequacyPct,clientComplaints,reportingDelayDays
Alpha Securities,Y,120,1,0
Beta Capital, N ,95,4,2
`

func TestReadCSV(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"brokerName", "kycCompleted", "capitalAdequacyPct", "clientComplaints", "reportingDelayDays",
	}, tbl.Columns)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"Alpha Securities", "Y", "120", "1", "0"}, tbl.Rows[0])
	// Cell whitespace is trimmed.
	assert.Equal(t, "N", tbl.Rows[1][1])
}

func TestReadCSVEmpty(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, tbl.Columns)
	assert.Empty(t, tbl.Rows)
}

func TestReadCSVVariableFieldCounts(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("a,b,c\n1,2\n1,2,3,4\n"))
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 2)
	assert.Len(t, tbl.Rows[0], 2)
	assert.Len(t, tbl.Rows[1], 4)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := Load("brokers.pdf")
	require.Error(t, err)

	var ufe *UnsupportedFormatError
	require.True(t, eris.As(err, &ufe))
	assert.Contains(t, ufe.Error(), `".pdf"`)
}

func TestLoadCSVFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brokers.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0644))

	tbl, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, tbl.Rows, 2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoadReaderDispatch(t *testing.T) {
	tbl, err := LoadReader(strings.NewReader(sampleCSV), "upload.CSV")
	require.NoError(t, err)
	assert.Len(t, tbl.Rows, 2)

	_, err = LoadReader(strings.NewReader("x"), "upload.txt")
	var ufe *UnsupportedFormatError
	require.True(t, eris.As(err, &ufe))
}

func TestXLSXRoundTrip(t *testing.T) {
	src := &model.Table{
		Columns: model.RequiredColumns(),
		Rows: [][]string{
			{"Alpha Securities", "Y", "120", "1", "0"},
			{"Beta Capital", "N", "95", "4", "2"},
		},
	}

	path := filepath.Join(t.TempDir(), "brokers.xlsx")
	require.NoError(t, WriteXLSX(src, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, src.Columns, got.Columns)
	assert.Equal(t, src.Rows, got.Rows)

	// Upload path: same workbook parsed from memory.
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	fromBytes, err := ReadXLSXBytes(b)
	require.NoError(t, err)
	assert.Equal(t, src.Rows, fromBytes.Rows)
}
