package fetcher

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/compliscore/internal/model"
)

// ReadCSV parses a CSV stream into a table. The first row is the header.
// Fields are trimmed of surrounding whitespace and rows may carry variable
// field counts; short rows read as empty cells downstream.
func ReadCSV(r io.Reader) (*model.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable fields

	records, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: read csv")
	}
	if len(records) == 0 {
		return &model.Table{}, nil
	}

	t := &model.Table{
		Columns: trimFields(records[0]),
		Rows:    make([][]string, 0, len(records)-1),
	}
	for _, rec := range records[1:] {
		t.Rows = append(t.Rows, trimFields(rec))
	}
	return t, nil
}

func trimFields(rec []string) []string {
	out := make([]string, len(rec))
	for i, f := range rec {
		out[i] = strings.TrimSpace(f)
	}
	return out
}
