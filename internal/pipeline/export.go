package pipeline

import (
	"encoding/csv"
	"io"

	"github.com/rotisserie/eris"
)

// WriteCSV renders the scored table as CSV. Output is deterministic: the
// same scored table always produces byte-identical output.
func (st *ScoredTable) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(st.Columns); err != nil {
		return eris.Wrap(err, "pipeline: write CSV header")
	}
	for _, row := range st.Rows() {
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "pipeline: write CSV row")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return eris.Wrap(err, "pipeline: flush CSV")
	}
	return nil
}
