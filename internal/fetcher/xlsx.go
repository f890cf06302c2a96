package fetcher

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/compliscore/internal/model"
)

// ReadXLSX reads the first sheet of an XLSX workbook into a table. The
// first row is the header.
func ReadXLSX(path string) (*model.Table, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: open xlsx")
	}
	return tableFromFile(f)
}

// ReadXLSXBytes parses an in-memory XLSX workbook, as received from an
// upload, into a table.
func ReadXLSXBytes(b []byte) (*model.Table, error) {
	f, err := xlsx.OpenBinary(b)
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: parse xlsx")
	}
	return tableFromFile(f)
}

// WriteXLSX writes a table to path as a single-sheet XLSX workbook.
func WriteXLSX(t *model.Table, path string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Brokers")
	if err != nil {
		return eris.Wrap(err, "fetcher: add sheet")
	}

	header := sheet.AddRow()
	for _, c := range t.Columns {
		header.AddCell().SetString(c)
	}
	for _, row := range t.Rows {
		r := sheet.AddRow()
		for _, cell := range row {
			r.AddCell().SetString(cell)
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "fetcher: save xlsx %s", path)
	}
	return nil
}

func tableFromFile(f *xlsx.File) (*model.Table, error) {
	if len(f.Sheets) == 0 {
		return nil, eris.New("fetcher: workbook has no sheets")
	}
	sheet := f.Sheets[0]

	t := &model.Table{}
	for i, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		if i == 0 {
			t.Columns = trimFields(cells)
			continue
		}
		t.Rows = append(t.Rows, trimFields(cells))
	}
	return t, nil
}
