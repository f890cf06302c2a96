// Package fetcher acquires raw broker tables from CSV and XLSX files, or
// synthesizes a deterministic demo dataset when no file is given.
package fetcher

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/compliscore/internal/model"
)

// UnsupportedFormatError reports a file whose extension maps to no parser.
type UnsupportedFormatError struct {
	Filename string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q: upload CSV or Excel", filepath.Ext(e.Filename))
}

// Load reads a broker table from path, dispatching on the file extension:
// .csv, .xls, and .xlsx are recognized, anything else fails with an
// *UnsupportedFormatError.
func Load(path string) (*model.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, eris.Wrapf(err, "fetcher: open %s", path)
		}
		defer f.Close() //nolint:errcheck
		return ReadCSV(f)
	case ".xls", ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, &UnsupportedFormatError{Filename: path}
	}
}

// LoadReader reads a broker table from an in-memory stream, dispatching on
// the extension of the original filename. Used by the upload handler.
func LoadReader(r io.Reader, filename string) (*model.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ReadCSV(r)
	case ".xls", ".xlsx":
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, eris.Wrap(err, "fetcher: read upload")
		}
		return ReadXLSXBytes(b)
	default:
		return nil, &UnsupportedFormatError{Filename: filename}
	}
}
