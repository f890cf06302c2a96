package pipeline

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns absent from the input table.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// EmptyTableError reports an aggregation over a table with no rows.
type EmptyTableError struct{}

func (e *EmptyTableError) Error() string {
	return "cannot summarize an empty table"
}
