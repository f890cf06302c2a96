// Package report renders a scored broker table as a paginated PDF document.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/rotisserie/eris"

	"github.com/sells-group/compliscore/internal/model"
	"github.com/sells-group/compliscore/internal/pipeline"
)

// Options configures the report title block.
type Options struct {
	Title       string
	Subtitle    string
	GeneratedAt time.Time // zero value means now
}

// Page geometry in millimeters, A4 landscape.
const (
	marginX    = 20.0
	marginY    = 15.0
	lineHeight = 5.0
	cellPad    = 1.5
)

var (
	reportColumns = [4]string{"Broker Name", "Compliance Score", "Status", "Failed Checks"}
	columnWidths  = [4]float64{70, 30, 35, 120}
	columnAligns  = [4]string{"L", "C", "C", "L"}
)

// Build writes the PDF report: title block, generation timestamp, summary
// statistics, and a grid table of scored brokers with per-cell wrapping.
func Build(w io.Writer, st *pipeline.ScoredTable, stats model.SummaryStats, opts Options) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(marginX, marginY, marginX)
	pdf.SetAutoPageBreak(false, marginY)
	pdf.AddPage()

	generated := opts.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, NormalizeASCII(opts.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, NormalizeASCII(opts.Subtitle), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.CellFormat(0, 5, "Generated: "+generated.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Average Score: %.1f", stats.Average), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Highest Score: %d", stats.Highest), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Lowest Score: %d", stats.Lowest), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	drawHeaderRow(pdf)
	pdf.SetFont("Helvetica", "", 9)
	for i := range st.Records {
		r := &st.Records[i]
		failed := r.FailedChecksDisplay()
		if failed == "" {
			failed = "-"
		}
		drawBodyRow(pdf, [4]string{
			NormalizeASCII(r.Broker.BrokerName),
			fmt.Sprintf("%d", r.Score),
			string(r.Status),
			NormalizeASCII(failed),
		})
	}

	if err := pdf.Output(w); err != nil {
		return eris.Wrap(err, "report: write pdf")
	}
	return nil
}

func drawHeaderRow(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(211, 211, 211)
	for i, title := range reportColumns {
		pdf.CellFormat(columnWidths[i], lineHeight+2*cellPad, title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

// drawBodyRow renders one table row with wrapped cells. Every cell in the
// row shares the height of the tallest cell.
func drawBodyRow(pdf *fpdf.Fpdf, cells [4]string) {
	lines := 1
	for i, c := range cells {
		if n := len(pdf.SplitText(c, columnWidths[i]-2*cellPad)); n > lines {
			lines = n
		}
	}
	rowHeight := float64(lines)*lineHeight + 2*cellPad

	_, pageHeight := pdf.GetPageSize()
	if pdf.GetY()+rowHeight > pageHeight-marginY {
		pdf.AddPage()
		drawHeaderRow(pdf)
		pdf.SetFont("Helvetica", "", 9)
	}

	x := marginX
	y := pdf.GetY()
	for i, c := range cells {
		pdf.Rect(x, y, columnWidths[i], rowHeight, "D")
		pdf.SetXY(x+cellPad, y+cellPad)
		pdf.MultiCell(columnWidths[i]-2*cellPad, lineHeight, c, "", columnAligns[i], false)
		x += columnWidths[i]
	}
	pdf.SetXY(marginX, y+rowHeight)
}
