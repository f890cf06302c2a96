// Package chart renders the compliance score distribution as a PNG bar
// chart, one bar per broker colored by status.
package chart

import (
	"io"
	"sort"

	"github.com/rotisserie/eris"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/sells-group/compliscore/internal/model"
	"github.com/sells-group/compliscore/internal/pipeline"
)

// Options configures chart geometry.
type Options struct {
	Title  string
	Width  int
	Height int
}

const (
	defaultWidth  = 1280
	defaultHeight = 500
	minBarWidth   = 8
	maxBarWidth   = 50
)

// Render writes a PNG bar chart of the scored table: brokers on the X axis
// sorted descending by score (ties keep table order), score on the Y axis
// fixed to 0-100, bars filled with the status color.
func Render(w io.Writer, st *pipeline.ScoredTable, opts Options) error {
	if st == nil || len(st.Records) == 0 {
		return eris.New("chart: no records to render")
	}

	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	height := opts.Height
	if height <= 0 {
		height = defaultHeight
	}

	order := make([]int, len(st.Records))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return st.Records[order[a]].Score > st.Records[order[b]].Score
	})

	bars := make([]gochart.Value, 0, len(order))
	for _, i := range order {
		r := &st.Records[i]
		fill := statusColor(r.Status)
		bars = append(bars, gochart.Value{
			Value: float64(r.Score),
			Label: r.Broker.BrokerName,
			Style: gochart.Style{
				FillColor:   fill,
				StrokeColor: fill,
			},
		})
	}

	bc := gochart.BarChart{
		Title:      opts.Title,
		Width:      width,
		Height:     height,
		BarWidth:   barWidth(width, len(bars)),
		BarSpacing: 4,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40},
		},
		XAxis: gochart.Style{
			TextRotationDegrees: -30,
		},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: 100},
		},
		Bars: bars,
	}

	if err := bc.Render(gochart.PNG, w); err != nil {
		return eris.Wrap(err, "chart: render png")
	}
	return nil
}

func barWidth(chartWidth, bars int) int {
	w := (chartWidth - 100) / bars
	if w < minBarWidth {
		return minBarWidth
	}
	if w > maxBarWidth {
		return maxBarWidth
	}
	return w
}

func statusColor(s model.Status) drawing.Color {
	switch s {
	case model.StatusCompliant:
		return drawing.ColorFromHex("2e7d32")
	case model.StatusNeedsAttention:
		return drawing.ColorFromHex("f9a825")
	case model.StatusNonCompliant:
		return drawing.ColorFromHex("c62828")
	default:
		return drawing.ColorFromHex("424242")
	}
}
