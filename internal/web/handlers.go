package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/compliscore/internal/chart"
	"github.com/sells-group/compliscore/internal/fetcher"
	"github.com/sells-group/compliscore/internal/model"
	"github.com/sells-group/compliscore/internal/pipeline"
	"github.com/sells-group/compliscore/internal/report"
)

// scoredResponse is the JSON shape returned by the scoring endpoints.
type scoredResponse struct {
	UploadID string             `json:"upload_id,omitempty"`
	Columns  []string           `json:"columns"`
	Rows     [][]string         `json:"rows"`
	Summary  model.SummaryStats `json:"summary"`
	Colors   map[string]string  `json:"colors"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	b, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "dashboard page unavailable")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(b) //nolint:errcheck
}

// handleDemo scores the built-in demo dataset.
func (s *Server) handleDemo(w http.ResponseWriter, _ *http.Request) {
	st, stats, err := s.scoreDemo()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, scoredResponse{
		Columns: st.Columns,
		Rows:    st.Rows(),
		Summary: stats,
		Colors:  model.StatusColors(),
	})
}

// handleScore scores an uploaded CSV or Excel file.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	maxBytes := s.cfg.Server.MaxUploadBytes
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close() //nolint:errcheck

	tbl, err := fetcher.LoadReader(file, header.Filename)
	if err != nil {
		var ufe *fetcher.UnsupportedFormatError
		if eris.As(err, &ufe) {
			writeError(w, http.StatusUnsupportedMediaType, ufe.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	st, err := pipeline.Prepare(tbl, s.cfg.Policy)
	if err != nil {
		var se *pipeline.SchemaError
		if eris.As(err, &se) {
			writeError(w, http.StatusUnprocessableEntity, se.Error())
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	stats, err := pipeline.Summarize(st)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	uploadID := uuid.NewString()
	zap.L().Info("scored upload",
		zap.String("upload_id", uploadID),
		zap.String("filename", header.Filename),
		zap.Int("rows", len(st.Records)),
		zap.Float64("average_score", stats.Average),
	)

	writeJSON(w, scoredResponse{
		UploadID: uploadID,
		Columns:  st.Columns,
		Rows:     st.Rows(),
		Summary:  stats,
		Colors:   model.StatusColors(),
	})
}

// handleDemoChart renders the demo dataset as a PNG bar chart.
func (s *Server) handleDemoChart(w http.ResponseWriter, _ *http.Request) {
	st, _, err := s.scoreDemo()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := chart.Render(w, st, chart.Options{
		Title:  "Compliance Scores Distribution",
		Width:  s.cfg.Chart.Width,
		Height: s.cfg.Chart.Height,
	}); err != nil {
		zap.L().Error("render demo chart", zap.Error(err))
	}
}

// handleDemoReport renders the demo dataset as a downloadable PDF report.
func (s *Server) handleDemoReport(w http.ResponseWriter, _ *http.Request) {
	st, stats, err := s.scoreDemo()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	filename := fmt.Sprintf("CompliScore_Report_%s.pdf", time.Now().Format("20060102_1504"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := report.Build(w, st, stats, report.Options{
		Title:    s.cfg.Report.Title,
		Subtitle: s.cfg.Report.Subtitle,
	}); err != nil {
		zap.L().Error("render demo report", zap.Error(err))
	}
}

func (s *Server) scoreDemo() (*pipeline.ScoredTable, model.SummaryStats, error) {
	st, err := pipeline.Prepare(fetcher.Demo(s.cfg.Demo.Rows), s.cfg.Policy)
	if err != nil {
		return nil, model.SummaryStats{}, eris.Wrap(err, "web: score demo table")
	}
	stats, err := pipeline.Summarize(st)
	if err != nil {
		return nil, model.SummaryStats{}, eris.Wrap(err, "web: summarize demo table")
	}
	return st, stats, nil
}
