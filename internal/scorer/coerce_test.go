package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/compliscore/internal/model"
)

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		name string
		in   string
		def  float64
		want float64
	}{
		{"integer", "104", 0, 104},
		{"float", "99.5", 0, 99.5},
		{"padded", "  12.5  ", 0, 12.5},
		{"negative", "-3", 0, -3},
		{"empty", "", 0, 0},
		{"garbage", "not-a-number", 0, 0},
		{"garbage with default", "n/a", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseNumeric(tt.in, tt.def), 0.0001)
		})
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		def  int
		want int
	}{
		{"integer", "4", 0, 4},
		{"padded", " 2 ", 0, 2},
		{"float truncates", "4.9", 0, 4},
		{"zero", "0", 0, 0},
		{"empty", "", 0, 0},
		{"garbage", "many", 0, 0},
		{"garbage with default", "??", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCount(tt.in, tt.def))
		})
	}
}

func TestCoercionFailOpen(t *testing.T) {
	// Unparsable complaints coerce to 0, which passes the complaints check.
	rec := model.BrokerRecord{
		KYCCompleted:       "Y",
		CapitalAdequacyPct: ParseNumeric("120", 0),
		ClientComplaints:   ParseCount("not-a-number", 0),
		ReportingDelayDays: ParseNumeric("", 0),
	}

	score, failed := Score(rec, DefaultPolicy())

	assert.Equal(t, 100, score)
	assert.NotContains(t, failed, ReasonComplaints)
}
