// Package model defines the domain types shared across the scoring pipeline.
package model

// Canonical column names for the raw input table and the scored output table.
// Header comparison trims surrounding whitespace but is otherwise exact.
const (
	ColBrokerName         = "brokerName"
	ColKYCCompleted       = "kycCompleted"
	ColCapitalAdequacyPct = "capitalAdequacyPct"
	ColClientComplaints   = "clientComplaints"
	ColReportingDelayDays = "reportingDelayDays"

	ColComplianceScore = "complianceScore"
	ColStatus          = "status"
	ColFailedChecks    = "failedChecks"
)

// RequiredColumns returns the columns every input table must carry, in
// canonical order.
func RequiredColumns() []string {
	return []string{
		ColBrokerName,
		ColKYCCompleted,
		ColCapitalAdequacyPct,
		ColClientComplaints,
		ColReportingDelayDays,
	}
}

// BrokerRecord is one input row after numeric coercion. BrokerName and
// KYCCompleted stay textual; the three numeric fields default to 0 when the
// source cell does not parse.
type BrokerRecord struct {
	BrokerName         string  `json:"broker_name"`
	KYCCompleted       string  `json:"kyc_completed"`
	CapitalAdequacyPct float64 `json:"capital_adequacy_pct"`
	ClientComplaints   int     `json:"client_complaints"`
	ReportingDelayDays float64 `json:"reporting_delay_days"`
}

// Status is the coarse compliance band derived from a score.
type Status string

// Status bands, worded for end users rather than color names.
const (
	StatusCompliant      Status = "Compliant"
	StatusNeedsAttention Status = "Needs Attention"
	StatusNonCompliant   Status = "Non-Compliant"
)

// HexColor returns the display color for the status.
func (s Status) HexColor() string {
	switch s {
	case StatusCompliant:
		return "#2e7d32"
	case StatusNeedsAttention:
		return "#f9a825"
	case StatusNonCompliant:
		return "#c62828"
	default:
		return "#424242"
	}
}

// StatusColors maps every status band to its display color.
func StatusColors() map[string]string {
	return map[string]string{
		string(StatusCompliant):      StatusCompliant.HexColor(),
		string(StatusNeedsAttention): StatusNeedsAttention.HexColor(),
		string(StatusNonCompliant):   StatusNonCompliant.HexColor(),
	}
}

// SummaryStats aggregates the complianceScore column of a scored table.
type SummaryStats struct {
	Average float64 `json:"average"`
	Highest int     `json:"highest"`
	Lowest  int     `json:"lowest"`
}
