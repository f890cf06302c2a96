// Package scorer implements the compliance scoring engine: five pass/fail
// checks mapping a broker record to a weighted score and a status band.
package scorer

import (
	"strings"

	"github.com/sells-group/compliscore/internal/config"
	"github.com/sells-group/compliscore/internal/model"
)

// Failure reason strings, one per check, in evaluation order.
const (
	ReasonKYC        = "KYC not completed"
	ReasonCapital    = "Capital adequacy < 100%"
	ReasonComplaints = "Complaints > 2"
	ReasonDelay      = "Reporting delay > 1 day"
	ReasonBreach     = "Major breaches present"
)

// Score evaluates the five compliance checks against rec and returns the
// weighted score plus one failure reason per check that did not pass.
// Check order is fixed and determines the order of the returned reasons.
// Pure: no I/O, no shared state, result depends only on rec and p.
func Score(rec model.BrokerRecord, p config.PolicyConfig) (int, []string) {
	var score int
	var failed []string

	// 1. KYC completed.
	if kycCompleted(rec.KYCCompleted) {
		score += p.KYCWeight
	} else {
		failed = append(failed, ReasonKYC)
	}

	// 2. Capital adequacy.
	if rec.CapitalAdequacyPct >= p.MinCapitalAdequacyPct {
		score += p.CapitalWeight
	} else {
		failed = append(failed, ReasonCapital)
	}

	// 3. Client complaints.
	if rec.ClientComplaints <= p.MaxClientComplaints {
		score += p.ComplaintsWeight
	} else {
		failed = append(failed, ReasonComplaints)
	}

	// 4. Reporting delay.
	if rec.ReportingDelayDays <= p.MaxReportingDelayDays {
		score += p.DelayWeight
	} else {
		failed = append(failed, ReasonDelay)
	}

	// 5. No major breaches. Re-applies the complaint and delay thresholds
	// rather than reusing the outcomes above, so a policy edit to either
	// threshold flows through both checks.
	if rec.ClientComplaints <= p.MaxClientComplaints && rec.ReportingDelayDays <= p.MaxReportingDelayDays {
		score += p.BreachWeight
	} else {
		failed = append(failed, ReasonBreach)
	}

	return score, failed
}

// StatusFor maps a score to its status band. Total over all integers: any
// score below the attention band is Non-Compliant.
func StatusFor(score int, p config.PolicyConfig) model.Status {
	switch {
	case score >= p.CompliantMin:
		return model.StatusCompliant
	case score >= p.AttentionMin:
		return model.StatusNeedsAttention
	default:
		return model.StatusNonCompliant
	}
}

// kycCompleted reports whether a raw KYC flag normalizes to "Y".
func kycCompleted(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "y")
}
