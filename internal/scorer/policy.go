package scorer

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/compliscore/internal/config"
)

// DefaultPolicy returns a config.PolicyConfig with the standard rules:
// five checks worth 20 points each, capital adequacy at 100%, at most two
// complaints, at most one day of reporting delay, status bands at 80/50.
func DefaultPolicy() config.PolicyConfig {
	return config.PolicyConfig{
		KYCWeight:        20,
		CapitalWeight:    20,
		ComplaintsWeight: 20,
		DelayWeight:      20,
		BreachWeight:     20,

		MinCapitalAdequacyPct: 100,
		MaxClientComplaints:   2,
		MaxReportingDelayDays: 1,

		CompliantMin: 80,
		AttentionMin: 50,
	}
}

// WeightSum returns the sum of all check weights, i.e. the maximum score.
func WeightSum(p config.PolicyConfig) int {
	return p.KYCWeight + p.CapitalWeight + p.ComplaintsWeight + p.DelayWeight + p.BreachWeight
}

// ValidatePolicy checks that a PolicyConfig is internally consistent.
func ValidatePolicy(p config.PolicyConfig) error {
	var errs []string

	weights := []struct {
		name string
		w    int
	}{
		{"kyc_weight", p.KYCWeight},
		{"capital_weight", p.CapitalWeight},
		{"complaints_weight", p.ComplaintsWeight},
		{"delay_weight", p.DelayWeight},
		{"breach_weight", p.BreachWeight},
	}
	for _, w := range weights {
		if w.w < 0 {
			errs = append(errs, fmt.Sprintf("%s must be >= 0", w.name))
		}
	}

	sum := WeightSum(p)
	if sum <= 0 {
		errs = append(errs, "weight sum must be > 0")
	}

	if p.MinCapitalAdequacyPct < 0 {
		errs = append(errs, "min_capital_adequacy_pct must be >= 0")
	}
	if p.MaxClientComplaints < 0 {
		errs = append(errs, "max_client_complaints must be >= 0")
	}
	if p.MaxReportingDelayDays < 0 {
		errs = append(errs, "max_reporting_delay_days must be >= 0")
	}

	if p.AttentionMin < 0 {
		errs = append(errs, "attention_min must be >= 0")
	}
	if p.CompliantMin < p.AttentionMin {
		errs = append(errs, "compliant_min must be >= attention_min")
	}
	if sum > 0 && p.CompliantMin > sum {
		errs = append(errs, fmt.Sprintf("compliant_min must be <= weight sum %d", sum))
	}

	if len(errs) > 0 {
		return eris.Errorf("scorer: policy validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
