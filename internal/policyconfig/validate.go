package policyconfig

import (
	"fmt"
)

// ValidationError is a policy value that cannot be used
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Warning is a usable but suspicious policy value
type Warning struct {
	Code    string
	Message string
}

// Validate checks all required constraints
func Validate(p *Policy) error {
	if p.Meta.PolicyID == "" {
		return ValidationError{"meta.policy_id", "required"}
	}

	pcts := []struct {
		field string
		value float64
	}{
		{"bonus.first_pct", p.Bonus.FirstPct},
		{"bonus.podium_pct", p.Bonus.PodiumPct},
		{"bonus.default_pct", p.Bonus.DefaultPct},
		{"bonus.last_pct", p.Bonus.LastPct},
	}
	for _, pct := range pcts {
		if err := validatePctRange(pct.value, pct.field); err != nil {
			return err
		}
	}

	if p.Bonus.PodiumRanks < 0 {
		return ValidationError{"bonus.podium_ranks", "must be >= 0"}
	}

	if p.Report.TopProductsLimit <= 0 {
		return ValidationError{"report.top_products_limit", "must be > 0"}
	}

	return nil
}

// Warn returns recommendations that do not block a run
func Warn(p *Policy) []Warning {
	var warnings []Warning

	if p.Bonus.FirstPct < p.Bonus.PodiumPct {
		warnings = append(warnings, Warning{
			Code:    "BONUS_FIRST_BELOW_PODIUM",
			Message: fmt.Sprintf("first_pct=%.4f < podium_pct=%.4f", p.Bonus.FirstPct, p.Bonus.PodiumPct),
		})
	}

	if p.Bonus.PodiumPct < p.Bonus.DefaultPct {
		warnings = append(warnings, Warning{
			Code:    "BONUS_PODIUM_BELOW_DEFAULT",
			Message: fmt.Sprintf("podium_pct=%.4f < default_pct=%.4f", p.Bonus.PodiumPct, p.Bonus.DefaultPct),
		})
	}

	if p.Bonus.LastPct > p.Bonus.DefaultPct {
		warnings = append(warnings, Warning{
			Code:    "BONUS_LAST_ABOVE_DEFAULT",
			Message: fmt.Sprintf("last place earns more than the middle of the table (%.4f > %.4f)", p.Bonus.LastPct, p.Bonus.DefaultPct),
		})
	}

	if p.Report.TopProductsLimit > 50 {
		warnings = append(warnings, Warning{
			Code:    "TOP_PRODUCTS_LARGE",
			Message: fmt.Sprintf("top_products_limit=%d makes reports hard to read", p.Report.TopProductsLimit),
		})
	}

	return warnings
}

// validatePctRange checks a fraction is within [0, 1]
func validatePctRange(v float64, field string) error {
	if v < 0 || v > 1 {
		return ValidationError{field, fmt.Sprintf("must be in [0, 1], got %.4f", v)}
	}
	return nil
}
