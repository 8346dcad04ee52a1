package policyconfig

import (
	"time"

	"github.com/wonny/salesperf/internal/analysis"
	"github.com/wonny/salesperf/internal/strategy"
)

// Policy is the tunable part of a report run
type Policy struct {
	Meta        Meta        `yaml:"meta" json:"meta"`
	Aggregation Aggregation `yaml:"aggregation" json:"aggregation"`
	Bonus       Bonus       `yaml:"bonus" json:"bonus"`
	Report      Report      `yaml:"report" json:"report"`
}

// Meta identifies a policy
type Meta struct {
	PolicyID string `yaml:"policy_id" json:"policy_id"`
	Version  string `yaml:"version" json:"version"`
}

// Aggregation controls how receipts are credited
type Aggregation struct {
	SubtractTotalDiscount bool `yaml:"subtract_total_discount" json:"subtract_total_discount"`
}

// Bonus holds rank tiers as fractions of profit
type Bonus struct {
	FirstPct    float64 `yaml:"first_pct" json:"first_pct"`
	PodiumPct   float64 `yaml:"podium_pct" json:"podium_pct"`
	PodiumRanks int     `yaml:"podium_ranks" json:"podium_ranks"`
	DefaultPct  float64 `yaml:"default_pct" json:"default_pct"`
	LastPct     float64 `yaml:"last_pct" json:"last_pct"`
}

// Report controls the output projection
type Report struct {
	TopProductsLimit int `yaml:"top_products_limit" json:"top_products_limit"`
}

// Default returns the canonical policy
func Default() *Policy {
	tiers := strategy.DefaultTieredBonus()
	return &Policy{
		Meta: Meta{PolicyID: "default", Version: "1"},
		Aggregation: Aggregation{
			SubtractTotalDiscount: true,
		},
		Bonus: Bonus{
			FirstPct:    tiers.FirstPct,
			PodiumPct:   tiers.PodiumPct,
			PodiumRanks: tiers.PodiumRanks,
			DefaultPct:  tiers.DefaultPct,
			LastPct:     tiers.LastPct,
		},
		Report: Report{TopProductsLimit: analysis.TopProductsLimit},
	}
}

// Tiers converts the bonus section into a bonus strategy
func (p *Policy) Tiers() strategy.TieredBonus {
	return strategy.TieredBonus{
		FirstPct:    p.Bonus.FirstPct,
		PodiumPct:   p.Bonus.PodiumPct,
		PodiumRanks: p.Bonus.PodiumRanks,
		DefaultPct:  p.Bonus.DefaultPct,
		LastPct:     p.Bonus.LastPct,
	}
}

// Options converts the policy into analyzer options
func (p *Policy) Options() analysis.Options {
	return analysis.Options{
		Aggregation: analysis.AggregationPolicy{
			SubtractTotalDiscount: p.Aggregation.SubtractTotalDiscount,
		},
		TopProductsLimit: p.Report.TopProductsLimit,
	}
}

// RunSnapshot records what produced a report, for reproducibility
type RunSnapshot struct {
	RunID       string    `json:"run_id"`
	PolicyHash  string    `json:"policy_hash"`
	PolicyYAML  string    `json:"policy_yaml,omitempty"`
	PolicyID    string    `json:"policy_id"`
	DatasetName string    `json:"dataset_name"`
	CreatedAt   time.Time `json:"created_at"`
}
