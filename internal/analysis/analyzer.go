// Package analysis computes the per-seller performance report.
//
// A run is four stages executed in order on the caller's goroutine:
// Validate, Aggregate, Rank, BuildReports. Every run allocates its own
// accumulators, so independent runs may execute concurrently.
package analysis

import (
	"github.com/wonny/salesperf/internal/contracts"
	"github.com/wonny/salesperf/pkg/logger"
)

// Options tune an Analyzer
type Options struct {
	Aggregation      AggregationPolicy
	TopProductsLimit int
}

// DefaultOptions returns the canonical options
func DefaultOptions() Options {
	return Options{
		Aggregation:      DefaultAggregationPolicy(),
		TopProductsLimit: TopProductsLimit,
	}
}

// Analyzer runs the report pipeline
type Analyzer struct {
	opts   Options
	logger *logger.Logger
}

// NewAnalyzer creates a new analyzer. A nil logger discards output.
func NewAnalyzer(opts Options, log *logger.Logger) *Analyzer {
	if log == nil {
		log = logger.Nop()
	}
	if opts.TopProductsLimit <= 0 {
		opts.TopProductsLimit = TopProductsLimit
	}
	return &Analyzer{
		opts:   opts,
		logger: log,
	}
}

// AnalyzeSales runs the pipeline with DefaultOptions and no logging
func AnalyzeSales(ds *contracts.Dataset, strategies contracts.Strategies) ([]contracts.SellerReport, error) {
	return NewAnalyzer(DefaultOptions(), nil).Analyze(ds, strategies)
}

// Analyze validates the dataset and strategies, then returns one report per seller
// in rank order. No partial result is returned on error.
func (a *Analyzer) Analyze(ds *contracts.Dataset, strategies contracts.Strategies) ([]contracts.SellerReport, error) {
	if err := Validate(ds, strategies); err != nil {
		a.logger.WithError(err).Warn("Dataset rejected")
		return nil, err
	}

	agg := Aggregate(ds, strategies.Revenue, a.opts.Aggregation)
	a.logAggregation(agg.Stats)

	ranked := Rank(agg.Sellers, strategies.Bonus)
	reports := BuildReports(ranked, a.opts.TopProductsLimit)

	if len(reports) > 0 {
		a.logger.WithFields(map[string]interface{}{
			"sellers":                 len(reports),
			"top_seller":              reports[0].SellerID,
			"top_profit":              reports[0].Profit,
			"records":                 agg.Stats.Records,
			"items":                   agg.Stats.Items,
			"subtract_total_discount": a.opts.Aggregation.SubtractTotalDiscount,
		}).Info("Sales report built")
	}

	return reports, nil
}

func (a *Analyzer) logAggregation(stats AggregateStats) {
	if stats.SkippedRecords > 0 {
		a.logger.WithFields(map[string]interface{}{
			"skipped_records": stats.SkippedRecords,
			"unknown_sellers": len(stats.UnknownSellers),
		}).Warn("Purchase records reference unknown sellers")
	}
	if stats.SkippedItems > 0 {
		a.logger.WithFields(map[string]interface{}{
			"skipped_items": stats.SkippedItems,
			"unknown_skus":  len(stats.UnknownSKUs),
		}).Warn("Purchase items skipped")
	}

	if a.logger.DebugEnabled() {
		for id, n := range stats.UnknownSellers {
			a.logger.WithFields(map[string]interface{}{"seller_id": id, "records": n}).Debug("Unknown seller")
		}
		for sku, n := range stats.UnknownSKUs {
			a.logger.WithFields(map[string]interface{}{"sku": sku, "items": n}).Debug("Unknown sku")
		}
	}
}
