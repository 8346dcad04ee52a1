package analysis

import "github.com/wonny/salesperf/internal/contracts"

// AggregationPolicy controls how purchase records are credited
type AggregationPolicy struct {
	// SubtractTotalDiscount credits total_amount - total_discount when a record carries total_discount
	SubtractTotalDiscount bool
}

// DefaultAggregationPolicy subtracts total_discount when present
func DefaultAggregationPolicy() AggregationPolicy {
	return AggregationPolicy{SubtractTotalDiscount: true}
}

// AggregateStats counts what a replay credited and what it skipped
type AggregateStats struct {
	Records        int
	SkippedRecords int
	Items          int
	SkippedItems   int
	UnknownSellers map[string]int // seller_id -> skipped records
	UnknownSKUs    map[string]int // sku -> skipped items
}

// Aggregation is the output of the aggregator stage
type Aggregation struct {
	Sellers []*contracts.SellerAccumulator // one per input seller, input order
	Stats   AggregateStats

	index map[string]*contracts.SellerAccumulator
}

// Seller looks up the accumulator credited for a seller id
func (a *Aggregation) Seller(id string) (*contracts.SellerAccumulator, bool) {
	acc, ok := a.index[id]
	return acc, ok
}

// Aggregate replays purchase records in input order against the seller and product indices.
// A record with an unknown seller is skipped whole; an item with an unknown sku (or a
// non-positive quantity) is skipped alone while its record still counts toward revenue.
func Aggregate(ds *contracts.Dataset, revenue contracts.RevenueCalculator, policy AggregationPolicy) *Aggregation {
	agg := &Aggregation{
		Sellers: make([]*contracts.SellerAccumulator, 0, len(ds.Sellers)),
		Stats: AggregateStats{
			UnknownSellers: make(map[string]int),
			UnknownSKUs:    make(map[string]int),
		},
		index: make(map[string]*contracts.SellerAccumulator, len(ds.Sellers)),
	}

	for _, seller := range ds.Sellers {
		acc := contracts.NewSellerAccumulator(seller)
		agg.Sellers = append(agg.Sellers, acc)
		agg.index[seller.ID] = acc
	}

	products := make(map[string]contracts.Product, len(ds.Products))
	for _, p := range ds.Products {
		products[p.SKU] = p
	}

	for i := range ds.PurchaseRecords {
		record := &ds.PurchaseRecords[i]

		acc, ok := agg.index[record.SellerID]
		if !ok {
			agg.Stats.SkippedRecords++
			agg.Stats.UnknownSellers[record.SellerID]++
			continue
		}
		agg.Stats.Records++

		acc.AddSale(record.NetAmount(policy.SubtractTotalDiscount))

		for _, item := range record.Items {
			product, ok := products[item.SKU]
			if !ok {
				agg.Stats.SkippedItems++
				agg.Stats.UnknownSKUs[item.SKU]++
				continue
			}
			if item.Quantity <= 0 {
				agg.Stats.SkippedItems++
				continue
			}
			agg.Stats.Items++

			cost := product.PurchasePrice * float64(item.Quantity)
			acc.AddItem(item.SKU, item.Quantity, revenue.Revenue(item, product)-cost)
		}
	}

	return agg
}
