package analysis

import (
	"math"
	"sort"

	"github.com/wonny/salesperf/internal/contracts"
)

// TopProductsLimit is the default number of skus listed per seller
const TopProductsLimit = 10

// BuildReports projects ranked sellers into report rows, preserving rank order
func BuildReports(ranked []RankedSeller, limit int) []contracts.SellerReport {
	reports := make([]contracts.SellerReport, 0, len(ranked))
	for _, r := range ranked {
		reports = append(reports, contracts.SellerReport{
			SellerID:    r.Seller.SellerID,
			Name:        r.Seller.Name,
			Revenue:     RoundMoney(r.Seller.Revenue),
			Profit:      RoundMoney(r.Seller.Profit),
			SalesCount:  r.Seller.SalesCount,
			TopProducts: TopProducts(r.Seller.SoldItems, limit),
			Bonus:       RoundMoney(r.Bonus),
		})
	}
	return reports
}

// TopProducts sorts sold skus by quantity descending, sku ascending, and keeps
// at most limit entries. limit <= 0 means TopProductsLimit.
func TopProducts(sold map[string]int, limit int) []contracts.ProductQuantity {
	if limit <= 0 {
		limit = TopProductsLimit
	}

	products := make([]contracts.ProductQuantity, 0, len(sold))
	for sku, qty := range sold {
		products = append(products, contracts.ProductQuantity{SKU: sku, Quantity: qty})
	}

	sort.Slice(products, func(i, j int) bool {
		if products[i].Quantity != products[j].Quantity {
			return products[i].Quantity > products[j].Quantity
		}
		return products[i].SKU < products[j].SKU
	})

	if len(products) > limit {
		products = products[:limit]
	}
	return products
}

// RoundMoney rounds to two decimals, halves away from zero.
// The value is scaled as a float64, so a binary value just below .xx5 rounds down.
func RoundMoney(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0 // no negative zero in output
	}
	return r
}

// Summary totals a report across all sellers
type Summary struct {
	Sellers    int     `json:"sellers"`
	SalesCount int     `json:"sales_count"`
	Revenue    float64 `json:"revenue"`
	Profit     float64 `json:"profit"`
	Bonus      float64 `json:"bonus"`
}

// Summarize adds up rounded report rows
func Summarize(reports []contracts.SellerReport) Summary {
	s := Summary{Sellers: len(reports)}
	for _, r := range reports {
		s.SalesCount += r.SalesCount
		s.Revenue += r.Revenue
		s.Profit += r.Profit
		s.Bonus += r.Bonus
	}
	s.Revenue = RoundMoney(s.Revenue)
	s.Profit = RoundMoney(s.Profit)
	s.Bonus = RoundMoney(s.Bonus)
	return s
}
