// Package strategy provides the default calculation strategies injected into an analysis run.
package strategy

import "github.com/wonny/salesperf/internal/contracts"

// SaleRevenue returns sale_price × quantity reduced by the item's percent discount.
// The product is not consulted.
func SaleRevenue(item contracts.PurchaseItem, _ contracts.Product) float64 {
	return item.SalePrice * float64(item.Quantity) * (1 - item.Discount/100)
}

// Default returns the canonical revenue and bonus strategies
func Default() contracts.Strategies {
	return contracts.Strategies{
		Revenue: contracts.RevenueFunc(SaleRevenue),
		Bonus:   contracts.BonusFunc(SellerBonus),
	}
}

// FromTiers returns SaleRevenue paired with a tiered bonus
func FromTiers(tiers TieredBonus) contracts.Strategies {
	return contracts.Strategies{
		Revenue: contracts.RevenueFunc(SaleRevenue),
		Bonus:   tiers,
	}
}
