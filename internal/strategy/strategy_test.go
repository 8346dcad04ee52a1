package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wonny/salesperf/internal/contracts"
)

func TestSaleRevenue(t *testing.T) {
	tests := []struct {
		name string
		item contracts.PurchaseItem
		want float64
	}{
		{"no discount", contracts.PurchaseItem{SKU: "P1", Quantity: 2, SalePrice: 100}, 200},
		{"ten percent", contracts.PurchaseItem{SKU: "P2", Quantity: 1, SalePrice: 50, Discount: 10}, 45},
		{"full discount", contracts.PurchaseItem{SKU: "P3", Quantity: 5, SalePrice: 20, Discount: 100}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SaleRevenue(tt.item, contracts.Product{SKU: tt.item.SKU, PurchasePrice: 1})
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestSellerBonus(t *testing.T) {
	seller := &contracts.SellerAccumulator{Profit: 1000}

	tests := []struct {
		name  string
		rank  int
		total int
		want  float64
	}{
		{"single seller takes first place", 0, 1, 150},
		{"first of five", 0, 5, 150},
		{"second of five", 1, 5, 100},
		{"third of five", 2, 5, 100},
		{"fourth of five", 3, 5, 50},
		{"last of five", 4, 5, 0},
		{"second of two keeps podium bonus", 1, 2, 100},
		{"third of three keeps podium bonus", 2, 3, 100},
		{"last of four", 3, 4, 0},
		{"middle of ten", 5, 10, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SellerBonus(tt.rank, tt.total, seller), 1e-9)
		})
	}
}

func TestTieredBonus_MatchesSellerBonus(t *testing.T) {
	tiers := DefaultTieredBonus()
	seller := &contracts.SellerAccumulator{Profit: 1234.56}

	for total := 1; total <= 7; total++ {
		for rank := 0; rank < total; rank++ {
			assert.Equal(t, SellerBonus(rank, total, seller), tiers.Bonus(rank, total, seller),
				"rank=%d total=%d", rank, total)
		}
	}
}

func TestTieredBonus_Custom(t *testing.T) {
	tiers := TieredBonus{FirstPct: 0.2, PodiumPct: 0.1, PodiumRanks: 1, DefaultPct: 0.03, LastPct: 0.01}
	seller := &contracts.SellerAccumulator{Profit: 100}

	assert.InDelta(t, 20.0, tiers.Bonus(0, 4, seller), 1e-9)
	assert.InDelta(t, 10.0, tiers.Bonus(1, 4, seller), 1e-9)
	assert.InDelta(t, 3.0, tiers.Bonus(2, 4, seller), 1e-9)
	assert.InDelta(t, 1.0, tiers.Bonus(3, 4, seller), 1e-9)
}

func TestDefault(t *testing.T) {
	s := Default()
	assert.NotNil(t, s.Revenue)
	assert.NotNil(t, s.Bonus)

	s = FromTiers(DefaultTieredBonus())
	assert.IsType(t, TieredBonus{}, s.Bonus)
}
