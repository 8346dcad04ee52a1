package analysis

import (
	"fmt"

	"github.com/wonny/salesperf/internal/contracts"
)

func revenueOf(item contracts.PurchaseItem, _ contracts.Product) float64 {
	return item.SalePrice * float64(item.Quantity) * (1 - item.Discount/100)
}

func bonusOf(rank, total int, seller *contracts.SellerAccumulator) float64 {
	switch {
	case rank == 0:
		return 0.15 * seller.Profit
	case rank <= 2:
		return 0.10 * seller.Profit
	case rank != total-1:
		return 0.05 * seller.Profit
	default:
		return 0
	}
}

func testStrategies() contracts.Strategies {
	return contracts.Strategies{
		Revenue: contracts.RevenueFunc(revenueOf),
		Bonus:   contracts.BonusFunc(bonusOf),
	}
}

// scenarioDataset is one seller with one two-item receipt
func scenarioDataset() *contracts.Dataset {
	return &contracts.Dataset{
		Sellers: []contracts.Seller{{ID: "S1", FirstName: "Anna", LastName: "Smirnova"}},
		Products: []contracts.Product{
			{SKU: "P1", PurchasePrice: 40},
			{SKU: "P2", PurchasePrice: 20},
		},
		PurchaseRecords: []contracts.PurchaseRecord{
			{
				SellerID:    "S1",
				TotalAmount: 245,
				Items: []contracts.PurchaseItem{
					{SKU: "P1", Quantity: 2, SalePrice: 100, Discount: 0},
					{SKU: "P2", Quantity: 1, SalePrice: 50, Discount: 10},
				},
			},
		},
	}
}

// sampleDataset: seller_2 200, seller_1 195, seller_3 25, seller_4 0 profit.
// One record names an unknown seller, one item an unknown sku.
func sampleDataset() *contracts.Dataset {
	return &contracts.Dataset{
		Sellers: []contracts.Seller{
			{ID: "seller_1", FirstName: "Alexey", LastName: "Petrov"},
			{ID: "seller_2", FirstName: "Maria", LastName: "Ivanova"},
			{ID: "seller_3", FirstName: "Oleg", LastName: "Sokolov"},
			{ID: "seller_4", FirstName: "Irina", LastName: "Volkova"},
		},
		Products: []contracts.Product{
			{SKU: "P1", PurchasePrice: 40},
			{SKU: "P2", PurchasePrice: 20},
			{SKU: "P3", PurchasePrice: 10},
		},
		Customers: []contracts.Customer{{ID: "customer_1", FirstName: "Pavel", LastName: "Orlov"}},
		PurchaseRecords: []contracts.PurchaseRecord{
			{SellerID: "seller_1", TotalAmount: 245, Items: []contracts.PurchaseItem{
				{SKU: "P1", Quantity: 2, SalePrice: 100},
				{SKU: "P2", Quantity: 1, SalePrice: 50, Discount: 10},
			}},
			{SellerID: "seller_2", TotalAmount: 300, Items: []contracts.PurchaseItem{
				{SKU: "P3", Quantity: 10, SalePrice: 30},
			}},
			{SellerID: "seller_3", TotalAmount: 60, Items: []contracts.PurchaseItem{
				{SKU: "P2", Quantity: 2, SalePrice: 30},
			}},
			{SellerID: "seller_1", TotalAmount: 100, Items: []contracts.PurchaseItem{
				{SKU: "P3", Quantity: 5, SalePrice: 20},
			}},
			{SellerID: "seller_unknown", TotalAmount: 999, Items: []contracts.PurchaseItem{
				{SKU: "P1", Quantity: 100, SalePrice: 100},
			}},
			{SellerID: "seller_3", TotalAmount: 15, Items: []contracts.PurchaseItem{
				{SKU: "UNKNOWN", Quantity: 3, SalePrice: 10},
				{SKU: "P3", Quantity: 1, SalePrice: 15},
			}},
		},
	}
}

// wideDataset has one seller who sold n distinct skus, sku_i with quantity i+1
func wideDataset(n int) *contracts.Dataset {
	ds := &contracts.Dataset{
		Sellers: []contracts.Seller{{ID: "seller_1", FirstName: "Wide", LastName: "Seller"}},
	}
	items := make([]contracts.PurchaseItem, 0, n)
	for i := 0; i < n; i++ {
		sku := fmt.Sprintf("SKU_%03d", i)
		ds.Products = append(ds.Products, contracts.Product{SKU: sku, PurchasePrice: 1})
		items = append(items, contracts.PurchaseItem{SKU: sku, Quantity: i + 1, SalePrice: 2})
	}
	ds.PurchaseRecords = []contracts.PurchaseRecord{{SellerID: "seller_1", TotalAmount: 1, Items: items}}
	return ds
}
