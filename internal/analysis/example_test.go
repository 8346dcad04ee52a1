package analysis_test

import (
	"fmt"

	"github.com/wonny/salesperf/internal/analysis"
	"github.com/wonny/salesperf/internal/contracts"
	"github.com/wonny/salesperf/internal/strategy"
)

func ExampleAnalyzeSales() {
	ds := &contracts.Dataset{
		Sellers:  []contracts.Seller{{ID: "S1", FirstName: "Anna", LastName: "Smirnova"}},
		Products: []contracts.Product{{SKU: "P1", PurchasePrice: 40}, {SKU: "P2", PurchasePrice: 20}},
		PurchaseRecords: []contracts.PurchaseRecord{{
			SellerID:    "S1",
			TotalAmount: 245,
			Items: []contracts.PurchaseItem{
				{SKU: "P1", Quantity: 2, SalePrice: 100},
				{SKU: "P2", Quantity: 1, SalePrice: 50, Discount: 10},
			},
		}},
	}

	reports, err := analysis.AnalyzeSales(ds, strategy.Default())
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, r := range reports {
		fmt.Printf("%s %s profit=%.2f bonus=%.2f top=%v\n", r.SellerID, r.Name, r.Profit, r.Bonus, r.TopProducts)
	}
	// Output:
	// S1 Anna Smirnova profit=145.00 bonus=21.75 top=[{P1 2} {P2 1}]
}
