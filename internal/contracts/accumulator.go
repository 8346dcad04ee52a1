package contracts

// SellerAccumulator holds the running totals of one seller during aggregation.
// Owned by a single analysis run; strategies must treat it as read-only.
type SellerAccumulator struct {
	SellerID   string
	Name       string
	Revenue    float64
	Profit     float64
	SalesCount int
	SoldItems  map[string]int // sku -> quantity, values always > 0
}

// NewSellerAccumulator creates an empty accumulator for seller
func NewSellerAccumulator(seller Seller) *SellerAccumulator {
	return &SellerAccumulator{
		SellerID:  seller.ID,
		Name:      seller.FullName(),
		SoldItems: make(map[string]int),
	}
}

// AddSale credits one purchase record
func (a *SellerAccumulator) AddSale(amount float64) {
	a.SalesCount++
	a.Revenue += amount
}

// AddItem credits one sold line item
func (a *SellerAccumulator) AddItem(sku string, quantity int, profit float64) {
	a.Profit += profit
	a.SoldItems[sku] += quantity
}

// TotalQuantity returns the number of units sold across all skus
func (a *SellerAccumulator) TotalQuantity() int {
	total := 0
	for _, qty := range a.SoldItems {
		total += qty
	}
	return total
}
