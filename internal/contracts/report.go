package contracts

// ProductQuantity is one entry of a seller's top products
type ProductQuantity struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// SellerReport is the output row for one seller, in rank order
type SellerReport struct {
	SellerID    string            `json:"seller_id"`
	Name        string            `json:"name"`
	Revenue     float64           `json:"revenue"`
	Profit      float64           `json:"profit"`
	SalesCount  int               `json:"sales_count"`
	TopProducts []ProductQuantity `json:"top_products"`
	Bonus       float64           `json:"bonus"`
}

// TopQuantity returns the sum of quantities listed in TopProducts
func (r *SellerReport) TopQuantity() int {
	total := 0
	for _, p := range r.TopProducts {
		total += p.Quantity
	}
	return total
}
