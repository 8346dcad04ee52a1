package contracts

// Seller is a salesperson whose results are reported
type Seller struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	StartDate string `json:"start_date,omitempty"`
	Position  string `json:"position,omitempty"`
}

// FullName returns "<first> <last>" as shown in reports
func (s Seller) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Product is a catalog entry referenced by sku
type Product struct {
	SKU           string  `json:"sku"`
	Name          string  `json:"name,omitempty"`
	Category      string  `json:"category,omitempty"`
	PurchasePrice float64 `json:"purchase_price"`
	SalePrice     float64 `json:"sale_price,omitempty"`
}

// Customer is carried with the dataset but not used by the report
type Customer struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// PurchaseItem is one line of a purchase record
type PurchaseItem struct {
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	SalePrice float64 `json:"sale_price"`
	Discount  float64 `json:"discount"` // percent, 0..100
}

// PurchaseRecord is a single receipt issued by one seller
type PurchaseRecord struct {
	ReceiptID     string         `json:"receipt_id,omitempty"`
	Date          string         `json:"date,omitempty"`
	SellerID      string         `json:"seller_id"`
	CustomerID    string         `json:"customer_id,omitempty"`
	TotalAmount   float64        `json:"total_amount"`
	TotalDiscount *float64       `json:"total_discount,omitempty"`
	Items         []PurchaseItem `json:"items"`
}

// NetAmount returns the amount credited to the seller's revenue.
// total_discount is only subtracted when present and subtractDiscount is set.
func (r *PurchaseRecord) NetAmount(subtractDiscount bool) float64 {
	if subtractDiscount && r.TotalDiscount != nil {
		return r.TotalAmount - *r.TotalDiscount
	}
	return r.TotalAmount
}

// Dataset is the complete in-memory input of one analysis run
type Dataset struct {
	Sellers         []Seller         `json:"sellers"`
	Products        []Product        `json:"products"`
	Customers       []Customer       `json:"customers,omitempty"`
	PurchaseRecords []PurchaseRecord `json:"purchase_records"`
}
