package contracts

// RevenueCalculator returns the realized revenue of one purchased line item
type RevenueCalculator interface {
	Revenue(item PurchaseItem, product Product) float64
}

// BonusCalculator returns the bonus of a seller at a zero-based rank among total sellers
type BonusCalculator interface {
	Bonus(rank, total int, seller *SellerAccumulator) float64
}

// RevenueFunc adapts a plain function to RevenueCalculator
type RevenueFunc func(item PurchaseItem, product Product) float64

// Revenue calls f(item, product)
func (f RevenueFunc) Revenue(item PurchaseItem, product Product) float64 {
	return f(item, product)
}

// BonusFunc adapts a plain function to BonusCalculator
type BonusFunc func(rank, total int, seller *SellerAccumulator) float64

// Bonus calls f(rank, total, seller)
func (f BonusFunc) Bonus(rank, total int, seller *SellerAccumulator) float64 {
	return f(rank, total, seller)
}

// Strategies bundles the two collaborators injected into an analysis run
type Strategies struct {
	Revenue RevenueCalculator
	Bonus   BonusCalculator
}
