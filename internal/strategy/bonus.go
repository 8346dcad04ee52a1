package strategy

import "github.com/wonny/salesperf/internal/contracts"

// SellerBonus is the canonical bonus policy.
// Checked in order: first place 15%, ranks 1-2 10%, last place 0%, everyone else 5%.
// A single seller is both first and last and gets 15%.
func SellerBonus(rank, total int, seller *contracts.SellerAccumulator) float64 {
	if rank == 0 {
		return 0.15 * seller.Profit
	}
	if rank <= 2 {
		return 0.10 * seller.Profit
	}
	if rank != total-1 {
		return 0.05 * seller.Profit
	}
	return 0
}

// TieredBonus is SellerBonus with configurable percentages.
// Percentages are fractions of profit (0.15 = 15%).
type TieredBonus struct {
	FirstPct    float64
	PodiumPct   float64
	PodiumRanks int // ranks 1..PodiumRanks receive PodiumPct
	DefaultPct  float64
	LastPct     float64
}

// DefaultTieredBonus returns tiers equal to SellerBonus
func DefaultTieredBonus() TieredBonus {
	return TieredBonus{
		FirstPct:    0.15,
		PodiumPct:   0.10,
		PodiumRanks: 2,
		DefaultPct:  0.05,
		LastPct:     0,
	}
}

// Bonus implements contracts.BonusCalculator with the same precedence as SellerBonus
func (t TieredBonus) Bonus(rank, total int, seller *contracts.SellerAccumulator) float64 {
	switch {
	case rank == 0:
		return t.FirstPct * seller.Profit
	case rank <= t.PodiumRanks:
		return t.PodiumPct * seller.Profit
	case rank == total-1:
		return t.LastPct * seller.Profit
	default:
		return t.DefaultPct * seller.Profit
	}
}
