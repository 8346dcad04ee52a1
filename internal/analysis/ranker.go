package analysis

import (
	"sort"

	"github.com/wonny/salesperf/internal/contracts"
)

// RankedSeller is a seller accumulator with its zero-based rank and bonus
type RankedSeller struct {
	Seller *contracts.SellerAccumulator
	Rank   int
	Bonus  float64
}

// Rank orders sellers by profit descending, seller id ascending on ties, and
// asks the bonus strategy for each rank. The input slice is not reordered.
func Rank(sellers []*contracts.SellerAccumulator, bonus contracts.BonusCalculator) []RankedSeller {
	ordered := make([]*contracts.SellerAccumulator, len(sellers))
	copy(ordered, sellers)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Profit != ordered[j].Profit {
			return ordered[i].Profit > ordered[j].Profit
		}
		return ordered[i].SellerID < ordered[j].SellerID
	})

	total := len(ordered)
	ranked := make([]RankedSeller, total)
	for i, acc := range ordered {
		ranked[i] = RankedSeller{
			Seller: acc,
			Rank:   i,
			Bonus:  bonus.Bonus(i, total, acc),
		}
	}

	return ranked
}
