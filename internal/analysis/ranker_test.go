package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/salesperf/internal/contracts"
)

func acc(id string, profit float64) *contracts.SellerAccumulator {
	return &contracts.SellerAccumulator{SellerID: id, Profit: profit, SoldItems: map[string]int{}}
}

func TestRank_Order(t *testing.T) {
	sellers := []*contracts.SellerAccumulator{
		acc("c", 10),
		acc("b", 50),
		acc("a", 10),
		acc("d", -5),
		acc("e", 50),
	}

	ranked := Rank(sellers, contracts.BonusFunc(bonusOf))
	require.Len(t, ranked, 5)

	var ids []string
	for i, r := range ranked {
		ids = append(ids, r.Seller.SellerID)
		assert.Equal(t, i, r.Rank)
	}
	assert.Equal(t, []string{"b", "e", "a", "c", "d"}, ids)

	// input slice untouched
	assert.Equal(t, "c", sellers[0].SellerID)
}

func TestRank_BonusArguments(t *testing.T) {
	type call struct {
		rank, total int
		id          string
	}
	var calls []call

	bonus := contracts.BonusFunc(func(rank, total int, s *contracts.SellerAccumulator) float64 {
		calls = append(calls, call{rank, total, s.SellerID})
		return float64(rank)
	})

	ranked := Rank([]*contracts.SellerAccumulator{acc("x", 1), acc("y", 3), acc("z", 2)}, bonus)

	assert.Equal(t, []call{{0, 3, "y"}, {1, 3, "z"}, {2, 3, "x"}}, calls)
	assert.Equal(t, 2.0, ranked[2].Bonus)
}

func TestRank_CanonicalBonus(t *testing.T) {
	ranked := Rank([]*contracts.SellerAccumulator{acc("only", 145)}, contracts.BonusFunc(bonusOf))
	require.Len(t, ranked, 1)
	assert.InDelta(t, 21.75, ranked[0].Bonus, 1e-9)

	ranked = Rank([]*contracts.SellerAccumulator{acc("a", 100), acc("b", 100)}, contracts.BonusFunc(bonusOf))
	assert.InDelta(t, 15.0, ranked[0].Bonus, 1e-9)
	assert.InDelta(t, 10.0, ranked[1].Bonus, 1e-9, "rank 1 precedes the last-place rule")
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil, contracts.BonusFunc(bonusOf)))
}
