package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wonny/salesperf/internal/contracts"
)

type pointerBonus struct{}

func (*pointerBonus) Bonus(int, int, *contracts.SellerAccumulator) float64 { return 0 }

func TestValidate(t *testing.T) {
	var nilPointer *pointerBonus

	tests := []struct {
		name       string
		ds         *contracts.Dataset
		strategies contracts.Strategies
		wantKind   error
	}{
		{"valid", sampleDataset(), testStrategies(), nil},
		{"dataset checked before strategies", &contracts.Dataset{}, contracts.Strategies{}, contracts.ErrInvalidDataset},
		{"empty products", &contracts.Dataset{
			Sellers:         []contracts.Seller{{ID: "s"}},
			Products:        []contracts.Product{},
			PurchaseRecords: []contracts.PurchaseRecord{{SellerID: "s"}},
		}, testStrategies(), contracts.ErrInvalidDataset},
		{"typed nil pointer bonus", sampleDataset(), contracts.Strategies{
			Revenue: contracts.RevenueFunc(revenueOf),
			Bonus:   nilPointer,
		}, contracts.ErrInvalidStrategy},
		{"non-nil pointer bonus", sampleDataset(), contracts.Strategies{
			Revenue: contracts.RevenueFunc(revenueOf),
			Bonus:   &pointerBonus{},
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.ds, tt.strategies)
			if tt.wantKind == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantKind), "got %v", err)
		})
	}
}
