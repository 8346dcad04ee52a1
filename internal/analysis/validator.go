package analysis

import (
	"reflect"

	"github.com/wonny/salesperf/internal/contracts"
)

// Validate rejects a run before any aggregation happens.
// Customers are never inspected.
func Validate(ds *contracts.Dataset, s contracts.Strategies) error {
	if ds == nil {
		return &contracts.ValidationError{Kind: contracts.ErrInvalidDataset, Field: "dataset", Message: "missing"}
	}

	collections := []struct {
		field  string
		isNil  bool
		length int
	}{
		{"sellers", ds.Sellers == nil, len(ds.Sellers)},
		{"products", ds.Products == nil, len(ds.Products)},
		{"purchase_records", ds.PurchaseRecords == nil, len(ds.PurchaseRecords)},
	}
	for _, c := range collections {
		if c.isNil {
			return &contracts.ValidationError{Kind: contracts.ErrInvalidDataset, Field: c.field, Message: "missing"}
		}
		if c.length == 0 {
			return &contracts.ValidationError{Kind: contracts.ErrInvalidDataset, Field: c.field, Message: "empty"}
		}
	}

	if isMissing(s.Revenue) {
		return &contracts.ValidationError{Kind: contracts.ErrInvalidStrategy, Field: "calculate_revenue", Message: "not supplied"}
	}
	if isMissing(s.Bonus) {
		return &contracts.ValidationError{Kind: contracts.ErrInvalidStrategy, Field: "calculate_bonus", Message: "not supplied"}
	}

	return nil
}

// isMissing reports a nil interface or an interface wrapping a nil func, pointer or map
func isMissing(strategy interface{}) bool {
	if strategy == nil {
		return true
	}
	v := reflect.ValueOf(strategy)
	switch v.Kind() {
	case reflect.Func, reflect.Ptr, reflect.Map, reflect.Interface, reflect.Chan, reflect.Slice:
		return v.IsNil()
	}
	return false
}
