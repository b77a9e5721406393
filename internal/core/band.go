package core

import (
	"fmt"
	"math"
)

// PriceBand is one fixed price interval used to bucket purchases.
// Min and Max are both inclusive; the last band is open-ended.
type PriceBand struct {
	Min   int64
	Max   int64
	Label string
}

// PriceBands is the fixed classification table. The ranges are
// contiguous and jointly cover every non-negative price, so each price
// belongs to exactly one band. Band identity is the index in this
// table, not anything derived from data.
var PriceBands = [10]PriceBand{
	{Min: 0, Max: 20000, Label: "2만원 이하"},
	{Min: 20001, Max: 30000, Label: "2만원 초과 ~ 3만원"},
	{Min: 30001, Max: 40000, Label: "3만원 초과 ~ 4만원"},
	{Min: 40001, Max: 50000, Label: "4만원 초과 ~ 5만원"},
	{Min: 50001, Max: 60000, Label: "5만원 초과 ~ 6만원"},
	{Min: 60001, Max: 70000, Label: "6만원 초과 ~ 7만원"},
	{Min: 70001, Max: 80000, Label: "7만원 초과 ~ 8만원"},
	{Min: 80001, Max: 90000, Label: "8만원 초과 ~ 9만원"},
	{Min: 90001, Max: 99999, Label: "9만원 초과 ~ 10만원 미만"},
	{Min: 100000, Max: math.MaxInt64, Label: "10만원 이상"},
}

func init() {
	if err := validatePriceBands(); err != nil {
		panic(err)
	}
}

// validatePriceBands asserts the table invariants once at startup:
// first band starts at zero, every band follows the previous one with
// no gap or overlap, last band is open-ended.
func validatePriceBands() error {
	if PriceBands[0].Min != 0 {
		return fmt.Errorf("price bands must start at 0, got %d", PriceBands[0].Min)
	}
	for i, b := range PriceBands {
		if b.Max < b.Min {
			return fmt.Errorf("price band %d has max %d below min %d", i, b.Max, b.Min)
		}
		if b.Label == "" {
			return fmt.Errorf("price band %d has no label", i)
		}
		if i > 0 && b.Min != PriceBands[i-1].Max+1 {
			return fmt.Errorf("price bands not contiguous between %d and %d", i-1, i)
		}
	}
	if PriceBands[len(PriceBands)-1].Max != math.MaxInt64 {
		return fmt.Errorf("last price band must be open-ended")
	}
	return nil
}

// ClassifyPrice returns the index of the band containing price. Since
// the table is exhaustive over non-negative prices, the only failure
// is a negative price, which the dataset is never supposed to carry.
func ClassifyPrice(price int64) (int, bool) {
	if price < 0 {
		return 0, false
	}
	for i, b := range PriceBands {
		if price >= b.Min && price <= b.Max {
			return i, true
		}
	}
	return 0, false
}
