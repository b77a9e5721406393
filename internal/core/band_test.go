package core

import "testing"

func TestClassifyPrice_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		price int64
		want  int
	}{
		{name: "zero falls in first band", price: 0, want: 0},
		{name: "upper edge of first band", price: 20000, want: 0},
		{name: "lower edge of second band", price: 20001, want: 1},
		{name: "upper edge of second band", price: 30000, want: 1},
		{name: "middle band", price: 65000, want: 6},
		{name: "upper edge of ninth band", price: 99999, want: 8},
		{name: "lower edge of open band", price: 100000, want: 9},
		{name: "far above all thresholds", price: 98765432, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassifyPrice(tt.price)
			if !ok {
				t.Fatalf("ClassifyPrice(%d) not ok", tt.price)
			}
			if got != tt.want {
				t.Errorf("ClassifyPrice(%d) = %d, want %d", tt.price, got, tt.want)
			}
		})
	}
}

func TestClassifyPrice_NegativeIsRejected(t *testing.T) {
	if _, ok := ClassifyPrice(-1); ok {
		t.Error("ClassifyPrice(-1) should not classify")
	}
}

func TestPriceBands_TableInvariants(t *testing.T) {
	if err := validatePriceBands(); err != nil {
		t.Fatalf("validatePriceBands() = %v", err)
	}

	if len(PriceBands) != 10 {
		t.Fatalf("PriceBands has %d entries, want 10", len(PriceBands))
	}

	if PriceBands[0].Label != "2만원 이하" {
		t.Errorf("first band label = %q", PriceBands[0].Label)
	}
	if PriceBands[9].Label != "10만원 이상" {
		t.Errorf("last band label = %q", PriceBands[9].Label)
	}

	// Every band starts right after the previous one ends.
	for i := 1; i < len(PriceBands); i++ {
		if PriceBands[i].Min != PriceBands[i-1].Max+1 {
			t.Errorf("band %d min = %d, want %d", i, PriceBands[i].Min, PriceBands[i-1].Max+1)
		}
	}
}
