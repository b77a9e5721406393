package core

import (
	"testing"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "plain date", input: "2024-07-01", want: NewDate(2024, 7, 1)},
		{name: "rfc3339", input: "2024-07-01T09:30:00Z", want: Date{}},
		{name: "surrounding whitespace", input: "  2024-07-01 ", want: NewDate(2024, 7, 1)},
		{name: "european format rejected", input: "01/07/2024", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) = %v", tt.input, err)
			}
			if !tt.want.IsZero() && !got.Equal(tt.want.Time) {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2024, 7, 15)

	raw, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() = %v", err)
	}
	if string(raw) != `"2024-07-15"` {
		t.Errorf("MarshalJSON() = %s, want %q", raw, `"2024-07-15"`)
	}

	var back Date
	if err := back.UnmarshalJSON(raw); err != nil {
		t.Fatalf("UnmarshalJSON() = %v", err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}

func TestPurchase_Validate(t *testing.T) {
	valid := Purchase{
		ID:         "1001",
		CustomerID: "1",
		ProductID:  "101",
		Quantity:   1,
		Date:       NewDate(2024, 7, 1),
	}

	tests := []struct {
		name    string
		mutate  func(p *Purchase)
		wantErr bool
	}{
		{name: "valid", mutate: func(p *Purchase) {}},
		{name: "zero quantity", mutate: func(p *Purchase) { p.Quantity = 0 }, wantErr: true},
		{name: "negative quantity", mutate: func(p *Purchase) { p.Quantity = -3 }, wantErr: true},
		{name: "empty id", mutate: func(p *Purchase) { p.ID = "" }, wantErr: true},
		{name: "empty customer id", mutate: func(p *Purchase) { p.CustomerID = " " }, wantErr: true},
		{name: "empty product id", mutate: func(p *Purchase) { p.ProductID = "" }, wantErr: true},
		{name: "zero date", mutate: func(p *Purchase) { p.Date = Date{} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestProduct_Validate(t *testing.T) {
	if err := (Product{ID: "101", Name: "무선 이어폰", Price: 18000}).Validate(); err != nil {
		t.Errorf("valid product: %v", err)
	}
	if err := (Product{ID: "101", Name: "무선 이어폰", Price: -1}).Validate(); err != ErrNegativePrice {
		t.Errorf("negative price error = %v, want ErrNegativePrice", err)
	}
}
