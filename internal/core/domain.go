package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// Date is a calendar date. It marshals as YYYY-MM-DD and accepts
	// both plain dates and RFC 3339 timestamps when parsed, since
	// upstream datasets mix the two.
	Date struct {
		time.Time
	}

	Customer struct {
		ID   string `json:"id" db:"id"`
		Name string `json:"name" db:"name"`
	}

	Product struct {
		ID        string `json:"id" db:"id"`
		Name      string `json:"name" db:"name"`
		Price     int64  `json:"price" db:"price"` // whole won, never fractional
		Thumbnail string `json:"thumbnail" db:"thumbnail"`
	}

	Purchase struct {
		ID         string `json:"id" db:"id"`
		CustomerID string `json:"customerId" db:"customer_id"`
		ProductID  string `json:"productId" db:"product_id"`
		Quantity   int64  `json:"quantity" db:"quantity"`
		Date       Date   `json:"date" db:"purchase_date"`
	}
)

var (
	ErrEmptyID         = errors.New("empty id")
	ErrEmptyName       = errors.New("empty name")
	ErrNegativePrice   = errors.New("negative price")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

const dateLayout = "2006-01-02"

// ParseDate parses a calendar date in YYYY-MM-DD or RFC 3339 form.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return Date{Time: t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// NewDate creates a Date from year, month, day in UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (c Customer) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

func (p Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

func (p Purchase) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(p.CustomerID) == "" {
		return errors.New("empty customer id")
	}
	if strings.TrimSpace(p.ProductID) == "" {
		return errors.New("empty product id")
	}
	if p.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if p.Date.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}
