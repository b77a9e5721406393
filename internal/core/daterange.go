package core

import "strings"

// DateRange is a closed date interval; both endpoints are inclusive.
type DateRange struct {
	From Date
	To   Date
}

// ParseDateRange validates the optional from/to query parameters.
// Both absent means no filter and returns a nil range. Exactly one
// present, an unparseable value, or from after to fail validation.
func ParseDateRange(from, to string) (*DateRange, error) {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)

	if (from == "") != (to == "") {
		return nil, &ValidationError{Reason: "both from and to must be provided"}
	}
	if from == "" {
		return nil, nil
	}

	f, err := ParseDate(from)
	if err != nil {
		return nil, &ValidationError{Reason: "invalid date format, dates must be in ISO 8601 format"}
	}
	t, err := ParseDate(to)
	if err != nil {
		return nil, &ValidationError{Reason: "invalid date format, dates must be in ISO 8601 format"}
	}
	if f.After(t.Time) {
		return nil, &ValidationError{Reason: "from date must be before to date"}
	}

	return &DateRange{From: f, To: t}, nil
}

// Contains reports whether d falls inside the interval, endpoints
// included. A nil range matches everything.
func (r *DateRange) Contains(d Date) bool {
	if r == nil {
		return true
	}
	return !d.Before(r.From.Time) && !d.After(r.To.Time)
}
