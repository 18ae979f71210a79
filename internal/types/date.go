package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the wire format for calendar dates (dd-MM-yyyy)
	DateLayout = "02-01-2006"
	// ISODateLayout is the storage format and an accepted input format
	ISODateLayout = "2006-01-02"
)

// Date is a calendar date without a time-of-day or zone.
// The zero value means "no date set".
type Date struct {
	t time.Time
}

// NewDate builds a date from its calendar components
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its calendar date in UTC
func DateOf(instant time.Time) Date {
	u := instant.UTC()
	return NewDate(u.Year(), u.Month(), u.Day())
}

// ParseDate accepts dd-MM-yyyy and yyyy-MM-dd
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{DateLayout, ISODateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{t: t}, nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q: expected dd-MM-yyyy", s)
}

// IsZero reports whether the date is unset
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

const secondsPerDay = 24 * 60 * 60

// Time returns midnight UTC of the date
func (d Date) Time() time.Time {
	return d.t
}

// DaysUntil returns the number of calendar days from d to other (negative if other is earlier)
func (d Date) DaysUntil(other Date) int {
	// both are UTC midnight; time.Duration would overflow past ~292 years
	return int((other.t.Unix() - d.t.Unix()) / secondsPerDay)
}

// AddDays returns the date n days after d
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Equal reports whether both dates denote the same calendar day
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// String returns the ISO form used for storage and logs
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(ISODateLayout)
}

// MarshalJSON renders the date as dd-MM-yyyy, or null when unset
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.t.Format(DateLayout))
}

// UnmarshalJSON parses dd-MM-yyyy or yyyy-MM-dd
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan implements sql.Scanner
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	case time.Time:
		*d = DateOf(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}
