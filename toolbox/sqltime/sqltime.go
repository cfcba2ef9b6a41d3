// Package sqltime provides database/sql converters for time values:
// instants stored as epoch milliseconds and calendar dates stored as
// ISO text. They round-trip through any database/sql driver without
// driver-specific time handling.
package sqltime

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// DateLayout is the storage format for Date columns.
const DateLayout = "2006-01-02"

// Time stores an instant as epoch milliseconds in an INTEGER column.
// The zero Time stores 0 (the Unix epoch).
type Time struct {
	time.Time
}

// Value implements driver.Valuer.
func (t Time) Value() (driver.Value, error) {
	return t.UnixMilli(), nil
}

// Scan implements sql.Scanner. It accepts integer epoch milliseconds
// and, for drivers that surface time columns natively, time.Time.
func (t *Time) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case int64:
		t.Time = time.UnixMilli(v).UTC()
		return nil
	case time.Time:
		t.Time = v.UTC()
		return nil
	default:
		return fmt.Errorf("sqltime: cannot scan %T into Time", src)
	}
}

// NullTime is a Time that stores NULL when not Valid.
type NullTime struct {
	Time  time.Time
	Valid bool
}

// Value implements driver.Valuer.
func (t NullTime) Value() (driver.Value, error) {
	if !t.Valid {
		return nil, nil
	}
	return t.Time.UnixMilli(), nil
}

// Scan implements sql.Scanner.
func (t *NullTime) Scan(src any) error {
	if src == nil {
		*t = NullTime{}
		return nil
	}
	var inner Time
	if err := inner.Scan(src); err != nil {
		return err
	}
	*t = NullTime{Time: inner.Time, Valid: true}
	return nil
}

// Date stores a calendar date as "2006-01-02" TEXT, independent of
// time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates an instant to its calendar date in the instant's
// location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// String formats the date in the storage layout.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// In returns the midnight instant of the date in the given location.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner. It accepts the storage layout as string
// or []byte, and time.Time for drivers that parse date columns.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	case time.Time:
		*d = DateOf(v)
		return nil
	default:
		return fmt.Errorf("sqltime: cannot scan %T into Date", src)
	}
}

func (d *Date) parse(s string) error {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("sqltime: parse date %q: %w", s, err)
	}
	*d = DateOf(t)
	return nil
}
