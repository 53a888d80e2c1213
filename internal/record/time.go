package record

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

// Time is a required timestamp carried as integer Unix seconds on the wire
// and as timestamptz in the store. Sub-second precision is truncated.
type Time struct {
	time.Time
}

// NewTime truncates t to whole seconds in UTC.
func NewTime(t time.Time) Time {
	return Time{t.UTC().Truncate(time.Second)}
}

// MarshalJSON renders the timestamp as Unix seconds.
func (t Time) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, t.Unix(), 10), nil
}

// UnmarshalJSON interprets an integer as whole seconds since the epoch.
func (t *Time) UnmarshalJSON(data []byte) error {
	sec, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("timestamp must be unix seconds: %w", err)
	}
	t.Time = time.Unix(sec, 0).UTC()
	return nil
}

// Value implements driver.Valuer.
func (t Time) Value() (driver.Value, error) {
	return t.UTC(), nil
}

// Scan implements sql.Scanner.
func (t *Time) Scan(src any) error {
	v, ok := src.(time.Time)
	if !ok {
		return fmt.Errorf("cannot scan %T into record.Time", src)
	}
	t.Time = v.UTC()
	return nil
}

// NullTime is an optional timestamp. Absent values render as JSON null,
// never as zero.
type NullTime struct {
	Time  time.Time
	Valid bool
}

// MarshalJSON renders Unix seconds or null.
func (t NullTime) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, t.Time.Unix(), 10), nil
}

// UnmarshalJSON accepts null or an integer of Unix seconds.
func (t *NullTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		t.Time, t.Valid = time.Time{}, false
		return nil
	}
	sec, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("timestamp must be unix seconds or null: %w", err)
	}
	t.Time, t.Valid = time.Unix(sec, 0).UTC(), true
	return nil
}

// Value implements driver.Valuer.
func (t NullTime) Value() (driver.Value, error) {
	if !t.Valid {
		return nil, nil
	}
	return t.Time.UTC(), nil
}

// Scan implements sql.Scanner.
func (t *NullTime) Scan(src any) error {
	if src == nil {
		t.Time, t.Valid = time.Time{}, false
		return nil
	}
	v, ok := src.(time.Time)
	if !ok {
		return fmt.Errorf("cannot scan %T into record.NullTime", src)
	}
	t.Time, t.Valid = v.UTC(), true
	return nil
}
