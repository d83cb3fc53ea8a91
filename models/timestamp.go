package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// naiveLayout is the wire format used by the frontend: ISO-8601 without a
// timezone offset.
const naiveLayout = "2006-01-02T15:04:05"

// Timestamp is a time.Time that marshals as a naive ISO-8601 string and
// accepts both naive and RFC3339 input.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps a time.Time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// MarshalJSON renders the timestamp without a timezone offset.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(naiveLayout) + `"`), nil
}

// UnmarshalJSON accepts naive ISO-8601 as well as RFC3339 strings.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := time.Parse(naiveLayout, s)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, s)
	}
	if err != nil {
		return fmt.Errorf("cannot parse %q as timestamp: %w", s, err)
	}
	t.Time = parsed
	return nil
}

// Value implements driver.Valuer so GORM can persist the column.
func (t Timestamp) Value() (driver.Value, error) {
	return t.Time, nil
}

// Scan implements sql.Scanner.
func (t *Timestamp) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		t.Time = time.Time{}
	case time.Time:
		t.Time = v
	case []byte:
		parsed, err := time.Parse("2006-01-02 15:04:05", string(v))
		if err != nil {
			return err
		}
		t.Time = parsed
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", value)
	}
	return nil
}
