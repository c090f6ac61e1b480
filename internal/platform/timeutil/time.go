package timeutil

import (
	"encoding/json"
	"time"
)

// RFC3339Millis is the layout used for timestamps in response bodies.
const RFC3339Millis = "2006-01-02T15:04:05.000Z"

// RFC3339Micros is the layout used for log timestamps.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

// Time is a time.Time that always marshals as UTC with millisecond precision,
// e.g. "2024-01-15T10:30:00.000Z".
type Time struct {
	time.Time
}

// MarshalJSON writes the value using RFC3339Millis.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(RFC3339Millis) + `"`), nil
}

// UnmarshalJSON accepts any RFC 3339 timestamp. A JSON null leaves the value untouched.
func (t *Time) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// NewTime wraps t.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// Now returns the current time.
func Now() Time {
	return Time{Time: time.Now()}
}
