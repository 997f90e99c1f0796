package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const Layout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// Clock is replaced in tests.
var Clock = time.Now

// Now returns the current instant in UTC.
func Now() time.Time {
	return Clock().UTC()
}

// Today returns UTC midnight of the current day.
func Today() time.Time {
	return Day(Now())
}

// Day truncates t to UTC midnight.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Parse accepts YYYY-MM-DD or an RFC3339 timestamp and returns UTC midnight.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(Layout, s, time.UTC); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Day(t), nil
	}
	return time.Time{}, fmt.Errorf("%w %q, expected YYYY-MM-DD", ErrInvalidDate, s)
}

// ParseOptional returns nil for an empty string.
func ParseOptional(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}
