package temporal

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ParseUTC parses a timestamp literal that must be unambiguous UTC: an
// RFC 3339 date-time with a 'T' separator and an explicit UTC marker
// ("Z" or "+00:00"). A syntactically valid date-time carrying any other
// offset, or none, is rejected.
func ParseUTC(s string) (time.Time, error) {
	if !strings.Contains(s, "T") {
		return time.Time{}, errors.New("missing date/time separator")
	}
	if !strings.HasSuffix(s, "Z") && !strings.HasSuffix(s, "+00:00") {
		return time.Time{}, errors.New("missing UTC marker")
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("not a valid RFC 3339 date-time: %w", err)
	}
	return t.UTC(), nil
}

// DelayMinutes returns the signed difference actual − expected in whole
// minutes, rounded to the nearest integer. Positive means later than
// expected. The second return is false when either literal is absent or
// does not parse as unambiguous UTC.
func DelayMinutes(actual, expected string) (int, bool) {
	if actual == "" || expected == "" {
		return 0, false
	}
	at, err := ParseUTC(actual)
	if err != nil {
		return 0, false
	}
	et, err := ParseUTC(expected)
	if err != nil {
		return 0, false
	}
	return int(math.Round(at.Sub(et).Minutes())), true
}

// GapHours returns the signed difference later − earlier in hours.
// Callers compare the result against a threshold magnitude.
func GapHours(earlier, later time.Time) float64 {
	return later.Sub(earlier).Hours()
}
