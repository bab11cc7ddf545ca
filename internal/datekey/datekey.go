// Package datekey canonicalizes instants into local calendar-day keys.
//
// A key is a "YYYY-MM-DD" string naming one civil day in the caller's local
// timezone. Keys are the atomic unit of completion tracking: every comparison,
// storage value, and aggregation routes through this package. Formatting a
// day anywhere else risks the UTC/local-day class of bugs where a habit
// completed late at night lands on the wrong day for users west of UTC.
package datekey

import (
	"fmt"
	"time"
)

// Layout is the canonical key format. Lexicographic order on keys matches
// chronological order on days.
const Layout = "2006-01-02"

// FromTime returns the key for the civil day containing t, in t's location.
// Time of day is discarded before formatting.
func FromTime(t time.Time) string {
	y, m, d := t.Date()
	return FromDate(y, m, d)
}

// FromDate returns the key for the given calendar day.
func FromDate(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// Valid reports whether s is a well-formed canonical key.
func Valid(s string) bool {
	t, err := time.Parse(Layout, s)
	return err == nil && t.Format(Layout) == s
}

// MustParse converts a key back to a midnight time.Time in UTC.
// A malformed key indicates a canonicalization bug upstream, so it panics
// rather than returning an error.
func MustParse(key string) time.Time {
	t, err := time.Parse(Layout, key)
	if err != nil {
		panic(fmt.Sprintf("datekey: malformed key %q: %v", key, err))
	}
	return t
}

// AddDays returns the key n civil days after key (n may be negative).
func AddDays(key string, n int) string {
	return MustParse(key).AddDate(0, 0, n).Format(Layout)
}

// WeekStart returns the key of the most recent Monday on or before the civil
// day containing t. If t falls on a Sunday, that Monday is six days prior.
func WeekStart(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	y, m, d := t.Date()
	monday := time.Date(y, m, d, 0, 0, 0, 0, t.Location()).AddDate(0, 0, -offset)
	return FromTime(monday)
}

// Weekday returns the Monday-based weekday index (Monday=0 .. Sunday=6) of key.
func Weekday(key string) int {
	return (int(MustParse(key).Weekday()) + 6) % 7
}
