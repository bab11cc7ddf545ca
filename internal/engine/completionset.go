// Package engine contains the pure habit-derivation logic: completion sets,
// streak computation, calendar and trend aggregation, and goal resolution.
// Everything here is synchronous and side-effect-free over in-memory data;
// persistence and AI calls live behind interfaces elsewhere.
package engine

import (
	"sort"

	"github.com/mmynk/pulse/internal/datekey"
)

// CompletionSet is the set of day keys on which a habit was completed.
// The zero value is not usable; construct with NewCompletionSet or FromDates.
type CompletionSet struct {
	days map[string]struct{}
}

// NewCompletionSet returns an empty set.
func NewCompletionSet() CompletionSet {
	return CompletionSet{days: make(map[string]struct{})}
}

// FromDates builds a set from raw day keys, collapsing duplicates and
// dropping anything that is not a canonical key. Input order is irrelevant.
func FromDates(dates []string) CompletionSet {
	s := NewCompletionSet()
	for _, d := range dates {
		if datekey.Valid(d) {
			s.days[d] = struct{}{}
		}
	}
	return s
}

// Contains reports whether the habit was completed on the given day.
func (s CompletionSet) Contains(key string) bool {
	_, ok := s.days[key]
	return ok
}

// Len returns the number of completed days.
func (s CompletionSet) Len() int {
	return len(s.days)
}

// Keys returns the completed days sorted ascending.
func (s CompletionSet) Keys() []string {
	keys := make([]string, 0, len(s.days))
	for d := range s.days {
		keys = append(keys, d)
	}
	sort.Strings(keys)
	return keys
}

// Add returns a new set that also contains key. Adding a present key is a
// no-op copy.
func (s CompletionSet) Add(key string) CompletionSet {
	out := s.clone()
	out.days[key] = struct{}{}
	return out
}

// Remove returns a new set without key. Removing an absent key is a no-op
// copy.
func (s CompletionSet) Remove(key string) CompletionSet {
	out := s.clone()
	delete(out.days, key)
	return out
}

// Toggle returns a new set with key flipped: removed if present, added if
// absent. Toggle is its own inverse.
func (s CompletionSet) Toggle(key string) CompletionSet {
	if s.Contains(key) {
		return s.Remove(key)
	}
	return s.Add(key)
}

// Equal reports whether both sets contain exactly the same days.
func (s CompletionSet) Equal(other CompletionSet) bool {
	if len(s.days) != len(other.days) {
		return false
	}
	for d := range s.days {
		if _, ok := other.days[d]; !ok {
			return false
		}
	}
	return true
}

func (s CompletionSet) clone() CompletionSet {
	out := CompletionSet{days: make(map[string]struct{}, len(s.days)+1)}
	for d := range s.days {
		out.days[d] = struct{}{}
	}
	return out
}
