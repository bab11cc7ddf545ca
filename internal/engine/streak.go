package engine

import (
	"time"

	"github.com/mmynk/pulse/internal/datekey"
)

// CurrentStreak computes the habit's current streak from its full completion
// set and the current instant.
//
// Algorithm:
//  1. An empty set has streak 0.
//  2. The anchor day is today if completed, else yesterday if completed,
//     else the streak is broken and the result is 0. Anchoring at yesterday
//     keeps a live streak displayed before the user checks off today.
//  3. Walk backward one civil day at a time from the anchor, counting
//     consecutive completed days including the anchor itself.
//
// The streak must always be recomputed from the full set. Incremental
// adjustments (+1 on add, -1 on remove) silently diverge whenever a
// non-trailing day is toggled, e.g. removing yesterday while today stays
// checked.
func CurrentStreak(set CompletionSet, now time.Time) int {
	if set.Len() == 0 {
		return 0
	}

	today := datekey.FromTime(now)
	anchor := today
	if !set.Contains(anchor) {
		anchor = datekey.AddDays(today, -1)
		if !set.Contains(anchor) {
			return 0
		}
	}

	streak := 0
	for day := anchor; set.Contains(day); day = datekey.AddDays(day, -1) {
		streak++
	}
	return streak
}
