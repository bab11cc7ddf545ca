package suggest

import (
	"regexp"
	"strings"
)

// Recommendation markers, tried in order. Case-insensitive, colon optional.
// The capture stops at the first sentence terminator or newline.
var markerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)I recommend:?\s*([^.!?\n]+)`),
	regexp.MustCompile(`(?i)suggest(?:ion)?:?\s*([^.!?\n]+)`),
	regexp.MustCompile(`(?i)try:?\s*([^.!?\n]+)`),
	regexp.MustCompile(`(?i)consider:?\s*([^.!?\n]+)`),
}

var artifactReplacer = strings.NewReplacer(`"`, "", "'", "", "`", "", "**", "")

// ExtractHabit scans free-text advice for a recommendation marker and
// returns the habit name it introduces, stripped of quote and markdown
// artifacts and cut at the first sentence terminator. The second return is
// false when no marker matches, meaning there is no extractable habit and no
// "add habit" affordance should be offered.
func ExtractHabit(message string) (string, bool) {
	for _, pattern := range markerPatterns {
		match := pattern.FindStringSubmatch(message)
		if match == nil {
			continue
		}
		habit := strings.TrimSpace(match[1])
		habit = artifactReplacer.Replace(habit)
		// Artifacts removed after the capture may have exposed a terminator.
		if i := strings.IndexAny(habit, ".!?"); i >= 0 {
			habit = habit[:i]
		}
		habit = strings.TrimSpace(habit)
		if habit != "" {
			return habit, true
		}
	}
	return "", false
}
