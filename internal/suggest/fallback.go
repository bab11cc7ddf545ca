package suggest

import "strings"

// fallbackEntry maps question keywords to a canned recommendation. Entries
// are checked in order; the first keyword hit wins.
type fallbackEntry struct {
	keywords []string
	response string
}

var fallbackTable = []fallbackEntry{
	{
		keywords: []string{"morning"},
		response: "I recommend: 10-minute morning stretching routine. Start your day by syncing with your body's natural wake-up rhythm!",
	},
	{
		keywords: []string{"sleep", "bedtime"},
		response: "I recommend: No screens 30 minutes before bed. This helps regulate your circadian rhythm for better sleep quality.",
	},
	{
		keywords: []string{"energy", "focus"},
		response: "I recommend: Take a 5-minute walk every 2 hours. Movement aligns with your body's natural energy cycles.",
	},
	{
		keywords: []string{"stress", "relax", "anxiety"},
		response: "I recommend: 5 minutes of deep breathing daily. This helps balance your nervous system's bio rhythm.",
	},
	{
		keywords: []string{"hydration", "water"},
		response: "I recommend: Drink a glass of water upon waking and before meals to maintain metabolic balance.",
	},
	{
		keywords: []string{"exercise", "workout"},
		response: "I recommend: Schedule your workouts according to your peak energy times. Morning cardio or evening strength training works well!",
	},
	{
		keywords: []string{"meal", "food", "nutrition"},
		response: "I recommend: Eat small balanced meals every 3-4 hours to keep your energy levels stable throughout the day.",
	},
	{
		keywords: []string{"mood", "happy", "sad"},
		response: "I recommend: Take 5 minutes for mindful journaling or gratitude practice to align emotional rhythms.",
	},
	{
		keywords: []string{"meditation", "mindfulness"},
		response: "I recommend: 10 minutes of meditation or mindfulness exercises daily to stabilize your mental and emotional rhythm.",
	},
	{
		keywords: []string{"sunlight", "daylight"},
		response: "I recommend: Get at least 15 minutes of sunlight in the morning to regulate your circadian rhythm naturally.",
	},
}

const fallbackDefault = "I recommend: Drink a glass of water upon waking. Hydration kickstarts your metabolic rhythm."

// Fallback returns a canned recommendation keyed by simple keyword matching
// on the user's question. Used whenever the AI collaborator fails or times
// out, so a degraded network never surfaces as an error.
func Fallback(question string) string {
	lower := strings.ToLower(question)
	for _, entry := range fallbackTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.response
			}
		}
	}
	return fallbackDefault
}
