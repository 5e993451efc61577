// Package streak derives consecutive-day counts per user
// The walk anchors at today, or yesterday when today has no entry yet, so a
// user keeps yesterday's streak until the day rolls over without a post.
package streak

import (
	"sort"

	"bitlog/internal/core/journalday"
)

// Streak is one user's current run length
type Streak struct {
	User   string `json:"user"`
	Length int    `json:"length"`
}

// Of walks backward from today through the user's day set
func Of(days map[journalday.Day]struct{}, today journalday.Day) int {
	cursor := today
	if _, ok := days[cursor]; !ok {
		cursor = cursor.Prev()
		if _, ok := days[cursor]; !ok {
			return 0
		}
	}
	length := 0
	for {
		if _, ok := days[cursor]; !ok {
			return length
		}
		length++
		cursor = cursor.Prev()
	}
}

// Compute returns positive streaks sorted descending by length
// users at zero are omitted, ties break on user name for stable output
func Compute(daysByUser map[string]map[journalday.Day]struct{}, today journalday.Day) []Streak {
	out := make([]Streak, 0, len(daysByUser))
	for user, days := range daysByUser {
		if n := Of(days, today); n > 0 {
			out = append(out, Streak{User: user, Length: n})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Length != out[j].Length {
			return out[i].Length > out[j].Length
		}
		return out[i].User < out[j].User
	})
	return out
}
