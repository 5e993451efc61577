// Package bucket collapses raw entries into one winning entry per user per day
// Recency wins: for a given (user, day) slot the entry with the greatest
// timestamp is kept, ties falling to the last seen in input order. Entries
// with unparseable timestamps are dropped, they cannot be placed on a day.
package bucket

import (
	"sort"
	"time"

	"bitlog/internal/core/instant"
	"bitlog/internal/core/journalday"
)

// Raw is an entry as received from the store, ts in any accepted shape
type Raw struct {
	User string
	Text string
	TS   any
}

// Key addresses one user day slot
type Key struct {
	User string
	Day  journalday.Day
}

// Bucket is the winning entry for a slot
type Bucket struct {
	User string
	Day  journalday.Day
	Text string
	TS   time.Time
}

// Aggregate reduces raws to winners keyed by (user, day)
// recomputed from scratch every call, idempotent over its own output
func Aggregate(raws []Raw, offsetHours int, loc *time.Location) map[Key]Bucket {
	out := make(map[Key]Bucket, len(raws))
	for _, raw := range raws {
		ts, err := instant.Parse(raw.TS)
		if err != nil {
			continue
		}
		k := Key{User: raw.User, Day: journalday.KeyOf(ts, offsetHours, loc)}
		if prev, ok := out[k]; ok && ts.Before(prev.TS) {
			continue
		}
		out[k] = Bucket{User: raw.User, Day: k.Day, Text: raw.Text, TS: ts}
	}
	return out
}

// ByUser regroups winners per user for per-user consumers
func ByUser(buckets map[Key]Bucket) map[string]map[journalday.Day]Bucket {
	out := make(map[string]map[journalday.Day]Bucket)
	for k, b := range buckets {
		days := out[k.User]
		if days == nil {
			days = make(map[journalday.Day]Bucket)
			out[k.User] = days
		}
		days[k.Day] = b
	}
	return out
}

// DaySets projects winners down to the day sets the streak walk needs
func DaySets(buckets map[Key]Bucket) map[string]map[journalday.Day]struct{} {
	out := make(map[string]map[journalday.Day]struct{})
	for k := range buckets {
		days := out[k.User]
		if days == nil {
			days = make(map[journalday.Day]struct{})
			out[k.User] = days
		}
		days[k.Day] = struct{}{}
	}
	return out
}

// ContributorCounts counts distinct users holding a bucket on each day
func ContributorCounts(buckets map[Key]Bucket) map[journalday.Day]int {
	out := make(map[journalday.Day]int)
	for k := range buckets {
		out[k.Day]++
	}
	return out
}

// Sorted returns the winners ordered by day then user for stable output
func Sorted(buckets map[Key]Bucket) []Bucket {
	out := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].User < out[j].User
	})
	return out
}
