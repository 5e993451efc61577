// Package domain holds DTOs for entries http and service contracts
package domain

// Entry is one stored journal line on the wire
// ts is epoch seconds UTC
type Entry struct {
	TS   int64  `json:"ts" example:"1760755200"`
	Text string `json:"text" example:"shipped the release"`
}

// RecentEntry is an Entry with its author, used by the shared feed
type RecentEntry struct {
	User string `json:"user" example:"ana"`
	TS   int64  `json:"ts" example:"1760755200"`
	Text string `json:"text" example:"shipped the release"`
}
