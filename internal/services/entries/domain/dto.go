package domain

// SubmitInput is the create-or-update payload
// ts accepts epoch seconds, a numeric string, or ISO-8601; empty means now
type SubmitInput struct {
	Name     string `json:"name" validate:"required,max=64" example:"ana"`
	Password string `json:"password,omitempty" example:"hunter2"`
	Text     string `json:"text" validate:"required" example:"ran 5k before work"`
	TS       any    `json:"ts,omitempty" swaggertype:"primitive,number" example:"1760755200"`
}

// SubmitResult reports the stored timestamp and whether a same-day entry existed
type SubmitResult struct {
	OK          bool  `json:"ok" example:"true"`
	Overwritten bool  `json:"overwritten" example:"false"`
	TS          int64 `json:"ts" example:"1760755200"`
}

// UserEntries is a user's full ascending history
type UserEntries struct {
	Name    string  `json:"name" example:"ana"`
	Entries []Entry `json:"entries"`
}

// CalendarEntries is the raw material for client-side day bucketing
type CalendarEntries struct {
	Entries []Entry `json:"entries"`
}

// RecentFeed is the shared reverse-chronological feed
type RecentFeed struct {
	Entries []RecentEntry `json:"entries"`
}

// Users lists known user names sorted case-insensitively
type Users struct {
	Users []string `json:"users"`
}
