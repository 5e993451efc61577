// Package domain holds DTOs for journal http and service contracts
package domain

// TimelineDay is one resolved journal day with its winning entry
type TimelineDay struct {
	Day   string `json:"day" example:"2026-08-29"`
	TS    int64  `json:"ts" example:"1787000000"`
	Text  string `json:"text" example:"ran 5k before work"`
	Words int    `json:"words" example:"4"`
	Score int    `json:"score" example:"6"`
}

// Timeline is a user's aggregated history, newest day first
type Timeline struct {
	Name  string        `json:"name" example:"ana"`
	Today string        `json:"today" example:"2026-08-30"`
	Days  []TimelineDay `json:"days"`
}

// HeatCell is one grid cell with its shade
// Count carries the raw contributor tally on the global grid and stays
// zero on per-user grids
type HeatCell struct {
	Date  string `json:"date" example:"2026-08-29"`
	Row   int    `json:"row" example:"3"`
	Score int    `json:"score" example:"6"`
	Count int    `json:"count,omitempty" example:"3"`
}

// HeatColumn groups same-week same-month cells
type HeatColumn struct {
	Index       int        `json:"index"`
	Label       string     `json:"label,omitempty" example:"Feb"`
	SpacerAfter bool       `json:"spacer_after,omitempty"`
	Cells       []HeatCell `json:"cells"`
}

// Heatmap is a full shaded grid
type Heatmap struct {
	Name    string       `json:"name,omitempty" example:"ana"`
	Today   string       `json:"today" example:"2026-08-30"`
	Columns []HeatColumn `json:"columns"`
}

// UserStreak is one user's current run
type UserStreak struct {
	User   string `json:"user" example:"ana"`
	Length int    `json:"length" example:"12"`
}

// Streaks lists positive runs, longest first
type Streaks struct {
	Today   string       `json:"today" example:"2026-08-30"`
	Streaks []UserStreak `json:"streaks"`
}
