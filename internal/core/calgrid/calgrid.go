// Package calgrid lays out the month-aware activity grid
// The window ends at the journal day of now and spans a fixed number of
// weeks. Weeks run Sunday to Saturday down a column; a week straddling a
// month boundary splits into adjacent columns, one per month, each cell
// keeping its weekday row. A spacer separates columns of different months
// and the first column of every month group carries the month's short name.
package calgrid

import (
	"time"

	"bitlog/internal/core/journalday"
)

// DefaultWeeks is the standard visible window length
const DefaultWeeks = 53

// Cell places one day at its weekday row
type Cell struct {
	Day journalday.Day `json:"date"`
	Row int            `json:"row"`
}

// Column is a vertical group of same-week same-month cells
type Column struct {
	Index       int        `json:"index"`
	Month       time.Month `json:"-"`
	Label       string     `json:"label,omitempty"`
	SpacerAfter bool       `json:"spacer_after,omitempty"`
	Cells       []Cell     `json:"cells"`
}

// Grid is the full layout plus the anchoring day
type Grid struct {
	Today   journalday.Day `json:"today"`
	Columns []Column       `json:"columns"`
}

// Build derives the grid purely from now, weeks, and the cutoff policy
func Build(now time.Time, weeks int, offsetHours int, loc *time.Location) Grid {
	if weeks <= 0 {
		weeks = DefaultWeeks
	}
	today := journalday.KeyOf(now, offsetHours, loc)
	first := today.StartOfWeek().AddDays(-7 * (weeks - 1))

	var columns []Column
	day := first
	for w := 0; w < weeks; w++ {
		var col *Column
		for row := 0; row < 7; row++ {
			m := day.Month()
			if col == nil || col.Month != m {
				if col != nil {
					columns = append(columns, *col)
				}
				col = &Column{Month: m}
			}
			col.Cells = append(col.Cells, Cell{Day: day, Row: row})
			day = day.Next()
		}
		columns = append(columns, *col)
	}

	// index, spacers, and labels in one pass over the finished groups
	lastMonth := time.Month(0)
	lastYear := 0
	idx := 0
	for i := range columns {
		col := &columns[i]
		newGroup := col.Month != lastMonth || col.Cells[0].Day.Year() != lastYear
		if i > 0 && newGroup {
			columns[i-1].SpacerAfter = true
			idx++ // the spacer consumes a column index
		}
		col.Index = idx
		idx++
		if newGroup {
			col.Label = col.Month.String()[:3]
		}
		lastMonth = col.Month
		lastYear = col.Cells[0].Day.Year()
	}

	return Grid{Today: today, Columns: columns}
}

// Days enumerates every cell day in column order
func (g Grid) Days() []journalday.Day {
	var out []journalday.Day
	for _, col := range g.Columns {
		for _, c := range col.Cells {
			out = append(out, c.Day)
		}
	}
	return out
}
