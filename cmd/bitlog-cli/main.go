// Command bitlog-cli renders read-only journal views in the terminal
// Transport failures come back as empty views, never as a crash
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"bitlog/internal/adapters/client"
	journal "bitlog/internal/services/journal/domain"
)

// one rune per score level 0..10
var shadeRunes = []rune(" .:-=+*#%@█")

func main() {
	var (
		addr = flag.String("addr", "http://localhost:4000/api/v1", "API base URL")
		user = flag.String("user", "", "user name for timeline and heatmap views")
		view = flag.String("view", "timeline", "one of timeline heatmap streaks")
	)
	flag.Parse()

	c := client.New(client.Options{BaseURL: *addr, Cache: client.NewMemCache()})
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	switch *view {
	case "timeline":
		if *user == "" {
			fail("timeline view needs -user")
		}
		tl, _ := c.FetchTimeline(ctx, *user)
		renderTimeline(tl)
	case "heatmap":
		var hm journal.Heatmap
		if *user == "" {
			hm, _ = c.FetchGlobalHeatmap(ctx)
		} else {
			hm, _ = c.FetchHeatmap(ctx, *user)
		}
		renderHeatmap(hm)
	case "streaks":
		st, _ := c.FetchStreaks(ctx)
		renderStreaks(st)
	default:
		fail("unknown view %q", *view)
	}
}

func fail(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(2)
}

func renderTimeline(tl journal.Timeline) {
	if len(tl.Days) == 0 {
		fmt.Println("no entries")
		return
	}
	for _, d := range tl.Days {
		fmt.Printf("%s  [%2d/10, %d words]  %s\n", d.Day, d.Score, d.Words, d.Text)
	}
}

func renderHeatmap(hm journal.Heatmap) {
	if len(hm.Columns) == 0 {
		fmt.Println("no activity")
		return
	}
	width := 0
	for _, col := range hm.Columns {
		if col.Index >= width {
			width = col.Index + 1
		}
	}

	labels := make([]rune, width)
	for i := range labels {
		labels[i] = ' '
	}
	rows := make([][]rune, 7)
	for r := range rows {
		rows[r] = make([]rune, width)
		for i := range rows[r] {
			rows[r][i] = ' '
		}
	}
	for _, col := range hm.Columns {
		if col.Label != "" {
			for i, ch := range col.Label {
				if col.Index+i < width {
					labels[col.Index+i] = ch
				}
			}
		}
		for _, cell := range col.Cells {
			rows[cell.Row][col.Index] = shade(cell.Score)
		}
	}

	fmt.Println(string(labels))
	for _, row := range rows {
		fmt.Println(string(row))
	}
	fmt.Printf("today: %s\n", hm.Today)
}

func shade(score int) rune {
	if score < 0 {
		score = 0
	}
	if score >= len(shadeRunes) {
		score = len(shadeRunes) - 1
	}
	return shadeRunes[score]
}

func renderStreaks(st journal.Streaks) {
	if len(st.Streaks) == 0 {
		fmt.Println("no current streaks")
		return
	}
	for _, s := range st.Streaks {
		unit := "days"
		if s.Length == 1 {
			unit = "day"
		}
		fmt.Printf("%-24s %d %s\n", s.User, s.Length, unit)
	}
}
