package journalday

import (
	"testing"
	"time"
)

func TestKeyOf_CutoffBoundary(t *testing.T) {
	// offset 5: 04:59:59 belongs to the previous day, 05:00:00 to the new one
	before := time.Date(2024, 3, 2, 4, 59, 59, 0, time.UTC)
	at := time.Date(2024, 3, 2, 5, 0, 0, 0, time.UTC)

	if got := KeyOf(before, 5, time.UTC); got != "2024-03-01" {
		t.Fatalf("04:59:59 expected 2024-03-01, got %s", got)
	}
	if got := KeyOf(at, 5, time.UTC); got != "2024-03-02" {
		t.Fatalf("05:00:00 expected 2024-03-02, got %s", got)
	}
}

func TestKeyOf_NoonCutoff(t *testing.T) {
	morning := time.Date(2024, 3, 2, 11, 59, 0, 0, time.UTC)
	noon := time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC)

	if got := KeyOf(morning, 12, time.UTC); got != "2024-03-01" {
		t.Fatalf("11:59 under noon cutoff expected 2024-03-01, got %s", got)
	}
	if got := KeyOf(noon, 12, time.UTC); got != "2024-03-02" {
		t.Fatalf("12:00 under noon cutoff expected 2024-03-02, got %s", got)
	}
}

func TestKeyOf_DSTTransitionDays(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// the cutoff reads the local wall clock, so 05:00 opens the new day
	// even when the night was an hour short or an hour long
	cases := []struct {
		name string
		at   time.Time
		want Day
	}{
		{"spring forward at cutoff", time.Date(2024, 3, 10, 5, 0, 0, 0, ny), "2024-03-10"},
		{"spring forward before cutoff", time.Date(2024, 3, 10, 4, 59, 59, 0, ny), "2024-03-09"},
		{"fall back at cutoff", time.Date(2024, 11, 3, 5, 0, 0, 0, ny), "2024-11-03"},
		{"fall back before cutoff", time.Date(2024, 11, 3, 4, 59, 59, 0, ny), "2024-11-02"},
	}
	for _, tc := range cases {
		if got := KeyOf(tc.at, 5, ny); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestKeyOf_Monotonic(t *testing.T) {
	base := time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC)
	prev := KeyOf(base, 5, time.UTC)
	for i := 1; i < 96; i++ {
		cur := KeyOf(base.Add(time.Duration(i)*time.Hour), 5, time.UTC)
		if cur < prev {
			t.Fatalf("day keys went backward: %s then %s", prev, cur)
		}
		prev = cur
	}
}

func TestKeyOf_ZeroOffset(t *testing.T) {
	ts := time.Date(2024, 3, 2, 0, 30, 0, 0, time.UTC)
	if got := KeyOf(ts, 0, time.UTC); got != "2024-03-02" {
		t.Fatalf("zero offset expected 2024-03-02, got %s", got)
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2024-03-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != "2024-03-01" {
		t.Fatalf("expected 2024-03-01, got %s", d)
	}
	if _, err := Parse("2024-3-1"); err == nil {
		t.Fatal("expected error for non canonical input")
	}
	if _, err := Parse("nope"); err == nil {
		t.Fatal("expected error for garbage input")
	}
}

func TestAddDays_AcrossBoundaries(t *testing.T) {
	cases := []struct {
		start Day
		n     int
		want  Day
	}{
		{"2024-03-01", -1, "2024-02-29"}, // leap year
		{"2023-03-01", -1, "2023-02-28"},
		{"2024-12-31", 1, "2025-01-01"},
		{"2024-01-01", -1, "2023-12-31"},
	}
	for _, tc := range cases {
		if got := tc.start.AddDays(tc.n); got != tc.want {
			t.Fatalf("%s + %d days: expected %s, got %s", tc.start, tc.n, tc.want, got)
		}
	}
}

func TestPrevNext_Inverse(t *testing.T) {
	d := Day("2024-02-29")
	if got := d.Prev().Next(); got != d {
		t.Fatalf("Prev then Next expected %s, got %s", d, got)
	}
}

func TestStartOfWeek(t *testing.T) {
	// 2024-03-06 is a Wednesday, its week starts Sunday 2024-03-03
	if got := Day("2024-03-06").StartOfWeek(); got != "2024-03-03" {
		t.Fatalf("expected 2024-03-03, got %s", got)
	}
	// a Sunday is its own week start
	if got := Day("2024-03-03").StartOfWeek(); got != "2024-03-03" {
		t.Fatalf("expected 2024-03-03, got %s", got)
	}
}

func TestKeyOf_Idempotent(t *testing.T) {
	// resolving a day's own midnight-plus-offset instant returns the same day
	d := Day("2024-03-02")
	at := d.Time().Add(5 * time.Hour)
	if got := KeyOf(at, 5, time.UTC); got != d {
		t.Fatalf("expected %s, got %s", d, got)
	}
}
