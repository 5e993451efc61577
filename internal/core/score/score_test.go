package score

import (
	"strings"
	"testing"
)

func TestEntry_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "...", "<p></p>"} {
		if got := Entry(in); got != 0 {
			t.Fatalf("Entry(%q): expected 0, got %d", in, got)
		}
	}
}

func TestEntry_Bounds(t *testing.T) {
	cases := []string{
		"a",
		"ok",
		"went for a run today",
		"Launched v2 at 9am; shipped 14 fixes! Told Maria. Happy.",
		strings.Repeat("antidisestablishmentarianism ", 40),
		"<b>bold</b> and <i>italic</i> markup",
	}
	for _, in := range cases {
		got := Entry(in)
		if got < 0 || got > 10 {
			t.Fatalf("Entry(%q): score %d out of [0,10]", in, got)
		}
	}
}

func TestEntry_Deterministic(t *testing.T) {
	text := "Met Ana at 5pm; great talk. Learned a lot!"
	first := Entry(text)
	for i := 0; i < 10; i++ {
		if got := Entry(text); got != first {
			t.Fatalf("score drifted: %d then %d", first, got)
		}
	}
}

func TestEntry_SingleShortWord(t *testing.T) {
	// one short lowercase word: volume 0.2, lexical 0, uniqueness 2,
	// density 0, specificity 0 -> rounds to 2
	if got := Entry("ok"); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestEntry_RicherTextScoresHigher(t *testing.T) {
	low := Entry("ok ok ok ok ok")
	high := Entry("Debugged the scheduler at 2am; found race in epoll loop. Shipped fix!")
	if high <= low {
		t.Fatalf("expected richer text to outscore repetition: %d vs %d", high, low)
	}
}

func TestEntry_SentenceInitialCapitalIgnored(t *testing.T) {
	// both one-word sentences start with a capital, no digits anywhere,
	// so specificity contributes nothing to either
	a := Entry("Walked. Rested.")
	b := Entry("walked. rested.")
	if a != b {
		t.Fatalf("sentence-initial capitals changed score: %d vs %d", a, b)
	}
}

func TestEntry_DigitTokensCount(t *testing.T) {
	with := Entry("7pm")
	without := Entry("pma")
	if with <= without {
		t.Fatalf("digit tokens should raise specificity: %d vs %d", with, without)
	}
}

func TestContributorShade(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{-1, 0}, {0, 0}, {1, 2}, {2, 5}, {3, 7}, {4, 9}, {5, 10}, {12, 10},
	}
	for _, tc := range cases {
		if got := ContributorShade(tc.n); got != tc.want {
			t.Fatalf("ContributorShade(%d): expected %d, got %d", tc.n, tc.want, got)
		}
	}
}
