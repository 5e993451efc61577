// Package score derives heatmap intensities from entry text
// Two scales share the visual encoding but stay separate functions:
// Entry shades a single user's day by text features, ContributorShade
// shades the shared view by distinct contributor count.
package score

import (
	"math"
	"unicode"

	"bitlog/internal/core/wordtok"
)

const (
	volumeCap      = 2.0
	lexicalCap     = 2.5
	uniquenessCap  = 2.0
	densityCap     = 2.0
	specificityCap = 1.5
	maxScore       = 10
)

// Entry scores text on a 0..10 scale
// pure: identical text always yields the identical score
func Entry(text string) int {
	plain := wordtok.StripMarkup(text)
	tokens := wordtok.Words(plain)
	if len(tokens) == 0 {
		return 0
	}
	wc := float64(len(tokens))

	volume := math.Min(wc/5, volumeCap)

	var runeTotal int
	for _, tok := range tokens {
		runeTotal += len([]rune(tok))
	}
	avgLen := float64(runeTotal) / wc
	lexical := math.Min(math.Max((avgLen-3)/2, 0), lexicalCap)

	uniqueness := float64(wordtok.DistinctFold(tokens)) / wc * uniquenessCap

	sentences := wordtok.Sentences(plain)
	density := math.Min(math.Max((float64(len(sentences))-1)/3, 0), densityCap)

	specificity := math.Min(float64(specificCount(sentences))*0.3, specificityCap)

	total := math.Round(volume + lexical + uniqueness + density + specificity)
	if total > maxScore {
		return maxScore
	}
	if total < 0 {
		return 0
	}
	return int(total)
}

// specificCount counts tokens carrying a digit, or a non sentence-initial
// uppercase start. Sentence-initial capitals are ordinary prose, not signal
func specificCount(sentences []string) int {
	count := 0
	for _, sentence := range sentences {
		for i, tok := range wordtok.Words(sentence) {
			if containsDigit(tok) {
				count++
				continue
			}
			if i == 0 {
				continue
			}
			r := []rune(tok)[0]
			if unicode.IsUpper(r) {
				count++
			}
		}
	}
	return count
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// ContributorShade maps a day's distinct contributor count to a shade
// discrete thresholds, not a linear scale
func ContributorShade(contributors int) int {
	switch {
	case contributors <= 0:
		return 0
	case contributors == 1:
		return 2
	case contributors == 2:
		return 5
	case contributors == 3:
		return 7
	case contributors == 4:
		return 9
	default:
		return 10
	}
}
