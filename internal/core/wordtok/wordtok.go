// Package wordtok tokenizes entry text for scoring and validation
// A word is a maximal run of letters marks digits or underscore, optionally
// joined to another such run by a single apostrophe or hyphen, so don't and
// well-known are single tokens. Markup is stripped to plain text first.
package wordtok

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
)

var joiners = map[rune]bool{
	'\'': true,
	'’':  true,
	'-':  true,
}

// StripMarkup reduces an HTML fragment to its text content
// plain text passes through unchanged apart from entity decoding
func StripMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	var b strings.Builder
	tz := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := tz.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			b.Write(tz.Text())
		}
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r)
}

// Words returns the tokens of s in input order
func Words(s string) []string {
	var (
		out []string
		cur strings.Builder
	)
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case isWordRune(r):
			cur.WriteRune(r)
		case joiners[r] && cur.Len() > 0 && i+1 < len(runes) && isWordRune(runes[i+1]):
			// a joiner only binds between two word runs
			last, _ := utf8.DecodeLastRuneInString(cur.String())
			if joiners[last] {
				flush()
				continue
			}
			cur.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return out
}

// Count returns the token count of s after markup stripping
func Count(s string) int {
	return len(Words(StripMarkup(s)))
}

// Sentences splits plain text on runs of . ; ! ? and drops empty segments
func Sentences(s string) []string {
	segs := strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == ';' || r == '!' || r == '?'
	})
	out := segs[:0]
	for _, seg := range segs {
		if strings.TrimSpace(seg) != "" {
			out = append(out, seg)
		}
	}
	return out
}

// DistinctFold counts case-insensitively distinct tokens
func DistinctFold(tokens []string) int {
	fold := cases.Fold()
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		seen[fold.String(tok)] = struct{}{}
	}
	return len(seen)
}
