// Package censor masks configured terms in entry text before storage
// Terms longer than four characters are masked wherever they occur inside
// larger words, shorter terms only as standalone words so that common
// substrings stay untouched. Matching is case-insensitive, masks keep length.
package censor

import (
	"strings"
	"unicode"
)

// Censor masks a fixed term list
// the zero value censors nothing
type Censor struct {
	terms []string
}

// New builds a Censor from terms, blanks are dropped
func New(terms []string) *Censor {
	kept := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			kept = append(kept, t)
		}
	}
	return &Censor{terms: kept}
}

// Mask replaces every match in text with asterisks of equal length
func (c *Censor) Mask(text string) string {
	if c == nil || len(c.terms) == 0 || text == "" {
		return text
	}
	runes := []rune(text)
	lower := []rune(strings.ToLower(text))
	for _, term := range c.terms {
		tr := []rune(term)
		anywhere := len(tr) > 4
		for i := 0; i+len(tr) <= len(lower); i++ {
			if !matchAt(lower, tr, i) {
				continue
			}
			if !anywhere && !standalone(lower, i, len(tr)) {
				continue
			}
			for j := i; j < i+len(tr); j++ {
				runes[j] = '*'
				lower[j] = '*'
			}
			i += len(tr) - 1
		}
	}
	return string(runes)
}

// Clean reports whether text contains no maskable term
func (c *Censor) Clean(text string) bool {
	return c.Mask(text) == text
}

func matchAt(s, term []rune, at int) bool {
	for j, r := range term {
		if s[at+j] != r {
			return false
		}
	}
	return true
}

// standalone requires non-word runes (or string edges) on both sides
func standalone(s []rune, at, n int) bool {
	if at > 0 && isWordRune(s[at-1]) {
		return false
	}
	if end := at + n; end < len(s) && isWordRune(s[end]) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
