// Package textstat splits text into word tokens and counts character classes.
package textstat

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Stats holds the tokens and character class counts found in a text.
type Stats struct {
	Words      []string
	Alphabetic int
	Numeric    int
	Symbols    int
	Whitespace int
}

// WordCount returns the number of tokens, repeats included.
func (s Stats) WordCount() int { return len(s.Words) }

// Characters returns the total number of classified characters.
func (s Stats) Characters() int {
	return s.Alphabetic + s.Numeric + s.Symbols + s.Whitespace
}

// isAlphabetic reports the Unicode Alphabetic property: letters plus the
// vowel signs and other marks listed as Other_Alphabetic.
func isAlphabetic(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Other_Alphabetic, r)
}

// Classify walks text one rune at a time after NFC normalisation.
//
// Alphabetic runes and numbers extend the current word and whitespace ends
// it. Any other rune counts as a symbol and is dropped from the word without
// ending it, so "don't" yields the token "dont".
func Classify(text string) Stats {
	var (
		st   Stats
		word strings.Builder
	)
	flush := func() {
		if word.Len() > 0 {
			st.Words = append(st.Words, word.String())
			word.Reset()
		}
	}

	for _, r := range norm.NFC.String(text) {
		switch {
		case isAlphabetic(r):
			st.Alphabetic++
			word.WriteRune(r)
		case unicode.IsSpace(r):
			st.Whitespace++
			flush()
		case unicode.IsNumber(r):
			st.Numeric++
			word.WriteRune(r)
		default:
			st.Symbols++
		}
	}
	flush()
	return st
}
