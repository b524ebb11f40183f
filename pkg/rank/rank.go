// Package rank selects the most frequent words from a token sequence.
//
// Counting is case-sensitive: "Hi" and "hi" are different words. Ordering is
// by count, highest first, then case-insensitive alphabetical within a count.
package rank

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidCount reports a non-positive number of entries to select.
var ErrInvalidCount = errors.New("n must be > 0")

// Entry is one ranked word and the number of times it occurred.
type Entry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// caserWrapper wraps a cases.Caser to allow pointer storage in sync.Pool.
type caserWrapper struct {
	caser cases.Caser
}

// cases.Caser is stateful and not safe for concurrent use.
var lowerPool = sync.Pool{
	New: func() interface{} {
		return &caserWrapper{caser: cases.Lower(language.Und)}
	},
}

func lowerAll(words []string) []string {
	w, ok := lowerPool.Get().(*caserWrapper)
	if !ok || w == nil {
		w = &caserWrapper{caser: cases.Lower(language.Und)}
	}
	defer lowerPool.Put(w)

	keys := make([]string, len(words))
	for i, word := range words {
		keys[i] = w.caser.String(word)
	}
	return keys
}

// Frequencies counts the occurrences of each distinct token.
func Frequencies(tokens []string) map[string]int {
	counts := make(map[string]int)
	for _, tok := range tokens {
		counts[tok]++
	}
	return counts
}

// Top returns up to n of the most frequent tokens.
//
// Tokens are grouped by count and groups are visited from the highest count
// down. When the last group needed would overflow n, only its alphabetically
// earliest words are kept. Fewer than n entries are returned only when there
// are fewer than n distinct tokens.
func Top(tokens []string, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidCount, n)
	}

	ranked := make([]Entry, 0, min(n, len(tokens)))
	if len(tokens) == 0 {
		return ranked, nil
	}

	for _, b := range buckets(Frequencies(tokens)) {
		words := b.words
		if room := n - len(ranked); len(words) > room {
			words = words[:room]
		}
		for _, w := range words {
			ranked = append(ranked, Entry{Word: w, Count: b.count})
		}
		if len(ranked) == n {
			break
		}
	}
	return ranked, nil
}

// bucket is the set of words sharing one occurrence count.
type bucket struct {
	count int
	words []string
}

// buckets inverts counts into per-count word groups, highest count first,
// each group sorted case-insensitively.
func buckets(counts map[string]int) []bucket {
	byCount := make(map[int][]string)
	for word, c := range counts {
		byCount[c] = append(byCount[c], word)
	}

	out := make([]bucket, 0, len(byCount))
	for c, words := range byCount {
		sortCaseless(words)
		out = append(out, bucket{count: c, words: words})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].count > out[j].count })
	return out
}

// sortCaseless sorts words by their lower-cased form. Words with the same
// lower-cased form are ordered by their raw bytes.
func sortCaseless(words []string) {
	keys := lowerAll(words)
	sort.Sort(byLower{words: words, keys: keys})
}

type byLower struct {
	words []string
	keys  []string
}

func (b byLower) Len() int { return len(b.words) }

func (b byLower) Less(i, j int) bool {
	if b.keys[i] != b.keys[j] {
		return b.keys[i] < b.keys[j]
	}
	return b.words[i] < b.words[j]
}

func (b byLower) Swap(i, j int) {
	b.words[i], b.words[j] = b.words[j], b.words[i]
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
}
