// Package freq counts words, keywords and candidate phrases in normalized
// article text.
package freq

import "strings"

// WordCount splits text on whitespace and counts every exact token.
func WordCount(text string) map[string]int {
	counts := make(map[string]int)
	for _, w := range strings.Fields(text) {
		counts[w]++
	}
	return counts
}

// TotalWords returns the number of whitespace-delimited tokens in text.
func TotalWords(text string) int {
	return len(strings.Fields(text))
}

// KeywordFrequencies looks up each keyword in counts. Matching is exact and
// case-sensitive; keywords that never occur map to 0.
func KeywordFrequencies(counts map[string]int, keywords []string) map[string]int {
	freqs := make(map[string]int, len(keywords))
	for _, kw := range keywords {
		freqs[kw] = counts[kw]
	}
	return freqs
}

// KeywordTable is KeywordFrequencies in caller order, with repeated
// keywords listed once.
func KeywordTable(counts map[string]int, keywords []string) []Ranked {
	seen := make(map[string]struct{}, len(keywords))
	table := make([]Ranked, 0, len(keywords))
	for _, kw := range keywords {
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		table = append(table, Ranked{Term: kw, Count: counts[kw]})
	}
	return table
}
