package freq

import (
	"fmt"
	"sort"

	"github.com/GannaSameh/atlas/pkg/atlas/internalerr"
	"github.com/GannaSameh/atlas/pkg/atlas/stoplist"
)

// Ranked is a term with its occurrence count.
type Ranked struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// RankLocations counts each distinct candidate and returns the topN most
// frequent. Candidates with equal counts keep the order in which they were
// first seen.
func RankLocations(candidates []string, topN int) ([]Ranked, error) {
	if topN < 0 {
		return nil, fmt.Errorf("rank locations: top_n %d: %w", topN, internalerr.ErrInvalidInput)
	}

	index := make(map[string]int)
	var ranked []Ranked
	for _, c := range candidates {
		if i, ok := index[c]; ok {
			ranked[i].Count++
			continue
		}
		index[c] = len(ranked)
		ranked = append(ranked, Ranked{Term: c, Count: 1})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return truncate(ranked, topN), nil
}

// RankCounts orders an unordered count table by descending count, breaking
// ties lexically, and keeps the first topN entries.
func RankCounts(counts map[string]int, topN int) ([]Ranked, error) {
	if topN < 0 {
		return nil, fmt.Errorf("rank counts: top_n %d: %w", topN, internalerr.ErrInvalidInput)
	}
	ranked := make([]Ranked, 0, len(counts))
	for term, n := range counts {
		ranked = append(ranked, Ranked{Term: term, Count: n})
	}
	sortRanked(ranked)
	return truncate(ranked, topN), nil
}

// TopWords ranks words from a WordCount table, skipping stopwords.
// A nil stoplist filters nothing.
func TopWords(counts map[string]int, stops *stoplist.Manager, topN int) ([]Ranked, error) {
	if topN < 0 {
		return nil, fmt.Errorf("top words: top_n %d: %w", topN, internalerr.ErrInvalidInput)
	}

	ranked := make([]Ranked, 0, len(counts))
	for word, n := range counts {
		if stops.IsStop(word) {
			continue
		}
		ranked = append(ranked, Ranked{Term: word, Count: n})
	}
	sortRanked(ranked)
	return truncate(ranked, topN), nil
}

func sortRanked(ranked []Ranked) {
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Term < ranked[j].Term
	})
}

func truncate(ranked []Ranked, n int) []Ranked {
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	if len(ranked) == 0 {
		return []Ranked{}
	}
	return ranked
}
