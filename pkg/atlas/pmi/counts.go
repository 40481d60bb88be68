// Package pmi scores keyword/location associations with pointwise mutual
// information computed over sentences.
package pmi

// Counter maintains sentence-level counts for PMI calculation
type Counter struct {
	n   int64
	nx  map[string]int64
	nxy map[Pair]int64
}

// Pair is an unordered pair of labels stored in canonical order (A <= B).
type Pair struct {
	A, B string
}

// NewPair returns the canonical pair for two labels.
func NewPair(x, y string) Pair {
	if x > y {
		x, y = y, x
	}
	return Pair{A: x, B: y}
}

// NewCounter creates a new co-occurrence counter
func NewCounter() *Counter {
	return &Counter{
		nx:  make(map[string]int64),
		nxy: make(map[Pair]int64),
	}
}

// AddSentence records one sentence. Each label counts once per sentence
// however often it occurs; every keyword/location combination counts as
// one co-occurrence. Sentences without labels still count toward the
// total.
func (c *Counter) AddSentence(keywords, locations []string) {
	c.n++

	kws := unique(keywords)
	locs := unique(locations)

	seen := make(map[string]struct{}, len(kws)+len(locs))
	for _, l := range append(append([]string(nil), kws...), locs...) {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		c.nx[l]++
	}

	pairs := make(map[Pair]struct{})
	for _, kw := range kws {
		for _, loc := range locs {
			pairs[NewPair(kw, loc)] = struct{}{}
		}
	}
	for p := range pairs {
		c.nxy[p]++
	}
}

// PairCount returns the number of sentences in which x and y co-occur
func (c *Counter) PairCount(x, y string) int64 {
	return c.nxy[NewPair(x, y)]
}

// LabelCount returns the number of sentences mentioning a label
func (c *Counter) LabelCount(label string) int64 {
	return c.nx[label]
}

// TotalSentences returns the number of sentences recorded
func (c *Counter) TotalSentences() int64 {
	return c.n
}

// UniqueLabels returns the number of distinct labels
func (c *Counter) UniqueLabels() int {
	return len(c.nx)
}

// UniquePairs returns the number of distinct co-occurring pairs
func (c *Counter) UniquePairs() int {
	return len(c.nxy)
}

func unique(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
