package graph

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/GannaSameh/atlas/pkg/atlas/extract"
	"github.com/GannaSameh/atlas/pkg/atlas/pmi"
)

// Vocabulary matches a fixed set of entity names as whole words,
// ignoring case. Terms may contain letters from any script.
type Vocabulary struct {
	terms []string
}

// NewVocabulary prepares a matcher for the given terms. Blank terms are
// ignored; an empty vocabulary matches nothing.
func NewVocabulary(terms []string) *Vocabulary {
	uniq := make(map[string]struct{}, len(terms))
	var kept []string
	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := uniq[t]; ok {
			continue
		}
		uniq[t] = struct{}{}
		kept = append(kept, t)
	}

	// Longer terms first so "Atlantic Ocean" wins over "Atlantic".
	sort.SliceStable(kept, func(i, j int) bool {
		return len(kept[i]) > len(kept[j])
	})
	return &Vocabulary{terms: kept}
}

// FindAll returns every non-overlapping match in s, leftmost first and as
// written in s. A match must start and end on a word boundary.
func (v *Vocabulary) FindAll(s string) []string {
	if v == nil || len(v.terms) == 0 {
		return nil
	}
	var out []string
	for i := 0; i < len(s); {
		if extract.AtBoundary(s, i) {
			if n := v.matchAt(s[i:]); n > 0 {
				out = append(out, s[i:i+n])
				i += n
				continue
			}
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return out
}

// matchAt returns the byte length of the first term that prefixes s,
// ignoring case, or 0. A term whose end falls inside a word is skipped so
// a shorter term can still match.
func (v *Vocabulary) matchAt(s string) int {
	for _, t := range v.terms {
		n, ok := foldPrefix(s, t)
		if !ok {
			continue
		}
		if extract.AtBoundary(s, n) {
			return n
		}
	}
	return 0
}

// foldPrefix reports whether s starts with prefix under Unicode simple
// case folding, and the byte length of the matching part of s.
func foldPrefix(s, prefix string) (int, bool) {
	n := 0
	for _, p := range prefix {
		if n >= len(s) {
			return 0, false
		}
		r, size := utf8.DecodeRuneInString(s[n:])
		if r != p && !equalFold(r, p) {
			return 0, false
		}
		n += size
	}
	return n, true
}

func equalFold(a, b rune) bool {
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}

// SplitSentences splits text at '.', '!' and '?'. The delimiters are
// dropped and empty pieces are skipped.
func SplitSentences(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
}

// Build links every keyword to every location mentioned in the same
// sentence. Node labels are capitalized ("ATLANTIS" and "atlantis" both
// become "Atlantis").
func Build(text string, keywordVocab, locationVocab []string) *Graph {
	return NewBuilder(keywordVocab, locationVocab).Build(text)
}

// Builder holds compiled vocabularies so they can be reused across texts.
type Builder struct {
	keywords  *Vocabulary
	locations *Vocabulary
}

// NewBuilder compiles the keyword and location vocabularies.
func NewBuilder(keywordVocab, locationVocab []string) *Builder {
	return &Builder{
		keywords:  NewVocabulary(keywordVocab),
		locations: NewVocabulary(locationVocab),
	}
}

// Build scans text sentence by sentence and returns the resulting graph.
// Sentence-level mention counts are kept alongside for edge weighting.
func (b *Builder) Build(text string) *Graph {
	g := New()
	g.counts = pmi.NewCounter()
	for _, sentence := range SplitSentences(text) {
		kws := capitalizeAll(b.keywords.FindAll(sentence))
		locs := capitalizeAll(b.locations.FindAll(sentence))
		g.counts.AddSentence(kws, locs)

		for _, kw := range kws {
			for _, loc := range locs {
				g.AddEdge(kw, loc)
			}
		}
	}
	return g
}

func capitalizeAll(matches []string) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = Capitalize(m)
	}
	return out
}

// Capitalize upper-cases the first letter of s and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	// Casers carry state and are not shared between goroutines.
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}
