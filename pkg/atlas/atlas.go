// Package atlas analyzes article text: it normalizes the text, extracts
// date mentions and capitalized phrases, counts keywords and locations,
// and links keywords to locations mentioned in the same sentence.
package atlas

import (
	"fmt"
	"slices"

	"github.com/GannaSameh/atlas/pkg/atlas/extract"
	"github.com/GannaSameh/atlas/pkg/atlas/freq"
	"github.com/GannaSameh/atlas/pkg/atlas/graph"
	"github.com/GannaSameh/atlas/pkg/atlas/ingest"
	"github.com/GannaSameh/atlas/pkg/atlas/internalerr"
	"github.com/GannaSameh/atlas/pkg/atlas/report"
	"github.com/GannaSameh/atlas/pkg/atlas/source"
	"github.com/GannaSameh/atlas/pkg/atlas/stoplist"
)

// Defaults used when Options leave a field unset.
const (
	DefaultTopLocations  = 5
	DefaultHistogramBins = 15
	DefaultTopWords      = 50
	DefaultTopTags       = 15
)

var (
	// DefaultKeywords are counted as exact, case-sensitive words.
	DefaultKeywords = []string{"Atlantis", "Plato", "ocean", "island"}

	// DefaultKeywordVocab and DefaultLocationVocab drive the co-occurrence graph.
	DefaultKeywordVocab  = []string{"Atlantis", "Plato", "Solon", "Poseidon", "Athenians", "Egyptians"}
	DefaultLocationVocab = []string{"Greece", "Egypt", "Mediterranean", "Atlantic", "Santorini", "Azores", "Doggerland"}
)

// Options configures an Atlas instance. Nil vocabularies and zero counts
// take the package defaults; negative counts are rejected by New.
// Nil Stopwords take the built-in English stoplist, while an empty
// non-nil slice disables stopword filtering.
type Options struct {
	Keywords      []string
	KeywordVocab  []string
	LocationVocab []string
	Stopwords     []string
	TopLocations  int
	HistogramBins int
	TopWords      int
	TopTags       int
}

// DefaultOptions returns the options tuned for the Wikipedia Atlantis
// article.
func DefaultOptions() Options {
	return Options{
		Keywords:      append([]string(nil), DefaultKeywords...),
		KeywordVocab:  append([]string(nil), DefaultKeywordVocab...),
		LocationVocab: append([]string(nil), DefaultLocationVocab...),
		Stopwords:     stoplist.Default(),
		TopLocations:  DefaultTopLocations,
		HistogramBins: DefaultHistogramBins,
		TopWords:      DefaultTopWords,
		TopTags:       DefaultTopTags,
	}
}

// Validate checks that counts are not negative.
func (o Options) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"top_locations", o.TopLocations},
		{"histogram_bins", o.HistogramBins},
		{"top_words", o.TopWords},
		{"top_tags", o.TopTags},
	}
	for _, c := range checks {
		if c.value < 0 {
			return fmt.Errorf("%s must not be negative, got %d: %w", c.name, c.value, internalerr.ErrInvalidInput)
		}
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.Keywords == nil {
		o.Keywords = DefaultKeywords
	}
	if o.KeywordVocab == nil {
		o.KeywordVocab = DefaultKeywordVocab
	}
	if o.LocationVocab == nil {
		o.LocationVocab = DefaultLocationVocab
	}
	if o.Stopwords == nil {
		o.Stopwords = stoplist.Default()
	}
	if o.TopLocations == 0 {
		o.TopLocations = DefaultTopLocations
	}
	if o.HistogramBins == 0 {
		o.HistogramBins = DefaultHistogramBins
	}
	if o.TopWords == 0 {
		o.TopWords = DefaultTopWords
	}
	if o.TopTags == 0 {
		o.TopTags = DefaultTopTags
	}
	return o.clone()
}

// clone copies the slices so callers never share backing arrays with
// the package defaults or a running Atlas.
func (o Options) clone() Options {
	o.Keywords = slices.Clone(o.Keywords)
	o.KeywordVocab = slices.Clone(o.KeywordVocab)
	o.LocationVocab = slices.Clone(o.LocationVocab)
	o.Stopwords = slices.Clone(o.Stopwords)
	return o
}

// Atlas runs the analysis pipeline. It holds no per-call state and is
// safe for concurrent use.
type Atlas struct {
	opts    Options
	stops   *stoplist.Manager
	graphs  *graph.Builder
	reports *report.Builder
}

// New creates an Atlas instance with the given options
func New(opts Options) (*Atlas, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	return &Atlas{
		opts:    opts,
		stops:   stoplist.NewManager(opts.Stopwords),
		graphs:  graph.NewBuilder(opts.KeywordVocab, opts.LocationVocab),
		reports: report.New(),
	}, nil
}

// Options returns the effective options, defaults included.
func (a *Atlas) Options() Options {
	return a.opts.clone()
}

// Analyze runs the pipeline over raw article text.
func (a *Atlas) Analyze(raw string) (report.Report, error) {
	in, err := a.analyze(raw)
	if err != nil {
		return report.Report{}, err
	}
	return a.reports.Build(in), nil
}

// AnalyzeArticle analyzes an article and labels the report with its source.
func (a *Atlas) AnalyzeArticle(article ingest.Article) (report.Report, error) {
	in, err := a.analyze(article.BodyText)
	if err != nil {
		return report.Report{}, err
	}
	in.Source = article.Label()
	return a.reports.Build(in), nil
}

// AnalyzeDocument analyzes the body of a parsed page. The tag
// distribution comes from the same parsed document.
func (a *Atlas) AnalyzeDocument(doc *source.Document) (report.Report, error) {
	body, err := doc.BodyText()
	if err != nil {
		return report.Report{}, fmt.Errorf("analyze document: %w", err)
	}
	in, err := a.analyze(body)
	if err != nil {
		return report.Report{}, err
	}
	in.Source = doc.URL
	if in.Source == "" {
		in.Source = doc.Title()
	}
	in.Tags, err = freq.RankCounts(doc.TagCounts(), a.opts.TopTags)
	if err != nil {
		return report.Report{}, err
	}
	return a.reports.Build(in), nil
}

func (a *Atlas) analyze(raw string) (report.Input, error) {
	text := ingest.Normalize(raw)

	mentions := extract.Dates(text)
	dates := make([]report.DateMention, 0, len(mentions))
	years := make([]int, 0, len(mentions))
	for _, m := range mentions {
		dm := report.DateMention{Mention: m}
		if y, ok := extract.ResolveYear(m); ok {
			dm.Year = &y
			years = append(years, y)
		}
		dates = append(dates, dm)
	}

	histogram, err := freq.Histogram(years, a.opts.HistogramBins)
	if err != nil {
		return report.Input{}, err
	}

	counts := freq.WordCount(text)
	locations, err := freq.RankLocations(extract.Locations(text), a.opts.TopLocations)
	if err != nil {
		return report.Input{}, err
	}
	topWords, err := freq.TopWords(counts, a.stops, a.opts.TopWords)
	if err != nil {
		return report.Input{}, err
	}

	return report.Input{
		Text:               text,
		TotalWords:         freq.TotalWords(text),
		KeywordFrequencies: freq.KeywordTable(counts, a.opts.Keywords),
		Dates:              dates,
		Years:              years,
		YearHistogram:      histogram,
		Names:              extract.Names(text),
		Locations:          locations,
		TopWords:           topWords,
		Graph:              a.graphs.Build(text),
	}, nil
}
