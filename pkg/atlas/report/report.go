// Package report assembles pipeline outputs into a serializable report.
package report

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/GannaSameh/atlas/pkg/atlas/freq"
	"github.com/GannaSameh/atlas/pkg/atlas/graph"
	"github.com/GannaSameh/atlas/pkg/atlas/pmi"
)

// Report is the structured result of one analysis run.
type Report struct {
	ID                 string        `json:"id"`
	CreatedAt          time.Time     `json:"created_at"`
	Source             string        `json:"source"`
	Text               string        `json:"text"`
	TotalWords         int           `json:"total_words"`
	KeywordFrequencies []freq.Ranked `json:"keyword_frequencies"`
	Dates              []DateMention `json:"dates"`
	Years              []int         `json:"years"`
	YearHistogram      []freq.Bin    `json:"year_histogram"`
	Names              []string      `json:"names"`
	Locations          []freq.Ranked `json:"locations"`
	TopWords           []freq.Ranked `json:"top_words"`
	Graph              Graph         `json:"graph"`
	Tags               []freq.Ranked `json:"tags,omitempty"`
}

// DateMention pairs a date mention with its resolved year, if any.
type DateMention struct {
	Mention string `json:"mention"`
	Year    *int   `json:"year"`
}

// Graph is the serializable form of a co-occurrence graph.
type Graph struct {
	Nodes     []string             `json:"nodes"`
	Edges     []graph.Edge         `json:"edges"`
	Weights   []graph.WeightedEdge `json:"weights"`
	Sentences int64                `json:"sentences"`
}

// Input collects the pipeline outputs for one report.
type Input struct {
	Source             string
	Text               string
	TotalWords         int
	KeywordFrequencies []freq.Ranked
	Dates              []DateMention
	Years              []int
	YearHistogram      []freq.Bin
	Names              []string
	Locations          []freq.Ranked
	TopWords           []freq.Ranked
	Graph              *graph.Graph
	Tags               []freq.Ranked
}

// Builder stamps reports with monotonic ULIDs. It is safe for concurrent use.
type Builder struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
	calc    *pmi.Calculator
}

// New creates a new report builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
		calc:    pmi.NewCalculator(pmi.DefaultEpsilon),
	}
}

// Build creates a report from pipeline outputs. Nil slices are replaced by
// empty ones so the JSON form never carries nulls for lists.
func (b *Builder) Build(in Input) Report {
	now := b.now().UTC()

	b.mu.Lock()
	id := ulid.MustNew(ulid.Timestamp(now), b.entropy).String()
	b.mu.Unlock()

	r := Report{
		ID:                 id,
		CreatedAt:          now,
		Source:             in.Source,
		Text:               in.Text,
		TotalWords:         in.TotalWords,
		KeywordFrequencies: orEmpty(in.KeywordFrequencies),
		Dates:              orEmpty(in.Dates),
		Years:              orEmpty(in.Years),
		YearHistogram:      orEmpty(in.YearHistogram),
		Names:              orEmpty(in.Names),
		Locations:          orEmpty(in.Locations),
		TopWords:           orEmpty(in.TopWords),
		Graph:              Graph{Nodes: []string{}, Edges: []graph.Edge{}, Weights: []graph.WeightedEdge{}},
		Tags:               in.Tags,
	}
	if in.Graph != nil {
		r.Graph = Graph{
			Nodes:     in.Graph.Nodes(),
			Edges:     in.Graph.Edges(),
			Weights:   in.Graph.Weights(b.calc),
			Sentences: in.Graph.Sentences(),
		}
	}
	return r
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
