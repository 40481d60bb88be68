package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/GannaSameh/atlas/pkg/atlas/freq"
	"github.com/GannaSameh/atlas/pkg/atlas/graph"
)

func TestBuildAssignsMonotonicIDs(t *testing.T) {
	b := New()
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return fixed }

	first := b.Build(Input{Source: "a"})
	second := b.Build(Input{Source: "b"})

	if _, err := ulid.Parse(first.ID); err != nil {
		t.Fatalf("invalid ULID %q: %v", first.ID, err)
	}
	if first.ID >= second.ID {
		t.Errorf("IDs should increase: %s then %s", first.ID, second.ID)
	}
	if !first.CreatedAt.Equal(fixed) {
		t.Errorf("CreatedAt = %v, want %v", first.CreatedAt, fixed)
	}
}

func TestBuildEmptyListsSerializeAsArrays(t *testing.T) {
	r := New().Build(Input{})
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "null") {
		t.Errorf("report JSON contains null: %s", out)
	}
	if strings.Contains(out, `"tags"`) {
		t.Errorf("tags should be omitted when absent: %s", out)
	}
}

func TestBuildCopiesGraph(t *testing.T) {
	g := graph.New()
	g.AddEdge("Plato", "Greece")

	year := -9000
	r := New().Build(Input{
		Graph:     g,
		Dates:     []DateMention{{Mention: "9000 BC", Year: &year}},
		Locations: []freq.Ranked{{Term: "Greece", Count: 3}},
	})

	if len(r.Graph.Nodes) != 2 || len(r.Graph.Edges) != 1 || len(r.Graph.Weights) != 1 {
		t.Errorf("Graph = %+v", r.Graph)
	}
	if r.Graph.Edges[0] != graph.NewEdge("Plato", "Greece") {
		t.Errorf("edge = %+v", r.Graph.Edges[0])
	}
	if *r.Dates[0].Year != -9000 {
		t.Errorf("year = %d", *r.Dates[0].Year)
	}
}

func TestBuildWeightsFromBuiltGraph(t *testing.T) {
	g := graph.Build("Solon visited Egypt. Plato stayed home. Nothing else.", []string{"Solon", "Plato"}, []string{"Egypt"})
	r := New().Build(Input{Graph: g})

	if r.Graph.Sentences != 3 {
		t.Errorf("Sentences = %d, want 3", r.Graph.Sentences)
	}
	if len(r.Graph.Weights) != 1 || r.Graph.Weights[0].Sentences != 1 {
		t.Fatalf("Weights = %+v", r.Graph.Weights)
	}
	if r.Graph.Weights[0].NPMI <= 0 {
		t.Errorf("NPMI = %f, want positive", r.Graph.Weights[0].NPMI)
	}
}
