package freq

import (
	"errors"
	"reflect"
	"testing"

	"github.com/GannaSameh/atlas/pkg/atlas/internalerr"
	"github.com/GannaSameh/atlas/pkg/atlas/stoplist"
)

func TestRankLocations(t *testing.T) {
	candidates := []string{"Greece", "Egypt", "Greece", "Greece", "Egypt", "Crete"}
	got, err := RankLocations(candidates, 2)
	if err != nil {
		t.Fatalf("RankLocations failed: %v", err)
	}
	want := []Ranked{{"Greece", 3}, {"Egypt", 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RankLocations() = %v, want %v", got, want)
	}
}

func TestRankLocationsTiesKeepFirstSeenOrder(t *testing.T) {
	candidates := []string{"Santorini", "Crete", "Azores", "Crete", "Santorini", "Azores", "Malta"}
	got, err := RankLocations(candidates, 5)
	if err != nil {
		t.Fatalf("RankLocations failed: %v", err)
	}
	want := []Ranked{{"Santorini", 2}, {"Crete", 2}, {"Azores", 2}, {"Malta", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RankLocations() = %v, want %v", got, want)
	}
}

func TestRankLocationsEdgeCases(t *testing.T) {
	got, err := RankLocations([]string{"Greece"}, 0)
	if err != nil || len(got) != 0 {
		t.Errorf("top_n=0: got %v, %v", got, err)
	}

	got, err = RankLocations(nil, 5)
	if err != nil || len(got) != 0 {
		t.Errorf("empty candidates: got %v, %v", got, err)
	}

	_, err = RankLocations([]string{"Greece"}, -1)
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("negative top_n: expected ErrInvalidInput, got %v", err)
	}
}

func TestRankCounts(t *testing.T) {
	counts := map[string]int{"div": 40, "span": 12, "a": 40, "p": 3}
	got, err := RankCounts(counts, 3)
	if err != nil {
		t.Fatalf("RankCounts failed: %v", err)
	}
	want := []Ranked{{"a", 40}, {"div", 40}, {"span", 12}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RankCounts() = %v, want %v", got, want)
	}

	if _, err := RankCounts(counts, -3); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTopWordsSkipsStopwords(t *testing.T) {
	counts := WordCount("the island and The ocean and the island of Atlantis")
	got, err := TopWords(counts, stoplist.NewManager([]string{"the", "and", "of"}), 10)
	if err != nil {
		t.Fatalf("TopWords failed: %v", err)
	}
	want := []Ranked{{"island", 2}, {"Atlantis", 1}, {"ocean", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopWords() = %v, want %v", got, want)
	}

	if _, err := TopWords(counts, nil, -1); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTopWordsDefaultStoplist(t *testing.T) {
	counts := WordCount("The island of Atlantis was in the ocean and the island sank")
	got, err := TopWords(counts, stoplist.NewDefault(), 10)
	if err != nil {
		t.Fatalf("TopWords failed: %v", err)
	}
	want := []Ranked{{"island", 2}, {"Atlantis", 1}, {"ocean", 1}, {"sank", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopWords() = %v, want %v", got, want)
	}
}

func TestTopWordsNilStoplist(t *testing.T) {
	got, err := TopWords(map[string]int{"the": 3, "island": 1}, nil, 10)
	if err != nil {
		t.Fatalf("TopWords failed: %v", err)
	}
	want := []Ranked{{"the", 3}, {"island", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopWords() = %v, want %v", got, want)
	}
}
