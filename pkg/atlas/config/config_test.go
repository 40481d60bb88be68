package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/GannaSameh/atlas/pkg/atlas/internalerr"
)

func TestLoadStoplist(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "stoplist.yaml")

	content := `terms:
  - the
  - a
  - and
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	sl, err := LoadStoplist(path)
	if err != nil {
		t.Fatalf("Failed to load stoplist: %v", err)
	}

	if !reflect.DeepEqual(sl.Terms, []string{"the", "a", "and"}) {
		t.Errorf("Terms = %v", sl.Terms)
	}
}

func TestLoadVocabulary(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "vocabulary.yaml")

	content := `keywords:
  - Atlantis
  - Plato
keyword_vocab:
  - Solon
location_vocab:
  - Egypt
  - Sais
top_locations: 3
histogram_bins: 10
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	v, err := LoadVocabulary(path)
	if err != nil {
		t.Fatalf("Failed to load vocabulary: %v", err)
	}

	if !reflect.DeepEqual(v.Keywords, []string{"Atlantis", "Plato"}) {
		t.Errorf("Keywords = %v", v.Keywords)
	}
	if !reflect.DeepEqual(v.LocationVocab, []string{"Egypt", "Sais"}) {
		t.Errorf("LocationVocab = %v", v.LocationVocab)
	}
	if v.TopLocations != 3 || v.HistogramBins != 10 || v.TopWords != 0 {
		t.Errorf("counts = %+v", v)
	}
}

func TestLoadVocabularyInvalid(t *testing.T) {
	tmpDir := t.TempDir()

	tests := map[string]string{
		"malformed.yaml": "keywords: [Atlantis\n",
		"negative.yaml":  "top_locations: -2\n",
	}
	for name, content := range tests {
		path := filepath.Join(tmpDir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadVocabulary(path); !errors.Is(err, internalerr.ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}
}

func TestLoadVocabularyMissingFile(t *testing.T) {
	_, err := LoadVocabulary(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}
