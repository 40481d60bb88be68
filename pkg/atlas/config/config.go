package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/GannaSameh/atlas/pkg/atlas/internalerr"
)

// Vocabulary represents the analysis vocabulary configuration
type Vocabulary struct {
	Keywords      []string `yaml:"keywords"`
	KeywordVocab  []string `yaml:"keyword_vocab"`
	LocationVocab []string `yaml:"location_vocab"`
	TopLocations  int      `yaml:"top_locations"`
	HistogramBins int      `yaml:"histogram_bins"`
	TopWords      int      `yaml:"top_words"`
	TopTags       int      `yaml:"top_tags"`
}

// LoadVocabulary loads the vocabulary from a YAML file
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, internalerr.ErrInvalidConfig)
	}

	if v.TopLocations < 0 || v.HistogramBins < 0 || v.TopWords < 0 || v.TopTags < 0 {
		return nil, fmt.Errorf("%s: counts must not be negative: %w", path, internalerr.ErrInvalidConfig)
	}

	return &v, nil
}

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, internalerr.ErrInvalidConfig)
	}

	return &sl, nil
}
