package config

import (
	"fmt"

	"github.com/GannaSameh/atlas/pkg/atlas"
	"github.com/GannaSameh/atlas/pkg/atlas/stoplist"
)

// Loader loads all configuration files and builds pipeline options
type Loader struct {
	VocabularyPath string
	StoplistPath   string
}

// Load reads the configured files and returns options for atlas.New.
// Fields missing from the files keep the package defaults.
func (l *Loader) Load() (atlas.Options, error) {
	opts := atlas.DefaultOptions()

	if l.VocabularyPath != "" {
		vocab, err := LoadVocabulary(l.VocabularyPath)
		if err != nil {
			return atlas.Options{}, fmt.Errorf("load vocabulary: %w", err)
		}
		if len(vocab.Keywords) > 0 {
			opts.Keywords = vocab.Keywords
		}
		if len(vocab.KeywordVocab) > 0 {
			opts.KeywordVocab = vocab.KeywordVocab
		}
		if len(vocab.LocationVocab) > 0 {
			opts.LocationVocab = vocab.LocationVocab
		}
		if vocab.TopLocations > 0 {
			opts.TopLocations = vocab.TopLocations
		}
		if vocab.HistogramBins > 0 {
			opts.HistogramBins = vocab.HistogramBins
		}
		if vocab.TopWords > 0 {
			opts.TopWords = vocab.TopWords
		}
		if vocab.TopTags > 0 {
			opts.TopTags = vocab.TopTags
		}
	}

	if l.StoplistPath != "" {
		sl, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return atlas.Options{}, fmt.Errorf("load stoplist: %w", err)
		}
		// File terms extend the built-in list.
		stops := stoplist.NewManager(opts.Stopwords)
		for _, term := range sl.Terms {
			stops.Add(term)
		}
		opts.Stopwords = stops.All()
	}

	return opts, nil
}
