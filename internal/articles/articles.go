// Package articles reads batches of articles from JSON Lines dumps.
package articles

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/GannaSameh/atlas/pkg/atlas/ingest"
)

// Item is one article line in a JSONL dump.
type Item struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Body  string `json:"text"`
}

// Article converts the item for the analysis pipeline.
func (i Item) Article() ingest.Article {
	return ingest.Article{URL: i.URL, Title: i.Title, BodyText: i.Body}
}

// LoadFromJSONL loads items from a JSONL file. Malformed or empty-bodied
// lines are skipped with a warning; a file without any valid item is an
// error.
func LoadFromJSONL(path string, log logrus.FieldLogger) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var items []Item
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var item Item
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			log.WithField("line", lineNo).Warnf("skipping malformed JSON in %s: %v", path, err)
			continue
		}
		article := item.Article()
		if err := article.Validate(); err != nil {
			log.WithField("line", lineNo).Warnf("skipping article in %s: %v", path, err)
			continue
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no valid items found in %s", path)
	}

	return items, nil
}
