package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/GannaSameh/atlas/pkg/atlas/internalerr"
)

// Article is a raw article handed over by a source collaborator.
type Article struct {
	URL       string
	Title     string
	FetchedAt time.Time
	BodyText  string
}

// Validate checks if the article has required fields
func (a *Article) Validate() error {
	if strings.TrimSpace(a.BodyText) == "" {
		return fmt.Errorf("article %s: body text is required: %w", a.Label(), internalerr.ErrInvalidInput)
	}
	return nil
}

// Label returns the best human-readable identifier for the article.
func (a *Article) Label() string {
	switch {
	case strings.TrimSpace(a.Title) != "":
		return a.Title
	case strings.TrimSpace(a.URL) != "":
		return a.URL
	default:
		return "inline"
	}
}
