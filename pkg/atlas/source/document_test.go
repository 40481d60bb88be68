package source

import (
	"errors"
	"strings"
	"testing"

	"github.com/GannaSameh/atlas/pkg/atlas/internalerr"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Atlantis - Wikipedia</title></head>
<body>
<div id="content">
  <h1>Atlantis</h1>
  <div id="bodyContent"><p>Atlantis is a fictional island<sup>[1]</sup> in
  <a href="/wiki/Plato">Plato</a>'s works.</p><p>It sank circa 9600 BC.</p></div>
</div>
</body>
</html>`

func TestBodyText(t *testing.T) {
	doc, err := ParseString(samplePage)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	text, err := doc.BodyText()
	if err != nil {
		t.Fatalf("BodyText failed: %v", err)
	}
	want := "Atlantis is a fictional island[1] in\n  Plato's works.It sank circa 9600 BC."
	if text != want {
		t.Errorf("BodyText() = %q, want %q", text, want)
	}
	if strings.Contains(text, "Wikipedia") {
		t.Error("text outside the body element leaked into BodyText")
	}
}

func TestBodyTextMissing(t *testing.T) {
	doc, err := ParseString("<html><body><p>no body here</p></body></html>")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if _, err := doc.BodyText(); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTagCounts(t *testing.T) {
	doc, err := ParseString(samplePage)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	counts := doc.TagCounts()
	want := map[string]int{"html": 1, "head": 1, "title": 1, "body": 1, "div": 2, "h1": 1, "p": 2, "sup": 1, "a": 1}
	for tag, n := range want {
		if counts[tag] != n {
			t.Errorf("TagCounts()[%q] = %d, want %d", tag, counts[tag], n)
		}
	}
	if len(counts) != len(want) {
		t.Errorf("TagCounts() = %v, want %v", counts, want)
	}
}

func TestTitle(t *testing.T) {
	doc, err := ParseString(samplePage)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if got := doc.Title(); got != "Atlantis - Wikipedia" {
		t.Errorf("Title() = %q", got)
	}
}
