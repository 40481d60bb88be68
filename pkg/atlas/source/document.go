// Package source turns article HTML into the raw text consumed by the
// analysis pipeline. A page is parsed once into a Document and every
// derived statistic is read from that handle.
package source

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/GannaSameh/atlas/pkg/atlas/internalerr"
)

// BodyContentID is the id of the element holding a wiki article body.
const BodyContentID = "bodyContent"

// Document is a parsed HTML page. It is read-only after Parse.
type Document struct {
	URL  string
	root *html.Node
}

// Parse reads and parses an HTML page.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString parses an HTML page held in memory.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// BodyText returns the text of the article body element.
func (d *Document) BodyText() (string, error) {
	return d.TextByID(BodyContentID)
}

// TextByID returns the concatenated text nodes below the element with the
// given id, in document order and without separators.
func (d *Document) TextByID(id string) (string, error) {
	n := findByID(d.root, id)
	if n == nil {
		return "", fmt.Errorf("element #%s: %w", id, internalerr.ErrNotFound)
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(n)

	return buf.String(), nil
}

// TagCounts counts element nodes by tag name across the whole page.
func (d *Document) TagCounts() map[string]int {
	counts := make(map[string]int)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			counts[n.Data]++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return counts
}

// Title returns the text of the first <title> element, if any.
func (d *Document) Title() string {
	var title string
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				title = strings.TrimSpace(n.FirstChild.Data)
			}
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(d.root)
	return title
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}
