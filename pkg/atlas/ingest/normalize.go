package ingest

import (
	"regexp"
	"strings"
)

// citationRe matches footnote markers such as "[3]".
var citationRe = regexp.MustCompile(`\[\d+\]`)

// Normalize strips citation markers from raw article text and collapses
// every whitespace run (newlines and Unicode spaces included) to a single
// ASCII space.
//
// Citations are removed first so that the gap they leave behind is
// collapsed along with the surrounding whitespace:
//
//	Normalize("Atlantis[1] is   an island.") == "Atlantis is an island."
func Normalize(raw string) string {
	text := raw
	// Removing "[1]" from "[[1]2]" exposes "[2]", so repeat until stable.
	for citationRe.MatchString(text) {
		text = citationRe.ReplaceAllString(text, "")
	}
	// Fields drops leading and trailing space as well.
	return strings.Join(strings.Fields(text), " ")
}
