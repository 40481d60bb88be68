package extract

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// IsWordRune reports whether r is a word character: a letter, a number
// or an underscore, in any script.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// AtBoundary reports whether byte offset i of s lies on a word boundary,
// that is between a word character and a non-word character (or the
// start or end of s). Unlike RE2's \b, letters outside ASCII count as
// word characters, so "Platón" has no boundary before the "ó".
func AtBoundary(s string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:i])
		before = IsWordRune(r)
	}
	if i < len(s) {
		r, _ := utf8.DecodeRuneInString(s[i:])
		after = IsWordRune(r)
	}
	return before != after
}

// findWholeWords returns the leftmost non-overlapping matches of re in s
// that start and end on word boundaries. When a match ends inside a word,
// shorten may propose a shorter prefix of it; it returns the new length,
// or -1 when there is none.
func findWholeWords(re *regexp.Regexp, s string, shorten func(match string) int) []string {
	var out []string
	for pos := 0; pos < len(s); {
		loc := re.FindStringIndex(s[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if end > start && AtBoundary(s, start) {
			for end > start && !AtBoundary(s, end) {
				if shorten == nil {
					end = -1
					break
				}
				end = start + shorten(s[start:end])
			}
			if end > start {
				out = append(out, s[start:end])
				pos = end
				continue
			}
		}
		// Retry one rune further on, as a backtracking matcher would.
		_, size := utf8.DecodeRuneInString(s[start:])
		pos = start + max(size, 1)
	}
	return out
}
