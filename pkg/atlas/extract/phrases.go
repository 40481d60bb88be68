package extract

import (
	"regexp"
	"strings"
)

// phraseRe matches a capitalized word or a run of capitalized words
// separated by single spaces ("Plato", "Atlantic Ocean"). Word boundaries
// are checked by findWholeWords.
var phraseRe = regexp.MustCompile(`[A-Z][a-z]+(?: [A-Z][a-z]+)*`)

// CapitalizedPhrases returns every capitalized phrase in text in document
// order, duplicates included. Only whole words count: "Platón" yields
// nothing, and "Atlantic Océan" yields "Atlantic".
func CapitalizedPhrases(text string) []string {
	return findWholeWords(phraseRe, text, dropLastWord)
}

// dropLastWord returns the length of phrase without its last word, or -1
// for a single word.
func dropLastWord(phrase string) int {
	return strings.LastIndexByte(phrase, ' ')
}

// Names returns candidate person and entity names.
func Names(text string) []string {
	return CapitalizedPhrases(text)
}

// Locations returns candidate place names. It shares the extraction rule
// with Names, so both lists are equal for the same text.
func Locations(text string) []string {
	return CapitalizedPhrases(text)
}
