package extract

import (
	"regexp"
	"strconv"
)

var (
	// dateRe matches mentions such as "circa 9000 BC", "1500 AD" or
	// "12 century". A bare digit run without an era suffix is not a date.
	// Word boundaries are checked by findWholeWords.
	dateRe = regexp.MustCompile(`(?:circa\s)?\d{1,4}\s?(?:BC|AD|century)`)

	// yearRe finds the first digit run of a mention and its optional era.
	yearRe = regexp.MustCompile(`(\d{1,4})\s?(BC|AD|century)?`)
)

// Dates returns every date mention in text, left to right.
// Duplicates are kept since downstream histograms depend on frequency.
func Dates(text string) []string {
	return findWholeWords(dateRe, text, nil)
}

// ResolveYear converts a date mention into a signed year: BC mentions are
// negative, everything else is returned as written. The second result is
// false when the mention holds no digits.
//
// Century mentions are not converted to calendar years; "5th century"
// resolves to 5.
func ResolveYear(mention string) (int, bool) {
	m := yearRe.FindStringSubmatch(mention)
	if m == nil {
		return 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	if m[2] == "BC" {
		return -year, true
	}
	return year, true
}

// ResolveYears resolves each mention and drops the ones without a year.
func ResolveYears(mentions []string) []int {
	years := make([]int, 0, len(mentions))
	for _, m := range mentions {
		if y, ok := ResolveYear(m); ok {
			years = append(years, y)
		}
	}
	return years
}
