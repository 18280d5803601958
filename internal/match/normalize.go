// Package match decides whether a catalog title is already in the library,
// by provider id when both sides carry one and by fuzzy title otherwise.
package match

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// romanRegex matches II-IX after a space. Standalone I and X are left
// alone ("I, Robot", "American History X"), as are leading numerals.
var romanRegex = regexp.MustCompile(`(?i) (ii|iii|iv|v|vi|vii|viii|ix)\b`)

var romanToArabic = map[string]string{
	"ii": "2", "iii": "3", "iv": "4", "v": "5",
	"vi": "6", "vii": "7", "viii": "8", "ix": "9",
}

var articles = []string{"the ", "a ", "an "}

// Key folds a title into its comparison form: lowercase, no accents,
// no punctuation, no leading articles, Arabic sequel numbers.
func Key(title string) string {
	s := strings.ToLower(title)
	s = romanRegex.ReplaceAllStringFunc(s, func(m string) string {
		if arabic, ok := romanToArabic[strings.TrimSpace(m)]; ok {
			return " " + arabic
		}
		return m
	})
	s = stripAccents(s)

	s = strings.NewReplacer("&", " and ", "-", " ", "'", "", ".", " ").Replace(s)

	// "Léon: The Professional" has an article after the colon too.
	parts := strings.Split(s, ":")
	for i, p := range parts {
		parts[i] = trimArticle(strings.TrimSpace(p))
	}
	s = strings.Join(parts, " ")

	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func trimArticle(s string) string {
	for _, a := range articles {
		if rest, ok := strings.CutPrefix(s, a); ok {
			return rest
		}
	}
	return s
}
