package countryinfo

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeAlias lower-cases an alias the way the lookup index keys are stored.
func NormalizeAlias(s string) string {
	// Casers carry state and are not safe for concurrent use
	return cases.Lower(language.Und).String(s)
}

// Transliterate folds diacritics and non-Latin scripts to their closest ASCII spelling.
func Transliterate(s string) string {
	return strings.TrimSpace(unidecode.Unidecode(s))
}

// ASCIIAlias is the lower-cased transliteration of s.
func ASCIIAlias(s string) string {
	return NormalizeAlias(Transliterate(s))
}
