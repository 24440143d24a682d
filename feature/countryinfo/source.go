package countryinfo

import (
	"context"
	"slices"
	"strings"

	"country-info/feature/countryinfo/models"
)

// ExcludedNameTags are alternate-name language tags that mark cross-reference
// links and Wikidata ids rather than display names.
var ExcludedNameTags = []string{"link", "wkdt"}

// SourceReader is the read-only query contract over the geonames tables.
type SourceReader interface {
	// Ready reports whether the source tables exist and hold countries.
	Ready(ctx context.Context) (bool, error)
	// Countries returns every row of the country table.
	Countries(ctx context.Context) ([]models.CountryRow, error)
	// CountryNames resolves ISO2 codes to country names. Unknown codes are dropped.
	CountryNames(ctx context.Context, iso2 []string) ([]string, error)
	// LanguageName resolves a 639-1, 639-2 or 639-3 code to its language name.
	LanguageName(ctx context.Context, code string) (string, bool, error)
	// AlternateNames returns the display alternate names of a geo id in source order.
	AlternateNames(ctx context.Context, geoID int) ([]string, error)
	// States returns the names of the first-level subdivisions of a country.
	States(ctx context.Context, iso2 string) ([]string, error)
	// GMTOffsets returns the distinct GMT offsets of a country as stored text.
	GMTOffsets(ctx context.Context, iso2 string) ([]string, error)
}

// IsDirectSubdivision reports whether an admin code sits exactly one level
// below the country prefix: "IN.16" is, "IN.16.123" and "IND.16" are not.
func IsDirectSubdivision(iso2, code string) bool {
	rest, ok := strings.CutPrefix(code, iso2+".")
	return ok && rest != "" && !strings.Contains(rest, ".")
}

// IsExcludedNameTag reports whether an alternate-name tag is not a display name.
func IsExcludedNameTag(tag string) bool {
	return slices.Contains(ExcludedNameTags, tag)
}
