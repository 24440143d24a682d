package countryinfo

import "errors"

var (
	// ErrSourceMissing means the relational source has not been populated yet.
	ErrSourceMissing = errors.New("geonames source is not populated: download and import countryInfo, iso-languagecodes, timeZones, admin codes and alternate names before building")
	// ErrUnknownLanguage means a country lists a language code absent from the language table.
	ErrUnknownLanguage = errors.New("unknown language code")
	// ErrUnknownContinent means a country carries a continent code outside the fixed enumeration.
	ErrUnknownContinent = errors.New("unknown continent code")
	// ErrNotFound means no country is indexed under the queried alias.
	ErrNotFound = errors.New("country information not found")
	// ErrArtifactsMissing means the record or index artifact has not been built.
	ErrArtifactsMissing = errors.New("country artifacts have not been built")
	// ErrUnknownField means a projection asked for a field the facade does not expose.
	ErrUnknownField = errors.New("unknown country field")
)
