package countryinfo

import "country-info/feature/countryinfo/models"

// Aliases returns the index keys a record contributes, in write order: ISO2,
// ISO3, name and its transliteration, then each alternate name and its
// transliteration. States, languages and timezones are not indexed.
func Aliases(rec models.CountryRecord) []string {
	keys := []string{
		NormalizeAlias(rec.ISO2),
		NormalizeAlias(rec.ISO3),
		NormalizeAlias(rec.Name),
		ASCIIAlias(rec.Name),
	}
	for _, alt := range rec.AlternateNames {
		keys = append(keys, NormalizeAlias(alt), ASCIIAlias(alt))
	}
	return keys
}

// Contribute writes the aliases of rec into index. An alias already owned by
// another country is overwritten; collisions are not errors.
func Contribute(index models.LookupIndex, rec models.CountryRecord) {
	for _, key := range Aliases(rec) {
		if key == "" {
			continue
		}
		index[key] = rec.GeoID
	}
}
