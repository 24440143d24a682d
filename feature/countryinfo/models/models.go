package models

// CountryRecord is the denormalized view of one country.
// Records are built once per country and never mutated afterwards.
type CountryRecord struct {
	GeoID          int      `json:"geo_id"`
	ISO2           string   `json:"iso2"`
	ISO3           string   `json:"iso3"`
	ISONumeric     string   `json:"iso_numeric"`
	Fips           string   `json:"fips"`
	Name           string   `json:"name"`
	AlternateNames []string `json:"alternate_names"`
	Capital        string   `json:"capital"`
	States         []string `json:"states"`
	Area           float64  `json:"area"`
	Population     string   `json:"population"`
	Continent      string   `json:"continent"`
	Tld            string   `json:"tld"`
	CurrencyCode   string   `json:"currency_code"`
	CurrencyName   string   `json:"currency_name"`
	Phone          string   `json:"phone"`
	ZipFormat      string   `json:"zip_format"`
	ZipRegex       string   `json:"zip_regex"`
	Languages      []string `json:"languages"`
	Neighbours     []string `json:"neighbours"`
	EquivalentFips string   `json:"equivalent_fips"`
	Timezones      []string `json:"timezones"`
}

// Currency pairs an ISO 4217 code with its display name.
type Currency struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Records maps geo id to its country record.
type Records map[int]CountryRecord

// LookupIndex maps a normalized alias to a geo id.
// Several aliases may point at the same id; the last write for a key wins.
type LookupIndex map[string]int
