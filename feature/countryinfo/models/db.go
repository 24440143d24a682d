package models

// CountryRow represents the 'countryinfo' table of the geonames import.
// Neighbours and Languages hold the raw comma-joined code lists.
type CountryRow struct {
	ISO2           string  `gorm:"column:iso2;primaryKey"`
	ISO3           string  `gorm:"column:iso3"`
	ISONumeric     string  `gorm:"column:iso_numeric"`
	Fips           string  `gorm:"column:fips_code"`
	Name           string  `gorm:"column:name"`
	Capital        string  `gorm:"column:capital"`
	Area           float64 `gorm:"column:area"`
	Population     string  `gorm:"column:population"`
	Continent      string  `gorm:"column:continent"`
	Tld            string  `gorm:"column:tld"`
	CurrencyCode   string  `gorm:"column:currency"`
	CurrencyName   string  `gorm:"column:currencyname"`
	Phone          string  `gorm:"column:phone"`
	ZipFormat      string  `gorm:"column:zipcode_format"`
	ZipRegex       string  `gorm:"column:zipcode_regex"`
	Languages      string  `gorm:"column:languages"`
	GeoID          int     `gorm:"column:geonameid"`
	Neighbours     string  `gorm:"column:neighbours"`
	EquivalentFips string  `gorm:"column:equivalent_fipscode"`
}

// TableName overrides the table name for country rows.
func (CountryRow) TableName() string {
	return "countryinfo"
}

// LanguageRow represents the 'languages' table (iso-languagecodes.txt).
type LanguageRow struct {
	ISO6393  string `gorm:"column:iso639_3"`
	ISO6392  string `gorm:"column:iso639_2"`
	ISO6391  string `gorm:"column:iso639_1"`
	Language string `gorm:"column:language"`
}

// TableName overrides the table name for language rows.
func (LanguageRow) TableName() string {
	return "languages"
}

// AlternateNameRow represents the 'countryaltnames' table, the alternate
// names restricted to country geo ids.
type AlternateNameRow struct {
	ID            int    `gorm:"column:alternatenameid;primaryKey"`
	GeoID         int    `gorm:"column:geonameid"`
	ISOLanguage   string `gorm:"column:isolanguage"`
	AlternateName string `gorm:"column:alternate_name"`
}

// TableName overrides the table name for alternate name rows.
func (AlternateNameRow) TableName() string {
	return "countryaltnames"
}

// AdminCodeRow represents the 'admincodes' table (admin1 and admin2 codes).
// Code is dot-delimited: "IN.16" for a state, "IN.16.123" for a district.
type AdminCodeRow struct {
	Code      string `gorm:"column:code;primaryKey"`
	Name      string `gorm:"column:name"`
	ASCIIName string `gorm:"column:asciiname"`
	GeoID     int    `gorm:"column:geonameid"`
}

// TableName overrides the table name for admin code rows.
func (AdminCodeRow) TableName() string {
	return "admincodes"
}

// TimezoneRow represents the 'timezones' table (timeZones.txt).
// Offsets are kept as text exactly as imported.
type TimezoneRow struct {
	Country    string `gorm:"column:country"`
	TimezoneID string `gorm:"column:timezoneid"`
	GMTOffset  string `gorm:"column:gmt_offset"`
	DSTOffset  string `gorm:"column:dst_offset"`
	RawOffset  string `gorm:"column:raw_offset"`
}

// TableName overrides the table name for timezone rows.
func (TimezoneRow) TableName() string {
	return "timezones"
}

// SourceModels lists the row models the build reads from, in dependency order.
func SourceModels() []any {
	return []any{&CountryRow{}, &LanguageRow{}, &AlternateNameRow{}, &AdminCodeRow{}, &TimezoneRow{}}
}
