package countryinfo

import (
	"fmt"
	"slices"
	"strings"

	"country-info/feature/countryinfo/models"
)

// Country is a read-only projection over one resolved record.
// The zero value is an unresolved country: every accessor reports absence.
type Country struct {
	record *models.CountryRecord
}

// NewCountry wraps a resolved record.
func NewCountry(rec models.CountryRecord) Country {
	return Country{record: &rec}
}

// Found reports whether a record was resolved.
func (c Country) Found() bool {
	return c.record != nil
}

// Info returns a copy of the full record.
func (c Country) Info() (models.CountryRecord, bool) {
	if c.record == nil {
		return models.CountryRecord{}, false
	}
	rec := *c.record
	rec.AlternateNames = slices.Clone(rec.AlternateNames)
	rec.States = slices.Clone(rec.States)
	rec.Languages = slices.Clone(rec.Languages)
	rec.Neighbours = slices.Clone(rec.Neighbours)
	rec.Timezones = slices.Clone(rec.Timezones)
	return rec, true
}

// Name returns the country name.
func (c Country) Name() (string, bool) {
	if c.record == nil {
		return "", false
	}
	return c.record.Name, true
}

// Capital returns the capital city.
func (c Country) Capital() (string, bool) {
	if c.record == nil {
		return "", false
	}
	return c.record.Capital, true
}

// Continent returns the continent name.
func (c Country) Continent() (string, bool) {
	if c.record == nil {
		return "", false
	}
	return c.record.Continent, true
}

// Currency returns the currency code and name.
func (c Country) Currency() (models.Currency, bool) {
	if c.record == nil {
		return models.Currency{}, false
	}
	return models.Currency{Code: c.record.CurrencyCode, Name: c.record.CurrencyName}, true
}

// Population returns the population as stored.
func (c Country) Population() (string, bool) {
	if c.record == nil {
		return "", false
	}
	return c.record.Population, true
}

// States returns the first-level subdivisions.
func (c Country) States() ([]string, bool) {
	if c.record == nil {
		return nil, false
	}
	return slices.Clone(c.record.States), true
}

// Neighbours returns the names of bordering countries.
func (c Country) Neighbours() ([]string, bool) {
	if c.record == nil {
		return nil, false
	}
	return slices.Clone(c.record.Neighbours), true
}

// Neighbors is an alias of Neighbours.
func (c Country) Neighbors() ([]string, bool) {
	return c.Neighbours()
}

// AlternateNames returns the alternate display names.
func (c Country) AlternateNames() ([]string, bool) {
	if c.record == nil {
		return nil, false
	}
	return slices.Clone(c.record.AlternateNames), true
}

// Timezones returns the formatted GMT offsets.
func (c Country) Timezones() ([]string, bool) {
	if c.record == nil {
		return nil, false
	}
	return slices.Clone(c.record.Timezones), true
}

// Languages returns the spoken languages, regional variants included.
func (c Country) Languages() ([]string, bool) {
	if c.record == nil {
		return nil, false
	}
	return slices.Clone(c.record.Languages), true
}

// Fields lists the names accepted by Field.
var Fields = []string{
	"info", "name", "capital", "continent", "currency", "population",
	"states", "neighbours", "neighbors", "alternate_names", "timezones", "languages",
}

// Field projects a single accessor by name. Names are case-insensitive and
// "alternatenames" is accepted for alternate_names.
func (c Country) Field(name string) (any, bool, error) {
	switch strings.ToLower(name) {
	case "info":
		return wrap(c.Info())
	case "name":
		return wrap(c.Name())
	case "capital":
		return wrap(c.Capital())
	case "continent":
		return wrap(c.Continent())
	case "currency":
		return wrap(c.Currency())
	case "population":
		return wrap(c.Population())
	case "states":
		return wrap(c.States())
	case "neighbours", "neighbors":
		return wrap(c.Neighbours())
	case "alternate_names", "alternatenames":
		return wrap(c.AlternateNames())
	case "timezones":
		return wrap(c.Timezones())
	case "languages":
		return wrap(c.Languages())
	default:
		return nil, false, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
}

func wrap[T any](v T, ok bool) (any, bool, error) {
	if !ok {
		return nil, false, nil
	}
	return v, true, nil
}
