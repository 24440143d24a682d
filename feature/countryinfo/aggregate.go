package countryinfo

import (
	"context"
	"fmt"
	"strings"

	"country-info/feature/countryinfo/models"
)

// Aggregator assembles one CountryRecord per country row from the source.
type Aggregator struct {
	source SourceReader
}

// NewAggregator creates an aggregator over the given source.
func NewAggregator(source SourceReader) *Aggregator {
	return &Aggregator{source: source}
}

// Aggregate resolves every relationship of row and returns its record.
// Unknown continent or language codes fail the whole record.
func (a *Aggregator) Aggregate(ctx context.Context, row models.CountryRow) (models.CountryRecord, error) {
	continent, err := ContinentName(row.Continent)
	if err != nil {
		return models.CountryRecord{}, err
	}

	neighbours, err := a.neighbours(ctx, row.Neighbours)
	if err != nil {
		return models.CountryRecord{}, err
	}

	languages, err := a.languages(ctx, row.Languages)
	if err != nil {
		return models.CountryRecord{}, err
	}

	altNames, err := a.source.AlternateNames(ctx, row.GeoID)
	if err != nil {
		return models.CountryRecord{}, err
	}

	states, err := a.source.States(ctx, row.ISO2)
	if err != nil {
		return models.CountryRecord{}, err
	}

	offsets, err := a.source.GMTOffsets(ctx, row.ISO2)
	if err != nil {
		return models.CountryRecord{}, err
	}

	return models.CountryRecord{
		GeoID:          row.GeoID,
		ISO2:           row.ISO2,
		ISO3:           row.ISO3,
		ISONumeric:     row.ISONumeric,
		Fips:           row.Fips,
		Name:           row.Name,
		AlternateNames: nonNil(altNames),
		Capital:        row.Capital,
		States:         nonNil(states),
		Area:           row.Area,
		Population:     row.Population,
		Continent:      continent,
		Tld:            row.Tld,
		CurrencyCode:   row.CurrencyCode,
		CurrencyName:   row.CurrencyName,
		Phone:          row.Phone,
		ZipFormat:      row.ZipFormat,
		ZipRegex:       row.ZipRegex,
		Languages:      languages,
		Neighbours:     nonNil(neighbours),
		EquivalentFips: row.EquivalentFips,
		Timezones:      FormatTimezones(offsets),
	}, nil
}

func (a *Aggregator) neighbours(ctx context.Context, raw string) ([]string, error) {
	codes := SplitCodes(raw)
	if len(codes) == 0 {
		return []string{}, nil
	}
	return a.source.CountryNames(ctx, codes)
}

func (a *Aggregator) languages(ctx context.Context, raw string) ([]string, error) {
	entries := SplitCodes(raw)
	languages := make([]string, 0, len(entries))
	for _, entry := range entries {
		code, region := ParseLanguageEntry(entry)
		if code == "" {
			// Blank codes would match rows with an empty ISO 639-1 column
			return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, entry)
		}
		name, ok, err := a.source.LanguageName(ctx, code)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
		}
		languages = append(languages, FormatLanguage(name, region))
	}
	return languages, nil
}

// SplitCodes splits a comma-joined code list, dropping blank entries.
func SplitCodes(raw string) []string {
	var codes []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			codes = append(codes, part)
		}
	}
	return codes
}

// ParseLanguageEntry splits "en-US" into ("en", "US") on the first dash.
// A bare code has an empty region.
func ParseLanguageEntry(entry string) (code, region string) {
	code, region, _ = strings.Cut(entry, "-")
	return code, region
}

// FormatLanguage renders "English" or "English (US)".
func FormatLanguage(name, region string) string {
	if region == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, region)
}

// FormatTimezone renders a stored GMT offset: "GMT" for zero, "GMT+5.5" for
// positive and "GMT-6.0" for negative offsets. The text is kept as stored;
// only its sign is inspected. A blank offset renders as "".
func FormatTimezone(offset string) string {
	offset = strings.TrimSpace(offset)
	switch {
	case offset == "":
		return ""
	case isZeroOffset(offset):
		return "GMT"
	case strings.HasPrefix(offset, "-"):
		return "GMT" + offset
	default:
		return "GMT+" + strings.TrimPrefix(offset, "+")
	}
}

// FormatTimezones formats offsets, keeping the first occurrence of each
// result and skipping blank offsets.
func FormatTimezones(offsets []string) []string {
	seen := make(map[string]struct{}, len(offsets))
	zones := make([]string, 0, len(offsets))
	for _, offset := range offsets {
		zone := FormatTimezone(offset)
		if zone == "" {
			continue
		}
		if _, dup := seen[zone]; dup {
			continue
		}
		seen[zone] = struct{}{}
		zones = append(zones, zone)
	}
	return zones
}

// isZeroOffset reports whether every digit in offset is zero ("0", "0.0", "+0.00", "-0.0").
func isZeroOffset(offset string) bool {
	digits := 0
	for _, r := range offset {
		switch {
		case r == '0':
			digits++
		case r >= '1' && r <= '9':
			return false
		}
	}
	return digits > 0
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
