package countryinfo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimezone(t *testing.T) {
	tests := []struct {
		offset string
		want   string
	}{
		{"0", "GMT"},
		{"0.0", "GMT"},
		{"-0.0", "GMT"},
		{"5.5", "GMT+5.5"},
		{"+1.0", "GMT+1.0"},
		{"-6.0", "GMT-6.0"},
		{" 10.0 ", "GMT+10.0"},
		{"", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.offset, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimezone(tt.offset))
		})
	}
}

func TestFormatTimezones_SkipsBlank(t *testing.T) {
	assert.Equal(t, []string{"GMT+1.0"}, FormatTimezones([]string{"", "1.0", " "}))
}

func TestFormatTimezones_Dedupes(t *testing.T) {
	zones := FormatTimezones([]string{"0", "0.0", "-5.0", "1.0", "-5.0"})
	assert.Equal(t, []string{"GMT", "GMT-5.0", "GMT+1.0"}, zones)

	assert.NotNil(t, FormatTimezones(nil))
	assert.Empty(t, FormatTimezones(nil))
}

func TestParseLanguageEntry(t *testing.T) {
	code, region := ParseLanguageEntry("en-US")
	assert.Equal(t, "en", code)
	assert.Equal(t, "US", region)

	code, region = ParseLanguageEntry("en")
	assert.Equal(t, "en", code)
	assert.Empty(t, region)

	// Only the first dash splits
	code, region = ParseLanguageEntry("zh-Hant-TW")
	assert.Equal(t, "zh", code)
	assert.Equal(t, "Hant-TW", region)
}

func TestFormatLanguage(t *testing.T) {
	assert.Equal(t, "English (US)", FormatLanguage("English", "US"))
	assert.Equal(t, "English", FormatLanguage("English", ""))
}

func TestSplitCodes(t *testing.T) {
	assert.Equal(t, []string{"NO", "RU", "SE"}, SplitCodes("NO,RU,SE"))
	assert.Equal(t, []string{"NO", "SE"}, SplitCodes(" NO, ,SE,"))
	assert.Empty(t, SplitCodes(""))
	assert.Empty(t, SplitCodes("  "))
}

func TestContinentName(t *testing.T) {
	name, err := ContinentName("AN")
	require.NoError(t, err)
	assert.Equal(t, "Antarctica", name)

	_, err = ContinentName("XX")
	assert.True(t, errors.Is(err, ErrUnknownContinent))
}

func TestAggregator_Aggregate(t *testing.T) {
	src := newFakeSource()
	agg := NewAggregator(src)

	rec, err := agg.Aggregate(context.Background(), src.countries[1])
	require.NoError(t, err)

	assert.Equal(t, 660013, rec.GeoID)
	assert.Equal(t, "FI", rec.ISO2)
	assert.Equal(t, "FIN", rec.ISO3)
	assert.Equal(t, "Finland", rec.Name)
	assert.Equal(t, "Europe", rec.Continent)
	assert.Equal(t, "5518050", rec.Population)
	assert.Equal(t, 337030.0, rec.Area)
	// RU is not in the source and is dropped
	assert.Equal(t, []string{"Norway", "Sweden"}, rec.Neighbours)
	assert.Equal(t, []string{"Finnish (FI)", "Swedish (FI)", "Inari Sami"}, rec.Languages)
	assert.Equal(t, []string{"Suomi"}, rec.AlternateNames)
	assert.Equal(t, []string{"Uusimaa"}, rec.States)
	assert.Equal(t, []string{"GMT+2.0"}, rec.Timezones)
}

func TestAggregator_EmptyRelations(t *testing.T) {
	src := newFakeSource()
	delete(src.altNames, 661882)
	delete(src.states, "AX")
	delete(src.offsets, "AX")

	rec, err := NewAggregator(src).Aggregate(context.Background(), src.countries[0])
	require.NoError(t, err)

	assert.NotNil(t, rec.Neighbours)
	assert.Empty(t, rec.Neighbours)
	assert.NotNil(t, rec.AlternateNames)
	assert.NotNil(t, rec.States)
	assert.NotNil(t, rec.Timezones)
}

func TestAggregator_NeighboursNotSymmetric(t *testing.T) {
	src := newFakeSource()
	agg := NewAggregator(src)

	// FI lists SE but AX lists nobody, and nothing is inferred in reverse
	fi, err := agg.Aggregate(context.Background(), src.countries[1])
	require.NoError(t, err)
	ax, err := agg.Aggregate(context.Background(), src.countries[0])
	require.NoError(t, err)

	assert.NotEmpty(t, fi.Neighbours)
	assert.Empty(t, ax.Neighbours)
}

func TestAggregator_UnknownLanguage(t *testing.T) {
	src := newFakeSource()
	row := src.countries[2]
	row.Languages = "en-IN,xx"

	_, err := NewAggregator(src).Aggregate(context.Background(), row)
	assert.True(t, errors.Is(err, ErrUnknownLanguage))
	assert.Contains(t, err.Error(), `"xx"`)
}

func TestAggregator_BlankLanguageCode(t *testing.T) {
	src := newFakeSource()
	row := src.countries[2]
	row.Languages = "-IN"

	_, err := NewAggregator(src).Aggregate(context.Background(), row)
	assert.True(t, errors.Is(err, ErrUnknownLanguage))
}

func TestAggregator_UnknownContinent(t *testing.T) {
	src := newFakeSource()
	row := src.countries[2]
	row.Continent = "ZZ"

	_, err := NewAggregator(src).Aggregate(context.Background(), row)
	assert.True(t, errors.Is(err, ErrUnknownContinent))
}

func TestIsDirectSubdivision(t *testing.T) {
	assert.True(t, IsDirectSubdivision("IN", "IN.16"))
	assert.False(t, IsDirectSubdivision("IN", "IN.16.123"))
	assert.False(t, IsDirectSubdivision("IN", "IND.16"))
	assert.False(t, IsDirectSubdivision("IN", "IN."))
	assert.False(t, IsDirectSubdivision("IN", "ID.16"))
}

func TestIsExcludedNameTag(t *testing.T) {
	assert.True(t, IsExcludedNameTag("link"))
	assert.True(t, IsExcludedNameTag("wkdt"))
	assert.False(t, IsExcludedNameTag("en"))
	assert.False(t, IsExcludedNameTag(""))
}
