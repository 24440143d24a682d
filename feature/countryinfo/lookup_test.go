package countryinfo

import (
	"context"
	"testing"

	"country-info/feature/countryinfo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNormalizeAlias(t *testing.T) {
	assert.Equal(t, "ax", NormalizeAlias("AX"))
	assert.Equal(t, "åland islands", NormalizeAlias("Åland Islands"))
	assert.Equal(t, "", NormalizeAlias(""))
}

func TestTransliterate(t *testing.T) {
	assert.Equal(t, "Aland", Transliterate("Åland"))
	assert.Equal(t, "Cote d'Ivoire", Transliterate("Côte d'Ivoire"))
	assert.Equal(t, "Finland", Transliterate("Finland"))
	assert.Equal(t, "aland islands", ASCIIAlias("Åland Islands"))
}

func TestAliases(t *testing.T) {
	rec := models.CountryRecord{
		GeoID:          661882,
		ISO2:           "AX",
		ISO3:           "ALA",
		Name:           "Åland",
		AlternateNames: []string{"Åland Islands"},
	}

	assert.Equal(t, []string{"ax", "ala", "åland", "aland", "åland islands", "aland islands"}, Aliases(rec))
}

func TestContribute(t *testing.T) {
	t.Run("SkipsEmptyKeys", func(t *testing.T) {
		index := make(models.LookupIndex)
		Contribute(index, models.CountryRecord{GeoID: 1, ISO2: "XK", Name: "Kosovo"})

		assert.NotContains(t, index, "")
		assert.Equal(t, 1, index["xk"])
		assert.Equal(t, 1, index["kosovo"])
	})

	t.Run("LastWriteWins", func(t *testing.T) {
		index := make(models.LookupIndex)
		Contribute(index, models.CountryRecord{GeoID: 1, ISO2: "AA", Name: "Shared"})
		Contribute(index, models.CountryRecord{GeoID: 2, ISO2: "BB", Name: "Other", AlternateNames: []string{"Shared"}})

		assert.Equal(t, 2, index["shared"])
		assert.Equal(t, 1, index["aa"])
	})

	t.Run("NoDerivedFields", func(t *testing.T) {
		index := make(models.LookupIndex)
		Contribute(index, models.CountryRecord{
			GeoID: 1, ISO2: "IN", ISO3: "IND", Name: "India",
			States:    []string{"Kerala"},
			Languages: []string{"Hindi"},
			Timezones: []string{"GMT+5.5"},
		})

		assert.NotContains(t, index, "kerala")
		assert.NotContains(t, index, "hindi")
		assert.NotContains(t, index, "gmt+5.5")
	})
}

func TestLookup_RoundTrip(t *testing.T) {
	src := newFakeSource()
	store := &memStore{}
	builder := NewBuilder(src, store, zap.NewNop())
	_, err := builder.Build(context.Background())
	require.NoError(t, err)

	records, err := store.LoadRecords(context.Background())
	require.NoError(t, err)
	index, err := store.LoadIndex(context.Background())
	require.NoError(t, err)

	for id, rec := range records {
		for _, alias := range Aliases(rec) {
			got, ok := index[alias]
			require.True(t, ok, "alias %q missing", alias)
			assert.Equal(t, id, got, "alias %q", alias)
		}
	}
}

func TestLookup_CaseAndTransliterationInsensitive(t *testing.T) {
	store := &memStore{}
	logger := zap.NewNop()
	cache := NewCache(store, NewBuilder(newFakeSource(), store, logger), true, logger)

	for _, alias := range []string{"AX", "ax", "ALA", "Åland", "åland", "ALAND", "aland islands", "ÅLAND ISLANDS", "Ahvenanmaa"} {
		rec, err := cache.LoadRecord(context.Background(), alias)
		require.NoError(t, err, alias)
		assert.Equal(t, 661882, rec.GeoID, alias)
	}
}
