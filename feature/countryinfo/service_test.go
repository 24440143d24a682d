package countryinfo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(src *fakeSource) (*Service, *memStore) {
	cache, store := newTestCache(src, true)
	return NewService(cache, zap.NewNop()), store
}

func TestService_Country(t *testing.T) {
	svc, _ := newTestService(newFakeSource())

	country, err := svc.Country(context.Background(), "Republic of India")
	require.NoError(t, err)
	require.True(t, country.Found())

	capital, ok := country.Capital()
	assert.True(t, ok)
	assert.Equal(t, "New Delhi", capital)

	languages, _ := country.Languages()
	assert.Equal(t, []string{"English (IN)", "Hindi"}, languages)
}

func TestService_CountryNotFound(t *testing.T) {
	svc, _ := newTestService(newFakeSource())

	country, err := svc.Country(context.Background(), "Narnia")
	require.NoError(t, err)
	assert.False(t, country.Found())
}

func TestService_CountrySourceMissing(t *testing.T) {
	src := newFakeSource()
	src.ready = false
	svc, _ := newTestService(src)

	_, err := svc.Country(context.Background(), "IN")
	assert.ErrorIs(t, err, ErrSourceMissing)
}

func TestService_Build(t *testing.T) {
	svc, store := newTestService(newFakeSource())

	report, err := svc.Build(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, report.Skipped)

	report, err = svc.Build(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, report.Skipped)

	report, err = svc.Build(context.Background(), true)
	require.NoError(t, err)
	assert.False(t, report.Skipped)
	assert.Equal(t, 2, store.saves)
}

func TestService_All(t *testing.T) {
	svc, _ := newTestService(newFakeSource())

	all, err := svc.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "Finland", all[660013].Name)
}
