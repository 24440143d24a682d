package countryinfo

import (
	"context"
	"maps"
	"sync"

	"country-info/feature/countryinfo/models"
)

// fakeSource is an in-memory SourceReader.
type fakeSource struct {
	ready     bool
	readyErr  error
	countries []models.CountryRow
	names     map[string]string
	languages map[string]string
	altNames  map[int][]string
	states    map[string][]string
	offsets   map[string][]string
}

func (f *fakeSource) Ready(ctx context.Context) (bool, error) {
	return f.ready, f.readyErr
}

func (f *fakeSource) Countries(ctx context.Context) ([]models.CountryRow, error) {
	return f.countries, nil
}

func (f *fakeSource) CountryNames(ctx context.Context, iso2 []string) ([]string, error) {
	names := []string{}
	for _, code := range iso2 {
		if name, ok := f.names[code]; ok {
			names = append(names, name)
		}
	}
	return names, nil
}

func (f *fakeSource) LanguageName(ctx context.Context, code string) (string, bool, error) {
	name, ok := f.languages[code]
	return name, ok, nil
}

func (f *fakeSource) AlternateNames(ctx context.Context, geoID int) ([]string, error) {
	return f.altNames[geoID], nil
}

func (f *fakeSource) States(ctx context.Context, iso2 string) ([]string, error) {
	return f.states[iso2], nil
}

func (f *fakeSource) GMTOffsets(ctx context.Context, iso2 string) ([]string, error) {
	return f.offsets[iso2], nil
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		ready: true,
		countries: []models.CountryRow{
			{
				ISO2: "AX", ISO3: "ALA", ISONumeric: "248", Name: "Åland", Capital: "Mariehamn",
				Area: 1580, Population: "26711", Continent: "EU", Tld: ".ax",
				CurrencyCode: "EUR", CurrencyName: "Euro", Phone: "+358-18",
				ZipFormat: "#####", ZipRegex: "^(?:FI)*(\\d{5})$",
				Languages: "sv-AX", GeoID: 661882,
			},
			{
				ISO2: "FI", ISO3: "FIN", ISONumeric: "246", Fips: "FI", Name: "Finland", Capital: "Helsinki",
				Area: 337030, Population: "5518050", Continent: "EU", Tld: ".fi",
				CurrencyCode: "EUR", CurrencyName: "Euro", Phone: "358",
				Languages: "fi-FI,sv-FI,smn", GeoID: 660013, Neighbours: "NO,RU,SE",
			},
			{
				ISO2: "IN", ISO3: "IND", ISONumeric: "356", Fips: "IN", Name: "India", Capital: "New Delhi",
				Area: 3287590, Population: "1352617328", Continent: "AS", Tld: ".in",
				CurrencyCode: "INR", CurrencyName: "Rupee", Phone: "91",
				Languages: "en-IN,hi", GeoID: 1269750, Neighbours: "CN,NP",
			},
		},
		names: map[string]string{
			"AX": "Åland", "FI": "Finland", "IN": "India",
			"NO": "Norway", "SE": "Sweden", "CN": "China", "NP": "Nepal",
		},
		languages: map[string]string{
			"sv": "Swedish", "fi": "Finnish", "smn": "Inari Sami", "en": "English", "hi": "Hindi",
		},
		altNames: map[int][]string{
			661882:  {"Ahvenanmaa", "Åland Islands"},
			660013:  {"Suomi"},
			1269750: {"Bharat", "Republic of India"},
		},
		states: map[string][]string{
			"AX": {"Mariehamns stad", "Ålands landsbygd"},
			"FI": {"Uusimaa"},
			"IN": {"Maharashtra", "Kerala"},
		},
		offsets: map[string][]string{
			"AX": {"2.0"},
			"FI": {"2.0"},
			"IN": {"5.5"},
		},
	}
}

// memStore is an in-memory ArtifactStore that counts its calls.
type memStore struct {
	mu      sync.Mutex
	records models.Records
	index   models.LookupIndex
	saveErr error
	saves   int
	loads   int
}

func (m *memStore) Exists(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records != nil && m.index != nil, nil
}

func (m *memStore) Save(ctx context.Context, records models.Records, index models.LookupIndex) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records = maps.Clone(records)
	m.index = maps.Clone(index)
	return nil
}

func (m *memStore) LoadRecords(ctx context.Context) (models.Records, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.records == nil {
		return nil, ErrArtifactsMissing
	}
	return maps.Clone(m.records), nil
}

func (m *memStore) LoadIndex(ctx context.Context) (models.LookupIndex, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
	if m.index == nil {
		return nil, ErrArtifactsMissing
	}
	return maps.Clone(m.index), nil
}

func (m *memStore) loadCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loads
}
