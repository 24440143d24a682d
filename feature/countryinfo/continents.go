package countryinfo

import "fmt"

// Continents maps the geonames two-letter continent codes to their names.
var Continents = map[string]string{
	"AF": "Africa",
	"AS": "Asia",
	"EU": "Europe",
	"NA": "North America",
	"OC": "Oceania",
	"SA": "South America",
	"AN": "Antarctica",
}

// ContinentName resolves a continent code to its full name.
func ContinentName(code string) (string, error) {
	name, ok := Continents[code]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownContinent, code)
	}
	return name, nil
}
