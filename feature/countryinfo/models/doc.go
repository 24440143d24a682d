// Package models defines the country-info data shapes: the persisted
// CountryRecord and LookupIndex artifacts, and the GORM row models for the
// five geonames source tables they are built from.
package models
