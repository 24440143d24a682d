// Package utils provides common utility functions for country-info.
// It includes loose type conversion helpers used where stored keys and
// projected fields cross a text boundary.
package utils
