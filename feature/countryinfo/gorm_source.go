package countryinfo

import (
	"context"
	"fmt"

	"country-info/feature/countryinfo/models"

	"gorm.io/gorm"
)

// GormSource reads the geonames tables through GORM (MySQL or SQLite).
type GormSource struct {
	db *gorm.DB
}

// NewGormSource creates a source reader. A nil db is a valid, never-ready source.
func NewGormSource(db *gorm.DB) *GormSource {
	return &GormSource{db: db}
}

// Ready reports whether every source table exists and the country table is non-empty.
func (s *GormSource) Ready(ctx context.Context) (bool, error) {
	if s.db == nil {
		return false, nil
	}

	migrator := s.db.WithContext(ctx).Migrator()
	for _, model := range models.SourceModels() {
		if !migrator.HasTable(model) {
			return false, nil
		}
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.CountryRow{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count countries: %w", err)
	}
	return count > 0, nil
}

// Countries returns every country row.
func (s *GormSource) Countries(ctx context.Context) ([]models.CountryRow, error) {
	var rows []models.CountryRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load countries: %w", err)
	}
	return rows, nil
}

// CountryNames resolves ISO2 codes in one query and returns the names in input order.
func (s *GormSource) CountryNames(ctx context.Context, iso2 []string) ([]string, error) {
	if len(iso2) == 0 {
		return []string{}, nil
	}

	var rows []models.CountryRow
	err := s.db.WithContext(ctx).
		Select("iso2", "name").
		Where("iso2 IN ?", iso2).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve neighbours %v: %w", iso2, err)
	}

	byCode := make(map[string]string, len(rows))
	for _, row := range rows {
		byCode[row.ISO2] = row.Name
	}

	names := make([]string, 0, len(rows))
	for _, code := range iso2 {
		if name, ok := byCode[code]; ok {
			names = append(names, name)
		}
	}
	return names, nil
}

// LanguageName matches code against the three ISO 639 columns and returns the first distinct name.
func (s *GormSource) LanguageName(ctx context.Context, code string) (string, bool, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&models.LanguageRow{}).
		Where("iso639_1 = ? OR iso639_2 = ? OR iso639_3 = ?", code, code, code).
		Distinct().
		Limit(1).
		Pluck("language", &names).Error
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve language %q: %w", code, err)
	}
	if len(names) == 0 {
		return "", false, nil
	}
	return names[0], true, nil
}

// AlternateNames returns display names for geoID, skipping link and wkdt rows.
func (s *GormSource) AlternateNames(ctx context.Context, geoID int) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&models.AlternateNameRow{}).
		Where("geonameid = ?", geoID).
		Where("isolanguage IS NULL OR isolanguage NOT IN ?", ExcludedNameTags).
		Order("alternatenameid").
		Pluck("alternate_name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load alternate names for %d: %w", geoID, err)
	}
	return names, nil
}

// States returns first-level subdivision names. The LIKE narrows the scan;
// IsDirectSubdivision decides depth.
func (s *GormSource) States(ctx context.Context, iso2 string) ([]string, error) {
	var rows []models.AdminCodeRow
	err := s.db.WithContext(ctx).
		Where("code LIKE ?", iso2+".%").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load states for %s: %w", iso2, err)
	}

	states := make([]string, 0, len(rows))
	for _, row := range rows {
		if IsDirectSubdivision(iso2, row.Code) {
			states = append(states, row.Name)
		}
	}
	return states, nil
}

// GMTOffsets returns the distinct stored GMT offsets for a country.
func (s *GormSource) GMTOffsets(ctx context.Context, iso2 string) ([]string, error) {
	var offsets []string
	err := s.db.WithContext(ctx).
		Model(&models.TimezoneRow{}).
		Where("country = ?", iso2).
		Distinct().
		Pluck("gmt_offset", &offsets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load timezones for %s: %w", iso2, err)
	}
	return offsets, nil
}
