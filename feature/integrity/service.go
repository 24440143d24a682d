package integrity

import (
	"context"

	"country-info/feature/countryinfo"
	"country-info/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	db     *gorm.DB
	store  countryinfo.ArtifactStore
	logger *zap.Logger
}

// NewService creates a new integrity service. db may be nil when the
// geonames source is not configured.
func NewService(db *gorm.DB, store countryinfo.ArtifactStore, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		store:  store,
		logger: logger,
	}
}

// CheckSource validates the geonames tables against the row models.
func (s *Service) CheckSource() (*checks.SourceReport, error) {
	return checks.CheckSource(s.db)
}

// CheckArtifacts reports whether the artifacts are built and consistent.
func (s *Service) CheckArtifacts(ctx context.Context) (*checks.ArtifactReport, error) {
	return checks.CheckArtifacts(ctx, s.store)
}
