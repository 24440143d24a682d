package countryinfo

import (
	"context"
	"errors"

	"country-info/feature/countryinfo/models"

	"go.uber.org/zap"
)

// Service answers country queries and triggers builds.
type Service struct {
	cache  *Cache
	logger *zap.Logger
}

// NewService creates a new country info service.
func NewService(cache *Cache, logger *zap.Logger) *Service {
	return &Service{cache: cache, logger: logger}
}

// Country resolves alias to a country. An unknown alias is not an error: the
// returned Country reports absence from every accessor.
func (s *Service) Country(ctx context.Context, alias string) (Country, error) {
	rec, err := s.cache.LoadRecord(ctx, alias)
	if errors.Is(err, ErrNotFound) {
		s.logger.Info("Country information not found", zap.String("alias", alias))
		return Country{}, nil
	}
	if err != nil {
		return Country{}, err
	}
	return NewCountry(rec), nil
}

// All returns every record keyed by geo id.
func (s *Service) All(ctx context.Context) (models.Records, error) {
	return s.cache.LoadAll(ctx)
}

// Build builds the artifacts if absent; force replaces existing ones.
func (s *Service) Build(ctx context.Context, force bool) (*BuildReport, error) {
	if force {
		return s.cache.Rebuild(ctx)
	}
	return s.cache.Build(ctx)
}
