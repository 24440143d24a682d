package countryinfo

import (
	"context"

	"country-info/feature/countryinfo/models"
)

// ArtifactStore persists the record collection and the lookup index.
type ArtifactStore interface {
	// Exists reports whether both artifacts are present.
	Exists(ctx context.Context) (bool, error)
	// Save replaces both artifacts. Until it succeeds the previous pair stays readable.
	Save(ctx context.Context, records models.Records, index models.LookupIndex) error
	// LoadRecords returns the full geo id to record collection.
	LoadRecords(ctx context.Context) (models.Records, error)
	// LoadIndex returns the full alias to geo id collection.
	LoadIndex(ctx context.Context) (models.LookupIndex, error)
}
