package countryinfo

import (
	"context"
	"fmt"
	"time"

	"country-info/feature/countryinfo/models"

	"go.uber.org/zap"
)

// BuildReport summarizes one build run.
type BuildReport struct {
	// Skipped is true when both artifacts already existed.
	Skipped   bool  `json:"skipped"`
	Countries int   `json:"countries"`
	Aliases   int   `json:"aliases"`
	Duration  int64 `json:"duration_ms"`
}

// Builder runs the full aggregation pass and commits both artifacts.
type Builder struct {
	source     SourceReader
	store      ArtifactStore
	aggregator *Aggregator
	logger     *zap.Logger
}

// NewBuilder creates a builder reading from source and writing to store.
func NewBuilder(source SourceReader, store ArtifactStore, logger *zap.Logger) *Builder {
	return &Builder{
		source:     source,
		store:      store,
		aggregator: NewAggregator(source),
		logger:     logger,
	}
}

// Build aggregates every country and saves the records and lookup index.
// It does nothing when both artifacts already exist. Any failure aborts
// before the store is touched.
func (b *Builder) Build(ctx context.Context) (*BuildReport, error) {
	exists, err := b.store.Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check artifacts: %w", err)
	}
	if exists {
		b.logger.Debug("Country artifacts present, skipping build")
		return &BuildReport{Skipped: true}, nil
	}

	return b.run(ctx)
}

// Rebuild aggregates every country again and replaces both artifacts. The
// previous artifacts stay in place until the new ones are saved.
func (b *Builder) Rebuild(ctx context.Context) (*BuildReport, error) {
	return b.run(ctx)
}

func (b *Builder) run(ctx context.Context) (*BuildReport, error) {
	ready, err := b.source.Ready(ctx)
	if err != nil {
		return nil, err
	}
	if !ready {
		return nil, ErrSourceMissing
	}

	start := time.Now()
	b.logger.Info("Building country info and country lookup artifacts")

	rows, err := b.source.Countries(ctx)
	if err != nil {
		return nil, err
	}

	records, index, err := b.aggregate(ctx, rows)
	if err != nil {
		b.logger.Error("Country build aborted", zap.Error(err))
		return nil, err
	}

	if err := b.store.Save(ctx, records, index); err != nil {
		return nil, fmt.Errorf("failed to save artifacts: %w", err)
	}

	report := &BuildReport{
		Countries: len(records),
		Aliases:   len(index),
		Duration:  time.Since(start).Milliseconds(),
	}
	b.logger.Info("Country build complete",
		zap.Int("countries", report.Countries),
		zap.Int("aliases", report.Aliases),
		zap.Duration("execution_time", time.Since(start)),
	)
	return report, nil
}

func (b *Builder) aggregate(ctx context.Context, rows []models.CountryRow) (models.Records, models.LookupIndex, error) {
	records := make(models.Records, len(rows))
	index := make(models.LookupIndex)

	for i, row := range rows {
		rec, err := b.aggregator.Aggregate(ctx, row)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build %s (%d): %w", row.ISO2, row.GeoID, err)
		}
		records[rec.GeoID] = rec
		Contribute(index, rec)

		b.logger.Debug("Country aggregated",
			zap.String("iso2", rec.ISO2),
			zap.Int("progress", i+1),
			zap.Int("total", len(rows)),
		)
	}
	return records, index, nil
}
