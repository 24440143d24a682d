package countryinfo

import (
	"context"
	"maps"
	"sync"
	"time"

	"country-info/feature/countryinfo/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Snapshot is one loaded pair of artifacts. It is shared between readers and
// must not be mutated.
type Snapshot struct {
	Records models.Records
	Index   models.LookupIndex
	Loaded  time.Time
}

// Cache keeps the loaded artifacts in memory for repeated queries.
// The snapshot is only replaced by Rebuild or an explicit Invalidate; the
// artifacts are treated as immutable between rebuilds.
type Cache struct {
	store     ArtifactStore
	builder   *Builder
	autoBuild bool
	logger    *zap.Logger

	mu       sync.RWMutex
	snapshot *Snapshot
	sf       singleflight.Group
	buildMu  sync.Mutex
}

// NewCache creates an empty cache. With autoBuild the first load builds
// missing artifacts; without it a load before any build fails with ErrArtifactsMissing.
func NewCache(store ArtifactStore, builder *Builder, autoBuild bool, logger *zap.Logger) *Cache {
	return &Cache{
		store:     store,
		builder:   builder,
		autoBuild: autoBuild,
		logger:    logger,
	}
}

// Snapshot returns the loaded artifacts, loading them on first use.
// Concurrent first callers share a single load.
func (c *Cache) Snapshot(ctx context.Context) (*Snapshot, error) {
	c.mu.RLock()
	snap := c.snapshot
	c.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}

	// The load is shared, so one caller's cancellation must not fail the others
	loadCtx := context.WithoutCancel(ctx)
	result, err, _ := c.sf.Do("snapshot", func() (interface{}, error) {
		c.mu.RLock()
		snap := c.snapshot
		c.mu.RUnlock()
		if snap != nil {
			return snap, nil
		}

		snap, err := c.load(loadCtx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.snapshot = snap
		c.mu.Unlock()
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Snapshot), nil
}

// LoadRecord resolves alias through the index and returns its record.
// A miss returns ErrNotFound.
func (c *Cache) LoadRecord(ctx context.Context, alias string) (models.CountryRecord, error) {
	snap, err := c.Snapshot(ctx)
	if err != nil {
		return models.CountryRecord{}, err
	}

	id, ok := snap.Index[NormalizeAlias(alias)]
	if !ok {
		return models.CountryRecord{}, ErrNotFound
	}
	rec, ok := snap.Records[id]
	if !ok {
		// Index points at a record the collection does not hold
		c.logger.Warn("Lookup index references a missing record", zap.String("alias", alias), zap.Int("geo_id", id))
		return models.CountryRecord{}, ErrNotFound
	}
	return rec, nil
}

// LoadAll returns the full record collection. The map is a copy; the records
// share their slices with the snapshot.
func (c *Cache) LoadAll(ctx context.Context) (models.Records, error) {
	snap, err := c.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return maps.Clone(snap.Records), nil
}

// Build builds missing artifacts. The cached snapshot is kept unless a build actually ran.
func (c *Cache) Build(ctx context.Context) (*BuildReport, error) {
	c.buildMu.Lock()
	defer c.buildMu.Unlock()

	report, err := c.builder.Build(ctx)
	if err != nil {
		return nil, err
	}
	if !report.Skipped {
		c.Invalidate()
	}
	return report, nil
}

// Rebuild replaces both artifacts and drops the cached snapshot.
func (c *Cache) Rebuild(ctx context.Context) (*BuildReport, error) {
	c.buildMu.Lock()
	defer c.buildMu.Unlock()

	report, err := c.builder.Rebuild(ctx)
	if err != nil {
		return nil, err
	}
	c.Invalidate()
	return report, nil
}

// Invalidate drops the cached snapshot; the next query reloads from the store.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.snapshot = nil
	c.mu.Unlock()
}

func (c *Cache) load(ctx context.Context) (*Snapshot, error) {
	if c.autoBuild && c.builder != nil {
		c.buildMu.Lock()
		_, err := c.builder.Build(ctx)
		c.buildMu.Unlock()
		if err != nil {
			return nil, err
		}
	}

	exists, err := c.store.Exists(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrArtifactsMissing
	}

	index, err := c.store.LoadIndex(ctx)
	if err != nil {
		return nil, err
	}
	records, err := c.store.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Country artifacts loaded", zap.Int("countries", len(records)), zap.Int("aliases", len(index)))
	return &Snapshot{Records: records, Index: index, Loaded: time.Now()}, nil
}
