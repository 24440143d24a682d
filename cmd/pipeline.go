package cmd

import (
	"fmt"

	"country-info/core/config"
	"country-info/core/database"
	"country-info/core/logger"
	"country-info/core/storage"
	"country-info/feature/countryinfo"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// pipeline bundles everything a command needs to build or query countries.
type pipeline struct {
	cfg   *config.Config
	logg  *zap.Logger
	db    *gorm.DB
	store countryinfo.ArtifactStore
	cache *countryinfo.Cache
	close func()
}

// setupPipeline loads configuration, connects the optional geonames source
// and opens the configured artifact store.
func setupPipeline() (*pipeline, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	if !cfg.Artifacts.IsValidDriver() {
		return nil, fmt.Errorf("unsupported artifacts driver: %s", cfg.Artifacts.Driver)
	}

	// Connect to Database (Optional)
	// Queries against built artifacts do not need the source.
	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		db = conn
		logg.Debug("Connected to geonames database", zap.String("driver", cfg.Database.Driver))
	}

	store, closeStore, err := openArtifactStore(cfg)
	if err != nil {
		return nil, err
	}

	builder := countryinfo.NewBuilder(countryinfo.NewGormSource(db), store, logg)
	return &pipeline{
		cfg:   cfg,
		logg:  logg,
		db:    db,
		store: store,
		cache: countryinfo.NewCache(store, builder, cfg.Artifacts.AutoBuild, logg),
		close: func() {
			closeStore()
			_ = logg.Sync()
		},
	}, nil
}

func openArtifactStore(cfg *config.Config) (countryinfo.ArtifactStore, func(), error) {
	switch cfg.Artifacts.Driver {
	case countryinfo.DriverS3:
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		return countryinfo.NewObjectStore(client, cfg.Storage.Bucket, cfg.Storage.Prefix), func() {}, nil
	default:
		store, err := countryinfo.OpenBoltStore(cfg.Artifacts.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	}
}
