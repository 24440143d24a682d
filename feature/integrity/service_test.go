package integrity

import (
	"context"
	"path/filepath"
	"testing"

	"country-info/core/database"
	"country-info/feature/countryinfo"
	"country-info/feature/countryinfo/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func setupStore(t *testing.T) *countryinfo.BoltStore {
	t.Helper()
	store, err := countryinfo.OpenBoltStore(filepath.Join(t.TempDir(), "countryinfo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestService_Source(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.SourceModels()...))

	svc := NewService(db, setupStore(t), zap.NewNop())
	report, err := svc.CheckSource()
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Len(t, report.Tables, 5)
}

func TestService_SourceWithoutDatabase(t *testing.T) {
	svc := NewService(nil, setupStore(t), zap.NewNop())
	_, err := svc.CheckSource()
	assert.Error(t, err)
}

func TestService_Artifacts(t *testing.T) {
	store := setupStore(t)
	svc := NewService(nil, store, zap.NewNop())

	report, err := svc.CheckArtifacts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "missing", report.Status)

	require.NoError(t, store.Save(context.Background(),
		models.Records{1269750: {GeoID: 1269750, Name: "India"}},
		models.LookupIndex{"in": 1269750},
	))
	report, err = svc.CheckArtifacts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", report.Status)
}
