package countryinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"country-info/core/utils"
	"country-info/feature/countryinfo/models"

	"go.etcd.io/bbolt"
)

var (
	recordsBucket = []byte("countries")
	indexBucket   = []byte("lookup")
)

// BoltStore keeps the artifacts as two buckets of a bbolt file.
// Records are JSON values keyed by the decimal geo id; index values are decimal geo ids.
type BoltStore struct {
	path string
	db   *bbolt.DB
}

// OpenBoltStore opens or creates the bbolt file at path.
func OpenBoltStore(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create artifact directory: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open artifact store %s: %w", path, err)
	}
	return &BoltStore{path: path, db: db}, nil
}

// Path returns the file backing the store.
func (s *BoltStore) Path() string {
	return s.path
}

// Close releases the file lock.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Exists reports whether both buckets are present.
func (s *BoltStore) Exists(ctx context.Context) (bool, error) {
	exists := false
	err := s.db.View(func(tx *bbolt.Tx) error {
		exists = tx.Bucket(recordsBucket) != nil && tx.Bucket(indexBucket) != nil
		return nil
	})
	return exists, err
}

// Save replaces both buckets inside one transaction.
func (s *BoltStore) Save(ctx context.Context, records models.Records, index models.LookupIndex) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		countries, err := recreateBucket(tx, recordsBucket)
		if err != nil {
			return err
		}
		for id, rec := range records {
			data, err := json.Marshal(rec)
			if err != nil {
				return fmt.Errorf("failed to encode record %d: %w", id, err)
			}
			if err := countries.Put([]byte(strconv.Itoa(id)), data); err != nil {
				return fmt.Errorf("failed to store record %d: %w", id, err)
			}
		}

		lookup, err := recreateBucket(tx, indexBucket)
		if err != nil {
			return err
		}
		for alias, id := range index {
			if err := lookup.Put([]byte(alias), []byte(strconv.Itoa(id))); err != nil {
				return fmt.Errorf("failed to store alias %q: %w", alias, err)
			}
		}
		return nil
	})
}

// LoadRecords decodes every record of the countries bucket.
func (s *BoltStore) LoadRecords(ctx context.Context) (models.Records, error) {
	records := make(models.Records)
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(recordsBucket)
		if bucket == nil {
			return ErrArtifactsMissing
		}
		return bucket.ForEach(func(k, v []byte) error {
			var rec models.CountryRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("failed to decode record %s: %w", k, err)
			}
			records[utils.ToInt(k)] = rec
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// LoadIndex reads every alias of the lookup bucket.
func (s *BoltStore) LoadIndex(ctx context.Context) (models.LookupIndex, error) {
	index := make(models.LookupIndex)
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(indexBucket)
		if bucket == nil {
			return ErrArtifactsMissing
		}
		return bucket.ForEach(func(k, v []byte) error {
			index[string(k)] = utils.ToInt(v)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return index, nil
}

func recreateBucket(tx *bbolt.Tx, name []byte) (*bbolt.Bucket, error) {
	if tx.Bucket(name) != nil {
		if err := tx.DeleteBucket(name); err != nil {
			return nil, fmt.Errorf("failed to clear bucket %s: %w", name, err)
		}
	}
	bucket, err := tx.CreateBucket(name)
	if err != nil {
		return nil, fmt.Errorf("failed to create bucket %s: %w", name, err)
	}
	return bucket, nil
}
