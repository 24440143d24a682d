package countryinfo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"

	"country-info/core/storage"
	"country-info/feature/countryinfo/models"

	"github.com/minio/minio-go/v7"
)

const (
	// RecordsObject is the object name of the record collection.
	RecordsObject = "countryinfo.json"
	// IndexObject is the object name of the lookup index.
	IndexObject = "countrylookup.json"
)

// ObjectStore keeps the artifacts as two JSON documents in an S3/MinIO bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
	prefix string
}

// NewObjectStore creates a store writing under bucket/prefix.
func NewObjectStore(client storage.Client, bucket, prefix string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket, prefix: prefix}
}

func (s *ObjectStore) recordsKey() string { return path.Join(s.prefix, RecordsObject) }
func (s *ObjectStore) indexKey() string   { return path.Join(s.prefix, IndexObject) }

// Exists reports whether both objects are present.
func (s *ObjectStore) Exists(ctx context.Context) (bool, error) {
	for _, key := range []string{s.recordsKey(), s.indexKey()} {
		_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
		if storage.IsNotFound(err) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("failed to stat %s: %w", key, err)
		}
	}
	return true, nil
}

// Save uploads the record collection then the index. If the index upload
// fails the record object is removed again so a half-written pair never
// reports as present.
func (s *ObjectStore) Save(ctx context.Context, records models.Records, index models.LookupIndex) error {
	recordsData, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	indexData, err := json.Marshal(index)
	if err != nil {
		return fmt.Errorf("failed to encode lookup index: %w", err)
	}

	if err := s.ensureBucket(ctx); err != nil {
		return err
	}

	if err := s.put(ctx, s.recordsKey(), recordsData); err != nil {
		return err
	}
	if err := s.put(ctx, s.indexKey(), indexData); err != nil {
		if rmErr := s.client.RemoveObject(ctx, s.bucket, s.recordsKey(), minio.RemoveObjectOptions{}); rmErr != nil {
			return errors.Join(err, fmt.Errorf("failed to remove orphaned %s: %w", s.recordsKey(), rmErr))
		}
		return err
	}
	return nil
}

// LoadRecords downloads and decodes the record collection.
func (s *ObjectStore) LoadRecords(ctx context.Context) (models.Records, error) {
	var records models.Records
	if err := s.get(ctx, s.recordsKey(), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// LoadIndex downloads and decodes the lookup index.
func (s *ObjectStore) LoadIndex(ctx context.Context) (models.LookupIndex, error) {
	var index models.LookupIndex
	if err := s.get(ctx, s.indexKey(), &index); err != nil {
		return nil, err
	}
	return index, nil
}

func (s *ObjectStore) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

func (s *ObjectStore) put(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

func (s *ObjectStore) get(ctx context.Context, key string, dest any) error {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return ErrArtifactsMissing
		}
		return fmt.Errorf("failed to download %s: %w", key, err)
	}
	defer obj.Close()

	// MinIO defers the not-found error until the first read
	if err := json.NewDecoder(obj).Decode(dest); err != nil {
		if storage.IsNotFound(err) {
			return ErrArtifactsMissing
		}
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}
