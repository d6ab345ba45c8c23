package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ObjectStore hands out URLs for uploaded files. Real storage is an external
// collaborator; the stub only mints deterministic-looking placeholder URLs.
type ObjectStore interface {
	Upload(ctx context.Context, folder, fileName, contentType string) (string, error)
}

type stubObjectStore struct {
	bucket string
	region string
}

func NewStubObjectStore(bucket, region string) ObjectStore {
	return &stubObjectStore{bucket: bucket, region: region}
}

func (s *stubObjectStore) Upload(_ context.Context, folder, fileName, _ string) (string, error) {
	key := fmt.Sprintf("%s-%s", uuid.New().String(), sanitizeFileName(fileName))
	if folder != "" {
		key = strings.Trim(folder, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

func sanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, " ", "-")
	return strings.Trim(name, "/")
}
