package source

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GCS reads workbooks from a Cloud Storage bucket under a prefix,
// filtered by extension. Object names double as file names, so the
// reporting-year convention applies to them the same way.
type GCS struct {
	client *storage.Client
	bucket string
	prefix string
	ext    string
}

// NewGCS creates a source over gs://<bucket>/<prefix> with a shared
// storage client.
func NewGCS(ctx context.Context, bucket, prefix, ext string, opts ...option.ClientOption) (*GCS, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCS{
		client: client,
		bucket: bucket,
		prefix: prefix,
		ext:    ext,
	}, nil
}

// List returns the matching object names under the prefix.
func (s *GCS) List(ctx context.Context) ([]string, error) {
	it := s.client.Bucket(s.bucket).Objects(ctx, &storage.Query{Prefix: s.prefix})

	var names []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list bucket %s: %w", s.bucket, err)
		}
		if strings.HasSuffix(strings.ToLower(attrs.Name), strings.ToLower(s.ext)) {
			names = append(names, attrs.Name)
		}
	}
	return names, nil
}

// Open downloads one object's bytes.
func (s *GCS) Open(ctx context.Context, name string) ([]byte, error) {
	r, err := s.client.Bucket(s.bucket).Object(name).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("open GCS object %s: %w", name, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read GCS object %s: %w", name, err)
	}
	return data, nil
}

// Close releases the underlying storage client.
func (s *GCS) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
