// Package storage opens the blob buckets holding reference data, cache snapshots and spreadsheets.
package storage

import (
	"context"

	"locator/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
)

// OpenBucket opens a gocloud.dev bucket URL such as "file:///var/lib/locator/data".
func OpenBucket(ctx context.Context, url string) (*blob.Bucket, error) {
	if url == "" {
		return nil, errors.New("bucket URL is required")
	}

	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", url)
	}

	return bucket, nil
}

// ReadAll reads a whole object from bucket.
func ReadAll(ctx context.Context, bucket *blob.Bucket, key string) ([]byte, error) {
	data, err := bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read object %s", key)
	}

	return data, nil
}
