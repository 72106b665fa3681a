// Package storage persists uploaded gallery images. The default backend
// writes to the local uploads directory served under /uploads; the MinIO
// backend keeps the same generated names in an object bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"
)

type Storage interface {
	// Save stores the file under a generated collision-free name and
	// returns that name along with its public URL.
	Save(ctx context.Context, field, ext, contentType string, file io.Reader, size int64) (filename string, url string, err error)
	// Delete removes a stored file by name. A missing file is not an
	// error; the bool reports whether the file existed.
	Delete(ctx context.Context, filename string) (bool, error)
}

// generateFilename produces <field>-<unixMillis>-<random>.<ext>, matching
// the public paths already referenced by stored content items.
func generateFilename(field, ext string) string {
	return fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), rand.IntN(1_000_000_000), ext)
}
