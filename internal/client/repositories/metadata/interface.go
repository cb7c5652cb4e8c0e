// Package metadata stores the client's small key/value settings, such as
// the session token and the role it was granted, in the local SQLite
// database.
package metadata

import (
	"context"
)

// Repository is a string key/value store. Get reports found=false for a
// missing key instead of an error.
type Repository interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string]string, error)
}
