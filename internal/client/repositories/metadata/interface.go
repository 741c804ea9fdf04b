// Package metadata stores small client settings in the local database.
package metadata

import (
	"context"
)

// KeyLastUserName remembers who logged in last so the CLI can offer it as
// the default at the next login prompt.
const KeyLastUserName = "last_username"

type Repository interface {
	// Get returns ("", false, nil) when key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
