// kbgen/pkg/store/store.go

package store

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Update announces that a new document was stored under Key.
type Update struct {
	ID           string `json:"id"`
	Key          string `json:"key"`
	Digest       string `json:"digest"`
	Format       string `json:"format"`
	Rules        int    `json:"rules"`
	Manipulators int    `json:"manipulators"`
}

type Store interface {
	SaveDocument(ctx context.Context, key string, doc []byte, digest string) error
	LoadDocument(ctx context.Context, key string) (doc []byte, digest string, err error)
	PublishUpdate(ctx context.Context, channel string, update Update) error
	Subscribe(ctx context.Context, channels ...string) (*redis.PubSub, error)
	Close() error
}
