// kbgen/pkg/store/redis_store.go

package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"rgehrsitz/kbgen/pkg/logging"
)

// ErrNotFound is returned by LoadDocument when nothing is stored at key.
var ErrNotFound = errors.New("document not found")

// DigestSuffix is appended to a document key to form its digest key.
const DigestSuffix = ":digest"

type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the Redis server at addr and verifies the
// connection with a ping.
func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	logging.Logger.Info().Str("addr", addr).Int("db", db).Msg("Connecting to Redis")

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, logging.NewError(logging.ErrorTypeStore, "failed to connect to Redis", err,
			map[string]interface{}{"addr": addr})
	}

	logging.Logger.Info().Msg("Successfully connected to Redis")
	return &RedisStore{client: client}, nil
}

// SaveDocument stores doc and its digest in one transaction so readers never
// see a document paired with a stale digest.
func (s *RedisStore) SaveDocument(ctx context.Context, key string, doc []byte, digest string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, doc, 0)
		pipe.Set(ctx, key+DigestSuffix, digest, 0)
		return nil
	})
	if err != nil {
		logging.Logger.Error().Err(err).Str("key", key).Msg("Failed to store document in Redis")
		return logging.NewError(logging.ErrorTypeStore, "failed to store document", err,
			map[string]interface{}{"key": key})
	}
	logging.Logger.Debug().Str("key", key).Str("digest", digest).Int("bytes", len(doc)).Msg("Stored document")
	return nil
}

func (s *RedisStore) LoadDocument(ctx context.Context, key string) ([]byte, string, error) {
	values, err := s.client.MGet(ctx, key, key+DigestSuffix).Result()
	if err != nil {
		logging.Logger.Error().Err(err).Str("key", key).Msg("Failed to get document from Redis")
		return nil, "", logging.NewError(logging.ErrorTypeStore, "failed to load document", err,
			map[string]interface{}{"key": key})
	}
	if values[0] == nil {
		logging.Logger.Debug().Str("key", key).Msg("Document not found in Redis")
		return nil, "", ErrNotFound
	}

	doc := []byte(asString(values[0]))
	digest := ""
	if values[1] != nil {
		digest = asString(values[1])
	}
	return doc, digest, nil
}

func asString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return ""
	}
}

// PublishUpdate announces update on channel, assigning an ID when missing.
func (s *RedisStore) PublishUpdate(ctx context.Context, channel string, update Update) error {
	if update.ID == "" {
		update.ID = uuid.NewString()
	}
	payload, err := json.Marshal(update)
	if err != nil {
		return logging.NewError(logging.ErrorTypeStore, "failed to marshal update", err, nil)
	}
	if err := s.client.Publish(ctx, channel, payload).Err(); err != nil {
		logging.Logger.Error().Err(err).Str("channel", channel).Msg("Failed to publish document update")
		return logging.NewError(logging.ErrorTypeStore, "failed to publish update", err,
			map[string]interface{}{"channel": channel})
	}
	logging.Logger.Info().Str("channel", channel).Str("id", update.ID).Str("digest", update.Digest).Msg("Published document update")
	return nil
}

func (s *RedisStore) Subscribe(ctx context.Context, channels ...string) (*redis.PubSub, error) {
	logging.Logger.Info().Strs("channels", channels).Msg("Subscribing to Redis channels")

	pubsub := s.client.Subscribe(ctx, channels...)

	// Wait for the subscription confirmation so published messages are not missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, logging.NewError(logging.ErrorTypeStore, "failed to subscribe", err,
			map[string]interface{}{"channels": channels})
	}
	return pubsub, nil
}

// DecodeUpdate parses a message payload produced by PublishUpdate.
func DecodeUpdate(msg *redis.Message) (Update, error) {
	var u Update
	if err := json.Unmarshal([]byte(msg.Payload), &u); err != nil {
		return Update{}, err
	}
	return u, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
