// kbgen/pkg/store/store_test.go

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rgehrsitz/kbgen/pkg/logging"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *RedisStore) {
	s, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to create miniredis: %v", err)
	}

	store, err := NewRedisStore(context.Background(), s.Addr(), "", 0)
	if err != nil {
		s.Close()
		t.Fatalf("Failed to connect to miniredis: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
		s.Close()
	})
	return s, store
}

func TestSaveAndLoadDocument(t *testing.T) {
	s, store := setupMiniredis(t)
	ctx := context.Background()

	doc := []byte(`{"title":"t","rules":[]}`)
	err := store.SaveDocument(ctx, "kbgen:ruleset", doc, "0123456789abcdef")
	assert.NoError(t, err)

	raw, err := s.Get("kbgen:ruleset")
	assert.NoError(t, err)
	assert.Equal(t, string(doc), raw)
	raw, err = s.Get("kbgen:ruleset" + DigestSuffix)
	assert.NoError(t, err)
	assert.Equal(t, "0123456789abcdef", raw)

	loaded, digest, err := store.LoadDocument(ctx, "kbgen:ruleset")
	assert.NoError(t, err)
	assert.Equal(t, doc, loaded)
	assert.Equal(t, "0123456789abcdef", digest)
}

func TestSaveOverwritesDocument(t *testing.T) {
	_, store := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, store.SaveDocument(ctx, "k", []byte("first"), "1"))
	require.NoError(t, store.SaveDocument(ctx, "k", []byte("second"), "2"))

	doc, digest, err := store.LoadDocument(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, []byte("second"), doc)
	assert.Equal(t, "2", digest)
}

func TestLoadNonExistentDocument(t *testing.T) {
	_, store := setupMiniredis(t)

	doc, digest, err := store.LoadDocument(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Nil(t, doc)
	assert.Empty(t, digest)
}

func TestLoadDocumentWithoutDigest(t *testing.T) {
	s, store := setupMiniredis(t)
	require.NoError(t, s.Set("k", "doc"))

	doc, digest, err := store.LoadDocument(context.Background(), "k")
	assert.NoError(t, err)
	assert.Equal(t, []byte("doc"), doc)
	assert.Empty(t, digest)
}

func TestPublishUpdate(t *testing.T) {
	_, store := setupMiniredis(t)
	ctx := context.Background()

	pubsub, err := store.Subscribe(ctx, "kbgen:updates")
	require.NoError(t, err)
	defer pubsub.Close()

	update := Update{Key: "kbgen:ruleset", Digest: "abc", Format: "json", Rules: 89, Manipulators: 154}
	err = store.PublishUpdate(ctx, "kbgen:updates", update)
	assert.NoError(t, err)

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	msg, err := pubsub.ReceiveMessage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "kbgen:updates", msg.Channel)

	got, err := DecodeUpdate(msg)
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	update.ID = got.ID
	assert.Equal(t, update, got)
}

func TestPublishUpdateKeepsID(t *testing.T) {
	_, store := setupMiniredis(t)
	ctx := context.Background()

	pubsub, err := store.Subscribe(ctx, "updates")
	require.NoError(t, err)
	defer pubsub.Close()

	require.NoError(t, store.PublishUpdate(ctx, "updates", Update{ID: "fixed", Key: "k"}))

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	msg, err := pubsub.ReceiveMessage(ctx)
	require.NoError(t, err)
	got, err := DecodeUpdate(msg)
	require.NoError(t, err)
	assert.Equal(t, "fixed", got.ID)
}

func TestDecodeUpdateInvalidPayload(t *testing.T) {
	_, err := DecodeUpdate(&redis.Message{Channel: "c", Payload: "not json"})
	assert.Error(t, err)
}

func TestNewRedisStoreConnectionFailure(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	addr := s.Addr()
	s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	store, err := NewRedisStore(ctx, addr, "", 0)
	assert.Nil(t, store)
	assert.Error(t, err)
	assert.True(t, logging.IsType(err, logging.ErrorTypeStore))
}

func TestSaveDocumentServerDown(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)
	store, err := NewRedisStore(context.Background(), s.Addr(), "", 0)
	require.NoError(t, err)
	defer store.Close()
	s.Close()

	err = store.SaveDocument(context.Background(), "k", []byte("doc"), "d")
	assert.Error(t, err)
	assert.True(t, logging.IsType(err, logging.ErrorTypeStore))
}
