package session_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/enroll/pkg/session"
)

func TestRedisStore(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	defer client.Close()

	ctx := context.Background()
	store := session.NewRedisStore(client, "test-session:")

	sess := session.NewSession("redis-token", nil, time.Minute)
	require.NoError(t, sess.Put("form", map[string]string{"email": "a@b.co"}))
	require.NoError(t, store.Create(ctx, sess))
	defer store.Delete(ctx, "redis-token")

	got, err := store.Get(ctx, "redis-token")
	require.NoError(t, err)

	var form map[string]string
	found, err := got.Decode("form", &form)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "a@b.co", form["email"])

	assert.ErrorIs(t, store.Update(ctx, session.NewSession("missing-token", nil, time.Minute)), session.ErrSessionNotFound)

	require.NoError(t, store.Delete(ctx, "redis-token"))
	_, err = store.Get(ctx, "redis-token")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}
