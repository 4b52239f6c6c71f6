package auth_test

import (
	"context"
	"testing"
	"time"

	"ems-console/internal/auth"
	autherrors "ems-console/internal/auth/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisSessionStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save writes the token with the session ttl", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := auth.NewSessionStore(rdb)

		mock.ExpectSet("session:sess-1", "upstream-token", time.Hour).SetVal("OK")

		err := store.Save(ctx, "sess-1", "upstream-token", time.Hour)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get returns the stored token", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := auth.NewSessionStore(rdb)

		mock.ExpectGet("session:sess-1").SetVal("upstream-token")

		token, err := store.Get(ctx, "sess-1")
		assert.NoError(t, err)
		assert.Equal(t, "upstream-token", token)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing key maps to the session-not-found error", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := auth.NewSessionStore(rdb)

		mock.ExpectGet("session:missing").RedisNil()

		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, autherrors.ErrSessionNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete drops the key", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := auth.NewSessionStore(rdb)

		mock.ExpectDel("session:sess-1").SetVal(1)

		assert.NoError(t, store.Delete(ctx, "sess-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
