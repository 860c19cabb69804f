package sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore(time.Hour)

	sess, err := store.Create("u_1", "a@x.com", "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)

	got, ok := store.Get(sess.Token)
	require.True(t, ok)
	assert.Equal(t, "u_1", got.UserID)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, "admin", got.Role)
}

func TestStore_TokensAreUnique(t *testing.T) {
	store := NewStore(time.Hour)

	a, err := store.Create("u_1", "a@x.com", "user")
	require.NoError(t, err)
	b, err := store.Create("u_1", "a@x.com", "user")
	require.NoError(t, err)
	assert.NotEqual(t, a.Token, b.Token)
}

func TestStore_ExpiredSessionIsGone(t *testing.T) {
	store := NewStore(10 * time.Millisecond)

	sess, err := store.Create("u_1", "a@x.com", "user")
	require.NoError(t, err)

	time.Sleep(25 * time.Millisecond)

	_, ok := store.Get(sess.Token)
	assert.False(t, ok)
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	store := NewStore(time.Hour)

	sess, err := store.Create("u_1", "a@x.com", "user")
	require.NoError(t, err)

	store.Delete(sess.Token)
	store.Delete(sess.Token)

	_, ok := store.Get(sess.Token)
	assert.False(t, ok)
}

func TestStore_GetUnknownToken(t *testing.T) {
	store := NewStore(time.Hour)

	_, ok := store.Get("no-such-token")
	assert.False(t, ok)
}
