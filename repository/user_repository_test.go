package repository

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "storefront-service/errors"
	"storefront-service/models"
)

func newTestRepo(t *testing.T) UserRepository {
	t.Helper()
	return NewFileUserRepo(filepath.Join(t.TempDir(), "users.json"))
}

func TestFileUserRepo_LoadBootstrapsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "users.json")
	repo := NewFileUserRepo(path)

	users, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, users)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestFileUserRepo_CreateAndFindByEmail(t *testing.T) {
	repo := newTestRepo(t)

	user := &models.User{Email: "a@x.com", Role: models.RoleUser, PasswordHash: "hash"}
	require.NoError(t, repo.Create(user))
	assert.NotEmpty(t, user.ID)

	// Lookup is case-insensitive.
	found, err := repo.FindByEmail("A@X.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)

	missing, err := repo.FindByEmail("nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFileUserRepo_CreateConflictIsCaseInsensitive(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Create(&models.User{Email: "a@x.com", PasswordHash: "hash"}))

	err := repo.Create(&models.User{Email: "A@X.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, apperrors.ErrAccountExists)

	users, err := repo.Load()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestFileUserRepo_ConcurrentSignupsSerialize(t *testing.T) {
	repo := newTestRepo(t)

	emails := []string{"a@x.com", "A@X.com", "a@X.COM", "A@x.com"}
	var wg sync.WaitGroup
	results := make(chan error, len(emails)*5)

	for i := 0; i < len(emails)*5; i++ {
		wg.Add(1)
		go func(email string) {
			defer wg.Done()
			results <- repo.Create(&models.User{Email: email, PasswordHash: "hash"})
		}(emails[i%len(emails)])
	}
	wg.Wait()
	close(results)

	var created, conflicts int
	for err := range results {
		switch {
		case err == nil:
			created++
		case errors.Is(err, apperrors.ErrAccountExists):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	// Exactly one writer wins; everyone else observes the conflict.
	assert.Equal(t, 1, created)
	assert.Equal(t, len(emails)*5-1, conflicts)

	users, err := repo.Load()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
