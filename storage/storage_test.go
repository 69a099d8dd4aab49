package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileStore(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	assert.NoError(t, err)

	t.Run("Missing Key", func(t *testing.T) {
		_, err := store.Get("auth_token")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("SetMany Then Get", func(t *testing.T) {
		err := store.SetMany(map[string]string{
			"auth_token": "tok-123",
			"user_role":  "BUYER",
		})
		assert.NoError(t, err)

		token, err := store.Get("auth_token")
		assert.NoError(t, err)
		assert.Equal(t, "tok-123", token)

		role, err := store.Get("user_role")
		assert.NoError(t, err)
		assert.Equal(t, "BUYER", role)
	})

	t.Run("Survives Reopen", func(t *testing.T) {
		reopened, err := NewFileStore(dir)
		assert.NoError(t, err)

		token, err := reopened.Get("auth_token")
		assert.NoError(t, err)
		assert.Equal(t, "tok-123", token)
	})

	t.Run("DeleteMany", func(t *testing.T) {
		err := store.DeleteMany("auth_token", "user_role", "never_set")
		assert.NoError(t, err)

		_, err = store.Get("auth_token")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = store.Get("user_role")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get("auth_token")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, store.SetMany(map[string]string{"auth_token": "tok"}))

	token, err := store.Get("auth_token")
	assert.NoError(t, err)
	assert.Equal(t, "tok", token)

	assert.NoError(t, store.DeleteMany("auth_token"))
	_, err = store.Get("auth_token")
	assert.ErrorIs(t, err, ErrNotFound)
}
