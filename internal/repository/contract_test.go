package repository

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/usersvc/internal/models"
)

// runContract exercises the behaviour every UserRepository driver must share.
func runContract(t *testing.T, newRepo func(t *testing.T) UserRepository) {
	ctx := context.Background()
	now := time.Date(2025, 5, 10, 9, 30, 0, 0, time.UTC)

	t.Run("create then find", func(t *testing.T) {
		repo := newRepo(t)
		user := models.NewUser("Ana", "ana@mail.com", "hash", []models.Phone{
			{Number: 111, CityCode: 1, CountryCode: "56"},
			{Number: 222, CityCode: 2, CountryCode: "57"},
		}, now)
		user.Token = "tok"
		require.NoError(t, repo.Create(ctx, user))

		got, err := repo.FindByEmail(ctx, "ana@mail.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, "hash", got.PasswordHash)
		assert.Equal(t, "tok", got.Token)
		assert.True(t, got.IsActive)
		require.Len(t, got.Phones, 2)
		assert.Equal(t, int64(111), got.Phones[0].Number)
		assert.Equal(t, int64(222), got.Phones[1].Number)
	})

	t.Run("missing email", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.FindByEmail(ctx, "nobody@mail.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("lookup is exact", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, models.NewUser("", "ana@mail.com", "h", nil, now)))

		_, err := repo.FindByEmail(ctx, "ANA@mail.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("duplicate email ignoring case", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, models.NewUser("first", "ana@mail.com", "h1", nil, now)))

		err := repo.Create(ctx, models.NewUser("second", "Ana@Mail.com", "h2", nil, now))
		assert.ErrorIs(t, err, ErrDuplicateEmail)

		got, err := repo.FindByEmail(ctx, "ana@mail.com")
		require.NoError(t, err)
		assert.Equal(t, "first", got.Name)
		assert.Equal(t, "h1", got.PasswordHash)
	})

	t.Run("save updates login fields", func(t *testing.T) {
		repo := newRepo(t)
		user := models.NewUser("", "ana@mail.com", "h", nil, now)
		user.Token = "old"
		require.NoError(t, repo.Create(ctx, user))

		later := now.Add(time.Hour)
		user.LastLoginAt = later
		user.Token = "new"
		require.NoError(t, repo.Save(ctx, user))

		got, err := repo.FindByEmail(ctx, "ana@mail.com")
		require.NoError(t, err)
		assert.Equal(t, "new", got.Token)
		assert.True(t, got.LastLoginAt.Equal(later))
		assert.True(t, got.CreatedAt.Equal(now))
	})

	t.Run("concurrent create admits one", func(t *testing.T) {
		repo := newRepo(t)

		var ok, dup int32
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := repo.Create(ctx, models.NewUser("", "race@mail.com", "h", nil, now))
				switch {
				case err == nil:
					atomic.AddInt32(&ok, 1)
				case errors.Is(err, ErrDuplicateEmail):
					atomic.AddInt32(&dup, 1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), ok)
		assert.Equal(t, int32(15), dup)
	})
}
