package repository

import (
	"context"
	"fmt"
	"testing"

	"plaza/internal/cache"
	"plaza/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeUser(t *testing.T, repo UserRepository) *models.User {
	t.Helper()
	user := &models.User{
		Username:    fmt.Sprintf("u%s", gofakeit.LetterN(12)),
		Email:       gofakeit.Email(),
		Password:    "not-a-real-hash",
		Description: gofakeit.Sentence(5),
	}
	require.NoError(t, repo.Create(context.Background(), user))
	require.NotZero(t, user.ID)
	return user
}

func TestUserRepositoryCreateAndGet(t *testing.T) {
	repo := NewUserRepository(testDB)
	ctx := context.Background()

	user := makeUser(t, repo)

	t.Run("GetByID", func(t *testing.T) {
		got, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Username, got.Username)
	})

	t.Run("GetByUsername", func(t *testing.T) {
		got, err := repo.GetByUsername(ctx, user.Username)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("GetByUsername absent returns nil without error", func(t *testing.T) {
		got, err := repo.GetByUsername(ctx, "no-such-user")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("GetByID unknown is not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 999999)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

func TestUserRepositoryUniqueConstraints(t *testing.T) {
	repo := NewUserRepository(testDB)
	ctx := context.Background()

	existing := makeUser(t, repo)

	t.Run("duplicate username", func(t *testing.T) {
		err := repo.Create(ctx, &models.User{
			Username: existing.Username,
			Email:    gofakeit.Email(),
			Password: "x",
		})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeConflict, appErr.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := repo.Create(ctx, &models.User{
			Username: fmt.Sprintf("u%s", gofakeit.LetterN(12)),
			Email:    existing.Email,
			Password: "x",
		})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeConflict, appErr.Code)
	})
}

func TestUserRepositoryUpdateDetails(t *testing.T) {
	repo := NewUserRepository(testDB)
	ctx := context.Background()

	user := makeUser(t, repo)
	user.Description = "updated description"
	require.NoError(t, repo.UpdateDetails(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated description", got.Description)
}

// A user read through the cache has no password hash (it is stripped from
// the JSON projection). Editing details from such a copy must leave the
// stored hash untouched.
func TestUserRepositoryUpdateDetailsPreservesPassword(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache.SetClient(rdb)
	defer func() {
		cache.SetClient(nil)
		_ = rdb.Close()
	}()

	repo := NewUserRepository(testDB)
	ctx := context.Background()

	user := makeUser(t, repo)
	originalHash := user.Password

	// First read primes the cache, second read is served from it
	_, err = repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	cached, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, cached.Password)

	cached.Description = "edited from a cached copy"
	require.NoError(t, repo.UpdateDetails(ctx, cached))

	fresh, err := repo.GetByUsername(ctx, user.Username)
	require.NoError(t, err)
	require.NotNil(t, fresh)
	assert.Equal(t, originalHash, fresh.Password)
	assert.Equal(t, "edited from a cached copy", fresh.Description)
}

func TestUserRepositoryList(t *testing.T) {
	repo := NewUserRepository(testDB)
	ctx := context.Background()

	makeUser(t, repo)
	makeUser(t, repo)

	users, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(users), 2)
}
