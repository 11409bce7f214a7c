package repository

import (
	"context"
	"testing"
	"time"

	"tipster/models"
	"tipster/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Upsert(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	t.Run("creates a new user with defaults", func(t *testing.T) {
		user, err := repo.Upsert(ctx, testutil.CreateTestUpsertUser("user-1"))
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.Equal(t, "user-1", user.ID)
		assert.Equal(t, models.PlanFree, user.SubscriptionPlan)
		assert.Equal(t, models.SubscriptionInactive, user.SubscriptionStatus)
		assert.False(t, user.IsAdmin)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("updates in place on repeated sync", func(t *testing.T) {
		first, err := repo.Upsert(ctx, testutil.CreateTestUpsertUser("user-2"))
		require.NoError(t, err)

		changed := testutil.CreateTestUpsertUser("user-2")
		newEmail := "changed@example.com"
		changed.Email = &newEmail

		second, err := repo.Upsert(ctx, changed)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		require.NotNil(t, second.Email)
		assert.Equal(t, newEmail, *second.Email)
		assert.Equal(t, first.CreatedAt, second.CreatedAt)

		// Still a single row for this identity
		var rows int
		err = testDB.DB.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE id = 'user-2'`).Scan(&rows)
		require.NoError(t, err)
		assert.Equal(t, 1, rows)
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	t.Run("missing user", func(t *testing.T) {
		user, err := repo.GetByID(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("existing user", func(t *testing.T) {
		_, err := repo.Upsert(ctx, testutil.CreateTestUpsertUser("user-1"))
		require.NoError(t, err)

		user, err := repo.GetByID(ctx, "user-1")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "user-1", user.ID)
	})
}

func TestUserRepository_UpdateSubscription(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	t.Run("missing user yields nil", func(t *testing.T) {
		user, err := repo.UpdateSubscription(ctx, "nobody", models.PlanPro, models.SubscriptionActive, nil)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("overwrites subscription fields", func(t *testing.T) {
		_, err := repo.Upsert(ctx, testutil.CreateTestUpsertUser("user-1"))
		require.NoError(t, err)

		expiry := time.Now().AddDate(0, 1, 0).UTC().Truncate(time.Second)
		user, err := repo.UpdateSubscription(ctx, "user-1", models.PlanVIP, models.SubscriptionActive, &expiry)
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.Equal(t, models.PlanVIP, user.SubscriptionPlan)
		assert.Equal(t, models.SubscriptionActive, user.SubscriptionStatus)
		require.NotNil(t, user.SubscriptionExpiry)
		assert.True(t, user.SubscriptionExpiry.Equal(expiry))
		assert.True(t, user.UpdatedAt.After(user.CreatedAt) || user.UpdatedAt.Equal(user.CreatedAt))
	})
}

func TestUserRepository_Count(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = repo.Upsert(ctx, testutil.CreateTestUpsertUser("user-1"))
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, testutil.CreateTestUpsertUser("user-2"))
	require.NoError(t, err)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
