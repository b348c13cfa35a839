package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_GetMissingReturnsNil(t *testing.T) {
	repo := NewAccountRepository()

	account, err := repo.GetByDiscordID(context.Background(), 123)
	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestAccountRepository_CreateAndGet(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, 123, "alice", 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), created.Balance)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByDiscordID(ctx, 123)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, int64(100), got.Balance)
}

func TestAccountRepository_CreateDuplicateFails(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, 123, "alice", 100)
	require.NoError(t, err)

	_, err = repo.Create(ctx, 123, "alice", 100)
	assert.Error(t, err)
}

func TestAccountRepository_BalanceMutations(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, 123, "alice", 100)
	require.NoError(t, err)

	require.NoError(t, repo.AddBalance(ctx, 123, 50))
	require.NoError(t, repo.AddBalance(ctx, 123, -30))

	got, err := repo.GetByDiscordID(ctx, 123)
	require.NoError(t, err)
	assert.Equal(t, int64(120), got.Balance)

	require.NoError(t, repo.UpdateBalance(ctx, 123, 7))
	got, err = repo.GetByDiscordID(ctx, 123)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.Balance)
}

func TestAccountRepository_MutatingUnknownAccountFails(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	assert.Error(t, repo.AddBalance(ctx, 999, 10))
	assert.Error(t, repo.UpdateBalance(ctx, 999, 10))
}

func TestAccountRepository_ReturnsCopies(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, 123, "alice", 100)
	require.NoError(t, err)

	got, err := repo.GetByDiscordID(ctx, 123)
	require.NoError(t, err)
	got.Balance = 999999

	again, err := repo.GetByDiscordID(ctx, 123)
	require.NoError(t, err)
	assert.Equal(t, int64(100), again.Balance)
}

func TestAccountRepository_GetAll(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, 1, "alice", 100)
	require.NoError(t, err)
	_, err = repo.Create(ctx, 2, "bob", 200)
	require.NoError(t, err)

	accounts, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}
