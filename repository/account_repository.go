package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"croupier/models"
)

// AccountRepository is an in-memory implementation of the account store.
// All state lives for the process lifetime only.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[int64]*models.Account
}

// NewAccountRepository creates a new account repository
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[int64]*models.Account),
	}
}

// GetByDiscordID retrieves an account by Discord ID, returning nil if absent
func (r *AccountRepository) GetByDiscordID(ctx context.Context, discordID int64) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[discordID]
	if !ok {
		return nil, nil
	}
	copied := *account
	return &copied, nil
}

// Create creates a new account with the initial balance
func (r *AccountRepository) Create(ctx context.Context, discordID int64, username string, initialBalance int64) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[discordID]; ok {
		return nil, fmt.Errorf("account with discord ID %d already exists", discordID)
	}

	now := time.Now().UTC()
	account := &models.Account{
		DiscordID: discordID,
		Username:  username,
		Balance:   initialBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.accounts[discordID] = account

	copied := *account
	return &copied, nil
}

// UpdateBalance overwrites an account's balance
func (r *AccountRepository) UpdateBalance(ctx context.Context, discordID int64, newBalance int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[discordID]
	if !ok {
		return fmt.Errorf("account with discord ID %d not found", discordID)
	}
	account.Balance = newBalance
	account.UpdatedAt = time.Now().UTC()
	return nil
}

// AddBalance applies a signed delta to an account's balance
func (r *AccountRepository) AddBalance(ctx context.Context, discordID int64, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[discordID]
	if !ok {
		return fmt.Errorf("account with discord ID %d not found", discordID)
	}
	account.Balance += delta
	account.UpdatedAt = time.Now().UTC()
	return nil
}

// GetAll returns all accounts
func (r *AccountRepository) GetAll(ctx context.Context) ([]*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]*models.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		copied := *account
		accounts = append(accounts, &copied)
	}
	return accounts, nil
}
