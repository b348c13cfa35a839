package service

import (
	"context"
	"fmt"

	"croupier/models"
)

// ledgerService implements the LedgerService interface
type ledgerService struct {
	accountRepo     AccountRepository
	entryRepo       LedgerEntryRepository
	eventPublisher  EventPublisher
	startingBalance int64
}

// NewLedgerService creates a new ledger service
func NewLedgerService(accountRepo AccountRepository, entryRepo LedgerEntryRepository, eventPublisher EventPublisher, startingBalance int64) LedgerService {
	return &ledgerService{
		accountRepo:     accountRepo,
		entryRepo:       entryRepo,
		eventPublisher:  eventPublisher,
		startingBalance: startingBalance,
	}
}

// GetOrCreateAccount retrieves an account, creating it with the starting
// balance on first reference
func (s *ledgerService) GetOrCreateAccount(ctx context.Context, discordID int64, username string) (*models.Account, error) {
	account, err := s.accountRepo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if account != nil {
		return account, nil
	}

	account, err = s.accountRepo.Create(ctx, discordID, username, s.startingBalance)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	entry := &models.LedgerEntry{
		DiscordID:       discordID,
		BalanceBefore:   0,
		BalanceAfter:    s.startingBalance,
		ChangeAmount:    s.startingBalance,
		TransactionType: models.TransactionTypeInitial,
		TransactionMetadata: map[string]any{
			"username": username,
		},
	}
	if err := s.recordChange(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record initial balance: %w", err)
	}

	return account, nil
}

// AdjustBalance applies a signed delta to an account. No bounds are
// enforced here; callers gate their own wagers before applying payouts.
func (s *ledgerService) AdjustBalance(ctx context.Context, discordID int64, delta int64, txType models.TransactionType, metadata map[string]any) (int64, error) {
	account, err := s.accountRepo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return 0, fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return 0, fmt.Errorf("account %d not found", discordID)
	}

	if err := s.accountRepo.AddBalance(ctx, discordID, delta); err != nil {
		return 0, fmt.Errorf("failed to apply balance delta: %w", err)
	}
	newBalance := account.Balance + delta

	entry := &models.LedgerEntry{
		DiscordID:           discordID,
		BalanceBefore:       account.Balance,
		BalanceAfter:        newBalance,
		ChangeAmount:        delta,
		TransactionType:     txType,
		TransactionMetadata: metadata,
	}
	if err := s.recordChange(ctx, entry); err != nil {
		return 0, fmt.Errorf("failed to record balance change: %w", err)
	}

	return newBalance, nil
}

// SetBalance overwrites one account's balance, creating the account if
// it does not exist yet. Admin only.
func (s *ledgerService) SetBalance(ctx context.Context, admin bool, discordID int64, username string, amount int64) (*models.Account, error) {
	if !admin {
		return nil, ErrUnauthorized
	}
	if amount < 0 {
		return nil, ErrInvalidAmount
	}

	account, err := s.GetOrCreateAccount(ctx, discordID, username)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.UpdateBalance(ctx, discordID, amount); err != nil {
		return nil, fmt.Errorf("failed to set balance: %w", err)
	}

	entry := &models.LedgerEntry{
		DiscordID:       discordID,
		BalanceBefore:   account.Balance,
		BalanceAfter:    amount,
		ChangeAmount:    amount - account.Balance,
		TransactionType: models.TransactionTypeAdminSet,
	}
	if err := s.recordChange(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record balance change: %w", err)
	}

	account.Balance = amount
	return account, nil
}

// SetAllBalances overwrites every existing account's balance. It never
// creates accounts. Admin only.
func (s *ledgerService) SetAllBalances(ctx context.Context, admin bool, amount int64) (int, error) {
	if !admin {
		return 0, ErrUnauthorized
	}
	if amount < 0 {
		return 0, ErrInvalidAmount
	}

	accounts, err := s.accountRepo.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list accounts: %w", err)
	}

	for _, account := range accounts {
		if err := s.accountRepo.UpdateBalance(ctx, account.DiscordID, amount); err != nil {
			return 0, fmt.Errorf("failed to set balance for %d: %w", account.DiscordID, err)
		}

		entry := &models.LedgerEntry{
			DiscordID:       account.DiscordID,
			BalanceBefore:   account.Balance,
			BalanceAfter:    amount,
			ChangeAmount:    amount - account.Balance,
			TransactionType: models.TransactionTypeAdminSet,
		}
		if err := s.recordChange(ctx, entry); err != nil {
			return 0, fmt.Errorf("failed to record balance change for %d: %w", account.DiscordID, err)
		}
	}

	return len(accounts), nil
}
