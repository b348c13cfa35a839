package service

import (
	"context"
	"time"

	"croupier/events"
	"croupier/models"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	// GetByDiscordID retrieves an account by Discord ID, returning nil if absent
	GetByDiscordID(ctx context.Context, discordID int64) (*models.Account, error)

	// Create creates a new account with the initial balance
	Create(ctx context.Context, discordID int64, username string, initialBalance int64) (*models.Account, error)

	// UpdateBalance overwrites an account's balance
	UpdateBalance(ctx context.Context, discordID int64, newBalance int64) error

	// AddBalance applies a signed delta to an account's balance
	AddBalance(ctx context.Context, discordID int64, delta int64) error

	// GetAll returns all accounts
	GetAll(ctx context.Context) ([]*models.Account, error)
}

// LedgerEntryRepository defines the interface for balance history tracking
type LedgerEntryRepository interface {
	// Record creates a new ledger entry
	Record(ctx context.Context, entry *models.LedgerEntry) error

	// GetByUser returns the most recent ledger entries for an account
	GetByUser(ctx context.Context, discordID int64, limit int) ([]*models.LedgerEntry, error)
}

// DailyClaimRepository defines the interface for daily-claim timestamps
type DailyClaimRepository interface {
	// GetLastClaim returns the most recent claim time, if any
	GetLastClaim(ctx context.Context, discordID int64) (time.Time, bool, error)

	// SetLastClaim records the claim time for an account
	SetLastClaim(ctx context.Context, discordID int64, claimedAt time.Time) error
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Emit(ctx context.Context, event events.Event)
}

// LedgerService owns all account balances; it is the only component
// permitted to mutate them.
type LedgerService interface {
	// GetOrCreateAccount retrieves an account, creating it with the
	// starting balance on first reference
	GetOrCreateAccount(ctx context.Context, discordID int64, username string) (*models.Account, error)

	// AdjustBalance applies a signed delta and records the change.
	// It performs no validation; games gate their own wagers.
	AdjustBalance(ctx context.Context, discordID int64, delta int64, txType models.TransactionType, metadata map[string]any) (newBalance int64, err error)

	// SetBalance overwrites one account's balance. Requires the admin flag.
	SetBalance(ctx context.Context, admin bool, discordID int64, username string, amount int64) (*models.Account, error)

	// SetAllBalances overwrites every existing account's balance.
	// Requires the admin flag. Does not create accounts.
	SetAllBalances(ctx context.Context, admin bool, amount int64) (updated int, err error)
}

// DailyRewardService issues the time-gated daily grant
type DailyRewardService interface {
	// Claim credits a random reward unless the cooldown is still active
	Claim(ctx context.Context, discordID int64, username string, now time.Time) (*models.RewardResult, error)
}

// SlotsService spins the three-reel slot machine
type SlotsService interface {
	Spin(ctx context.Context, discordID int64, username string, bet int64) (*models.SpinResult, error)
}

// CoinFlipService wagers on a coin toss
type CoinFlipService interface {
	Flip(ctx context.Context, discordID int64, username string, bet int64, call models.CoinSide) (*models.FlipResult, error)
}

// Decision is a player's blackjack choice
type Decision string

const (
	DecisionHit   Decision = "hit"
	DecisionStand Decision = "stand"
)

// BlackjackService runs interactive blackjack hands
type BlackjackService interface {
	// Start deals a new hand for the given wager. If the opening deal
	// already totals 21 the hand resolves immediately and result is
	// non-nil; otherwise view is non-nil and a decision is awaited.
	Start(ctx context.Context, discordID int64, username string, bet int64) (*models.BlackjackView, *models.BlackjackResult, error)

	// SubmitDecision applies a hit or stand to an active session. Exactly
	// one of view/result is non-nil: view while the player's turn
	// continues, result once the hand resolves.
	SubmitDecision(ctx context.Context, sessionID string, discordID int64, decision Decision) (*models.BlackjackView, *models.BlackjackResult, error)

	// SetExpireHandler registers a callback invoked when a session's
	// decision window lapses and the hand auto-stands
	SetExpireHandler(fn func(sessionID string, discordID int64, result *models.BlackjackResult))
}
