package repository

import (
	"context"
	"sync"
	"time"
)

// DailyClaimRepository is an in-memory record of each account's most
// recent daily claim. Records are created on first claim and never
// deleted.
type DailyClaimRepository struct {
	mu     sync.RWMutex
	claims map[int64]time.Time
}

// NewDailyClaimRepository creates a new daily claim repository
func NewDailyClaimRepository() *DailyClaimRepository {
	return &DailyClaimRepository{
		claims: make(map[int64]time.Time),
	}
}

// GetLastClaim returns the most recent claim time, if any
func (r *DailyClaimRepository) GetLastClaim(ctx context.Context, discordID int64) (time.Time, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	claimedAt, ok := r.claims[discordID]
	return claimedAt, ok, nil
}

// SetLastClaim records the claim time for an account
func (r *DailyClaimRepository) SetLastClaim(ctx context.Context, discordID int64, claimedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.claims[discordID] = claimedAt
	return nil
}
