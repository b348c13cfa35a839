package repository

import (
	"context"
	"sync"
	"time"

	"croupier/models"
)

// LedgerEntryRepository is an in-memory store of balance history
type LedgerEntryRepository struct {
	mu      sync.Mutex
	nextID  int64
	entries map[int64][]*models.LedgerEntry
}

// NewLedgerEntryRepository creates a new ledger entry repository
func NewLedgerEntryRepository() *LedgerEntryRepository {
	return &LedgerEntryRepository{
		nextID:  1,
		entries: make(map[int64][]*models.LedgerEntry),
	}
}

// Record creates a new ledger entry
func (r *LedgerEntryRepository) Record(ctx context.Context, entry *models.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = r.nextID
	r.nextID++
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	copied := *entry
	r.entries[entry.DiscordID] = append(r.entries[entry.DiscordID], &copied)
	return nil
}

// GetByUser returns the most recent ledger entries for an account,
// newest first.
func (r *LedgerEntryRepository) GetByUser(ctx context.Context, discordID int64, limit int) ([]*models.LedgerEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.entries[discordID]
	if limit <= 0 || limit > len(all) {
		limit = len(all)
	}

	out := make([]*models.LedgerEntry, 0, limit)
	for i := len(all) - 1; i >= len(all)-limit; i-- {
		copied := *all[i]
		out = append(out, &copied)
	}
	return out, nil
}
