package service

import (
	"context"
	"fmt"

	"croupier/events"
	"croupier/models"
)

// recordChange records a ledger entry and emits the matching events.
// Every balance mutation in the system funnels through here.
func (s *ledgerService) recordChange(ctx context.Context, entry *models.LedgerEntry) error {
	if err := s.entryRepo.Record(ctx, entry); err != nil {
		return fmt.Errorf("failed to record ledger entry: %w", err)
	}

	s.eventPublisher.Emit(ctx, events.BalanceChangeEvent{
		DiscordID:       entry.DiscordID,
		OldBalance:      entry.BalanceBefore,
		NewBalance:      entry.BalanceAfter,
		TransactionType: entry.TransactionType,
		ChangeAmount:    entry.ChangeAmount,
	})

	if entry.TransactionType == models.TransactionTypeInitial {
		if username, ok := entry.TransactionMetadata["username"].(string); ok {
			s.eventPublisher.Emit(ctx, events.AccountCreatedEvent{
				DiscordID:      entry.DiscordID,
				Username:       username,
				InitialBalance: entry.BalanceAfter,
			})
		}
	}

	return nil
}
