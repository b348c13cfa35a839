package models

import (
	"time"
)

// TransactionType represents the type of balance change
type TransactionType string

const (
	TransactionTypeInitial       TransactionType = "initial"
	TransactionTypeDailyReward   TransactionType = "daily_reward"
	TransactionTypeSlotsWin      TransactionType = "slots_win"
	TransactionTypeSlotsLoss     TransactionType = "slots_loss"
	TransactionTypeCoinFlipWin   TransactionType = "coinflip_win"
	TransactionTypeCoinFlipLoss  TransactionType = "coinflip_loss"
	TransactionTypeBlackjackWin  TransactionType = "blackjack_win"
	TransactionTypeBlackjackLoss TransactionType = "blackjack_loss"
	TransactionTypeBlackjackPush TransactionType = "blackjack_push"
	TransactionTypeAdminSet      TransactionType = "admin_set"
)

// LedgerEntry represents a historical balance change
type LedgerEntry struct {
	ID                  int64
	DiscordID           int64
	BalanceBefore       int64
	BalanceAfter        int64
	ChangeAmount        int64
	TransactionType     TransactionType
	TransactionMetadata map[string]any
	CreatedAt           time.Time
}
