package service

import (
	"context"

	"croupier/events"
	"croupier/lock"
	"croupier/models"
)

// SlotSymbols is the 7-symbol reel alphabet
var SlotSymbols = []string{"🍒", "🍋", "🍇", "🍉", "🔔", "⭐", "7️⃣"}

const (
	jackpotMultiplier = 10
	pairMultiplier    = 2
)

// slotsService implements the SlotsService interface
type slotsService struct {
	ledger         LedgerService
	eventPublisher EventPublisher
	userLocks      *lock.UserLock
	rng            Rand
}

// NewSlotsService creates a new slots service
func NewSlotsService(ledger LedgerService, eventPublisher EventPublisher, userLocks *lock.UserLock, rng Rand) SlotsService {
	return &slotsService{
		ledger:         ledger,
		eventPublisher: eventPublisher,
		userLocks:      userLocks,
		rng:            rng,
	}
}

// Spin draws three symbols and settles the wager. Payout precedence:
// triple pays 10x, a pair or a sub-0.5 fallback roll pays 2x, anything
// else loses the bet. The fallback roll is drawn on every spin, so a
// no-match row still wins about half the time; that skew is the game's
// defined behavior, not an accident to correct.
func (s *slotsService) Spin(ctx context.Context, discordID int64, username string, bet int64) (*models.SpinResult, error) {
	var result *models.SpinResult

	err := s.userLocks.WithLock(discordID, func() error {
		account, err := s.ledger.GetOrCreateAccount(ctx, discordID, username)
		if err != nil {
			return err
		}
		if bet <= 0 {
			return ErrInvalidBet
		}
		if bet > account.Balance {
			return ErrInsufficientFunds
		}

		var row [3]string
		for i := range row {
			row[i] = SlotSymbols[s.rng.Intn(len(SlotSymbols))]
		}
		winChance := s.rng.Float64()

		var payout int64
		var jackpot bool
		var txType models.TransactionType
		switch {
		case row[0] == row[1] && row[1] == row[2]:
			payout = bet * jackpotMultiplier
			jackpot = true
			txType = models.TransactionTypeSlotsWin
		case row[0] == row[1] || row[1] == row[2] || winChance < 0.5:
			payout = bet * pairMultiplier
			txType = models.TransactionTypeSlotsWin
		default:
			payout = -bet
			txType = models.TransactionTypeSlotsLoss
		}

		newBalance, err := s.ledger.AdjustBalance(ctx, discordID, payout, txType, map[string]any{
			"bet":     bet,
			"symbols": row,
		})
		if err != nil {
			return err
		}

		s.eventPublisher.Emit(ctx, events.GameResolvedEvent{
			DiscordID: discordID,
			Game:      "slots",
			Bet:       bet,
			Payout:    payout,
		})

		result = &models.SpinResult{
			Symbols:    row,
			Jackpot:    jackpot,
			Payout:     payout,
			NewBalance: newBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
