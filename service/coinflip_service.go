package service

import (
	"context"

	"croupier/events"
	"croupier/lock"
	"croupier/models"
)

// coinFlipService implements the CoinFlipService interface
type coinFlipService struct {
	ledger         LedgerService
	eventPublisher EventPublisher
	userLocks      *lock.UserLock
	rng            Rand
}

// NewCoinFlipService creates a new coin flip service
func NewCoinFlipService(ledger LedgerService, eventPublisher EventPublisher, userLocks *lock.UserLock, rng Rand) CoinFlipService {
	return &coinFlipService{
		ledger:         ledger,
		eventPublisher: eventPublisher,
		userLocks:      userLocks,
		rng:            rng,
	}
}

// Flip settles an even-money wager on a coin toss
func (s *coinFlipService) Flip(ctx context.Context, discordID int64, username string, bet int64, call models.CoinSide) (*models.FlipResult, error) {
	var result *models.FlipResult

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
		if !call.Valid() {
			return ErrInvalidChoice
		}

		outcome := models.CoinHeads
		if s.rng.Intn(2) == 1 {
			outcome = models.CoinTails
		}

		won := call == outcome
		payout := bet
		txType := models.TransactionTypeCoinFlipWin
		if !won {
			payout = -bet
			txType = models.TransactionTypeCoinFlipLoss
		}

		newBalance, err := s.ledger.AdjustBalance(ctx, discordID, payout, txType, map[string]any{
			"bet":     bet,
			"call":    string(call),
			"outcome": string(outcome),
		})
		if err != nil {
			return err
		}

		s.eventPublisher.Emit(ctx, events.GameResolvedEvent{
			DiscordID: discordID,
			Game:      "coinflip",
			Bet:       bet,
			Payout:    payout,
		})

		result = &models.FlipResult{
			Call:       call,
			Outcome:    outcome,
			Won:        won,
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
