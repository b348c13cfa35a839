package service

import (
	"context"
	"time"

	"croupier/events"
	"croupier/lock"
	"croupier/models"
)

// dailyRewardService implements the DailyRewardService interface
type dailyRewardService struct {
	ledger         LedgerService
	claimRepo      DailyClaimRepository
	eventPublisher EventPublisher
	userLocks      *lock.UserLock
	rng            Rand
	rewardMin      int64
	rewardMax      int64
	cooldown       time.Duration
}

// NewDailyRewardService creates a new daily reward service
func NewDailyRewardService(ledger LedgerService, claimRepo DailyClaimRepository, eventPublisher EventPublisher, userLocks *lock.UserLock, rng Rand, rewardMin, rewardMax int64, cooldown time.Duration) DailyRewardService {
	return &dailyRewardService{
		ledger:         ledger,
		claimRepo:      claimRepo,
		eventPublisher: eventPublisher,
		userLocks:      userLocks,
		rng:            rng,
		rewardMin:      rewardMin,
		rewardMax:      rewardMax,
		cooldown:       cooldown,
	}
}

// Claim credits a uniformly random reward unless the account claimed
// within the cooldown window.
func (s *dailyRewardService) Claim(ctx context.Context, discordID int64, username string, now time.Time) (*models.RewardResult, error) {
	var result *models.RewardResult

	err := s.userLocks.WithLock(discordID, func() error {
		if _, err := s.ledger.GetOrCreateAccount(ctx, discordID, username); err != nil {
			return err
		}

		lastClaim, claimed, err := s.claimRepo.GetLastClaim(ctx, discordID)
		if err != nil {
			return err
		}
		if claimed && now.Sub(lastClaim) < s.cooldown {
			return &CooldownActiveError{Remaining: lastClaim.Add(s.cooldown).Sub(now)}
		}

		reward := s.rewardMin + s.rng.Int63n(s.rewardMax-s.rewardMin+1)

		newBalance, err := s.ledger.AdjustBalance(ctx, discordID, reward, models.TransactionTypeDailyReward, map[string]any{
			"reward": reward,
		})
		if err != nil {
			return err
		}

		if err := s.claimRepo.SetLastClaim(ctx, discordID, now); err != nil {
			return err
		}

		s.eventPublisher.Emit(ctx, events.DailyClaimedEvent{
			DiscordID: discordID,
			Amount:    reward,
		})

		result = &models.RewardResult{Amount: reward, NewBalance: newBalance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
