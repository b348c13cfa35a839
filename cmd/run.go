package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"croupier/bot"
	"croupier/config"
	"croupier/events"
	"croupier/lock"
	"croupier/repository"
	"croupier/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting croupier bot...")

	// Load configuration
	cfg := config.Get()

	// Initialize event bus
	eventBus := events.NewBus()

	// Initialize in-memory repositories; all state lives for the
	// process lifetime only
	accountRepo := repository.NewAccountRepository()
	entryRepo := repository.NewLedgerEntryRepository()
	claimRepo := repository.NewDailyClaimRepository()

	// Shared per-user locks keep a funds check and its payout atomic
	userLocks := lock.NewUserLock()
	rng := service.NewRand()

	// Initialize services
	log.Println("Initializing services...")
	ledgerService := service.NewLedgerService(accountRepo, entryRepo, eventBus, cfg.StartingBalance)
	dailyService := service.NewDailyRewardService(ledgerService, claimRepo, eventBus, userLocks, rng, cfg.DailyRewardMin, cfg.DailyRewardMax, cfg.DailyCooldown)
	slotsService := service.NewSlotsService(ledgerService, eventBus, userLocks, rng)
	coinFlipService := service.NewCoinFlipService(ledgerService, eventBus, userLocks, rng)
	blackjackService := service.NewBlackjackService(ledgerService, eventBus, userLocks, rng, cfg.BlackjackTimeout)
	log.Println("Services initialized successfully")

	// Initialize Discord bot
	log.Println("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:          cfg.DiscordToken,
		GuildID:        cfg.DiscordGuildID,
		AdminDiscordID: cfg.AdminDiscordID,
	}
	discordBot, err := bot.New(botConfig, ledgerService, dailyService, slotsService, coinFlipService, blackjackService, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Println("Discord bot initialized successfully")

	// Wait for context cancellation
	log.Printf("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Println("Shutting down bot...")
	if err := discordBot.Close(); err != nil {
		log.Printf("Error closing Discord bot: %v", err)
	}

	// Give in-flight handlers a moment to finish
	time.Sleep(1 * time.Second)

	log.Println("Shutdown completed")
	return nil
}
