package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string
	DiscordGuildID string

	// The Discord ID allowed to use privileged balance commands
	AdminDiscordID int64

	// Ledger configuration
	StartingBalance int64

	// Daily reward configuration
	DailyRewardMin int64
	DailyRewardMax int64
	DailyCooldown  time.Duration

	// Blackjack configuration
	BlackjackTimeout time.Duration

	// Environment
	Environment string // "development" or "production"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),

		// Defaults
		StartingBalance:  100,
		DailyRewardMin:   500,
		DailyRewardMax:   7000,
		DailyCooldown:    24 * time.Hour,
		BlackjackTimeout: 30 * time.Second,

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if admin := os.Getenv("ADMIN_DISCORD_ID"); admin != "" {
		if parsed, err := strconv.ParseInt(admin, 10, 64); err == nil {
			config.AdminDiscordID = parsed
		}
	}
	if balance := os.Getenv("STARTING_BALANCE"); balance != "" {
		if parsed, err := strconv.ParseInt(balance, 10, 64); err == nil {
			config.StartingBalance = parsed
		}
	}
	if min := os.Getenv("DAILY_REWARD_MIN"); min != "" {
		if parsed, err := strconv.ParseInt(min, 10, 64); err == nil {
			config.DailyRewardMin = parsed
		}
	}
	if max := os.Getenv("DAILY_REWARD_MAX"); max != "" {
		if parsed, err := strconv.ParseInt(max, 10, 64); err == nil {
			config.DailyRewardMax = parsed
		}
	}
	if hours := os.Getenv("DAILY_COOLDOWN_HOURS"); hours != "" {
		if parsed, err := strconv.Atoi(hours); err == nil && parsed > 0 {
			config.DailyCooldown = time.Duration(parsed) * time.Hour
		}
	}
	if seconds := os.Getenv("BLACKJACK_TIMEOUT_SECONDS"); seconds != "" {
		if parsed, err := strconv.Atoi(seconds); err == nil && parsed > 0 {
			config.BlackjackTimeout = time.Duration(parsed) * time.Second
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.AdminDiscordID == 0 {
			return nil, fmt.Errorf("ADMIN_DISCORD_ID is required")
		}
	}

	if config.DailyRewardMin > config.DailyRewardMax {
		return nil, fmt.Errorf("DAILY_REWARD_MIN must not exceed DAILY_REWARD_MAX")
	}

	return config, nil
}
