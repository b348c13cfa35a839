package bot

import (
	"context"
	"fmt"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"croupier/events"
	"croupier/service"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	Token          string
	GuildID        string
	AdminDiscordID int64
}

// blackjackMessage locates the Discord message rendering a session so a
// timed-out hand can still be updated
type blackjackMessage struct {
	channelID string
	messageID string
}

type Bot struct {
	config           Config
	session          *discordgo.Session
	ledgerService    service.LedgerService
	dailyService     service.DailyRewardService
	slotsService     service.SlotsService
	coinFlipService  service.CoinFlipService
	blackjackService service.BlackjackService
	eventBus         *events.Bus

	bjMu       sync.Mutex
	bjMessages map[string]blackjackMessage
}

func New(config Config, ledgerService service.LedgerService, dailyService service.DailyRewardService, slotsService service.SlotsService, coinFlipService service.CoinFlipService, blackjackService service.BlackjackService, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	bot := &Bot{
		config:           config,
		session:          dg,
		ledgerService:    ledgerService,
		dailyService:     dailyService,
		slotsService:     slotsService,
		coinFlipService:  coinFlipService,
		blackjackService: blackjackService,
		eventBus:         eventBus,
		bjMessages:       make(map[string]blackjackMessage),
	}

	// Register slash command handlers
	dg.AddHandler(bot.handleCommands)

	// Register component interaction handlers
	dg.AddHandler(bot.handleBlackjackInteraction)

	// Timed-out hands auto-stand inside the service; the bot still has
	// to update the message that rendered them
	blackjackService.SetExpireHandler(bot.onBlackjackExpired)

	eventBus.Subscribe(events.EventTypeBalanceChange, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.BalanceChangeEvent); ok {
			log.WithFields(log.Fields{
				"discordID":       e.DiscordID,
				"transactionType": e.TransactionType,
				"changeAmount":    e.ChangeAmount,
				"newBalance":      e.NewBalance,
			}).Info("Balance changed")
		}
	})

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "balance":
		b.handleBalance(s, i)
	case "daily":
		b.handleDaily(s, i)
	case "slots":
		b.handleSlots(s, i)
	case "coinflip":
		b.handleCoinFlip(s, i)
	case "blackjack":
		b.handleBlackjack(s, i)
	case "setbalance":
		b.handleSetBalance(s, i)
	}
}

// handleBlackjackInteraction routes hit/stand button presses
func (b *Bot) handleBlackjackInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}
	customID := i.MessageComponentData().CustomID
	if !strings.HasPrefix(customID, "blackjack_") {
		return
	}
	b.handleBlackjackDecision(s, i, customID)
}
