package bot

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleSetBalance services the owner-only balance override. With a
// user option it rewrites one account; without it, every account.
func (b *Bot) handleSetBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	callerID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		b.respondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	admin := callerID == b.config.AdminDiscordID

	var amount int64
	var target *discordgo.User
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "amount":
			amount = opt.IntValue()
		case "user":
			target = opt.UserValue(s)
		}
	}

	if target == nil {
		updated, err := b.ledgerService.SetAllBalances(ctx, admin, amount)
		if err != nil {
			b.respondWithError(s, i, userFacingError(err))
			return
		}
		b.respondWithContent(s, i, fmt.Sprintf("✅ Set the balance of %d players to %s!", updated, FormatCurrency(amount)))
		return
	}

	targetID, err := strconv.ParseInt(target.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing target Discord ID %s: %v", target.ID, err)
		b.respondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	account, err := b.ledgerService.SetBalance(ctx, admin, targetID, target.Username, amount)
	if err != nil {
		b.respondWithError(s, i, userFacingError(err))
		return
	}

	displayName := GetDisplayName(s, i.GuildID, target.ID)
	b.respondWithContent(s, i, fmt.Sprintf("✅ %s's balance has been set to %s!", displayName, FormatCurrency(account.Balance)))
}
