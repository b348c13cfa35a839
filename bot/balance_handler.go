package bot

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (b *Bot) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		b.respondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	account, err := b.ledgerService.GetOrCreateAccount(ctx, discordID, i.Member.User.Username)
	if err != nil {
		log.Errorf("Error getting account %d: %v", discordID, err)
		b.respondWithError(s, i, "Unable to retrieve balance. Please try again.")
		return
	}

	displayName := GetDisplayName(s, i.GuildID, i.Member.User.ID)
	b.respondWithContent(s, i, fmt.Sprintf("%s, your balance is %s", displayName, FormatCurrency(account.Balance)))
}
