package bot

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (b *Bot) handleDaily(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		b.respondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	result, err := b.dailyService.Claim(ctx, discordID, i.Member.User.Username, time.Now().UTC())
	if err != nil {
		b.respondWithError(s, i, userFacingError(err))
		return
	}

	displayName := GetDisplayName(s, i.GuildID, i.Member.User.ID)
	b.respondWithContent(s, i, fmt.Sprintf(
		"🎁 %s, you've claimed your daily reward of %s!\nYour new balance: %s",
		displayName, FormatCurrency(result.Amount), FormatCurrency(result.NewBalance)))
}
