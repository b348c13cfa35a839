package bot

import (
	"context"
	"strconv"

	"croupier/models"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (b *Bot) handleSlots(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		b.respondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	var bet int64
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "bet" {
			bet = opt.IntValue()
		}
	}

	result, err := b.slotsService.Spin(ctx, discordID, i.Member.User.Username, bet)
	if err != nil {
		b.respondWithError(s, i, userFacingError(err))
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{buildSlotsEmbed(result, bet)},
		},
	})
	if err != nil {
		log.Errorf("Error responding to slots command: %v", err)
	}
}

func (b *Bot) handleCoinFlip(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	discordID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		b.respondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	var bet int64
	var call string
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "bet":
			bet = opt.IntValue()
		case "call":
			call = opt.StringValue()
		}
	}

	result, err := b.coinFlipService.Flip(ctx, discordID, i.Member.User.Username, bet, models.CoinSide(call))
	if err != nil {
		b.respondWithError(s, i, userFacingError(err))
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{buildCoinFlipEmbed(result)},
		},
	})
	if err != nil {
		log.Errorf("Error responding to coinflip command: %v", err)
	}
}
