package bot

import (
	"context"
	"strconv"
	"strings"

	"croupier/models"
	"croupier/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (b *Bot) handleBlackjack(s *discordgo.Session, i *discordgo.InteractionCreate) {
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

	view, result, err := b.blackjackService.Start(ctx, discordID, i.Member.User.Username, bet)
	if err != nil {
		b.respondWithError(s, i, userFacingError(err))
		return
	}

	// A 21 off the deal resolves without a player turn
	if result != nil {
		err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds: []*discordgo.MessageEmbed{buildBlackjackResultEmbed(result)},
			},
		})
		if err != nil {
			log.Errorf("Error responding to blackjack command: %v", err)
		}
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{buildBlackjackEmbed(view)},
			Components: blackjackButtons(view.SessionID, false),
		},
	})
	if err != nil {
		log.Errorf("Error responding to blackjack command: %v", err)
		return
	}

	// Remember where the hand is rendered so a timeout can still finish
	// the message
	if msg, err := s.InteractionResponse(i.Interaction); err == nil {
		b.bjMu.Lock()
		b.bjMessages[view.SessionID] = blackjackMessage{channelID: msg.ChannelID, messageID: msg.ID}
		b.bjMu.Unlock()
	} else {
		log.Errorf("Error fetching blackjack message for session %s: %v", view.SessionID, err)
	}
}

// handleBlackjackDecision applies a hit/stand button press to its session
func (b *Bot) handleBlackjackDecision(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	ctx := context.Background()

	parts := strings.SplitN(customID, "_", 3)
	if len(parts) != 3 {
		return
	}
	decision := service.Decision(parts[1])
	sessionID := parts[2]

	discordID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		b.respondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	view, result, err := b.blackjackService.SubmitDecision(ctx, sessionID, discordID, decision)
	if err != nil {
		b.respondWithError(s, i, userFacingError(err))
		return
	}

	if result != nil {
		b.forgetBlackjackMessage(sessionID)
		err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: &discordgo.InteractionResponseData{
				Embeds:     []*discordgo.MessageEmbed{buildBlackjackResultEmbed(result)},
				Components: []discordgo.MessageComponent{},
			},
		})
		if err != nil {
			log.Errorf("Error updating blackjack message: %v", err)
		}
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{buildBlackjackEmbed(view)},
			Components: blackjackButtons(view.SessionID, false),
		},
	})
	if err != nil {
		log.Errorf("Error updating blackjack message: %v", err)
	}
}

// onBlackjackExpired finishes the rendered message for a hand that
// auto-stood when its decision window lapsed
func (b *Bot) onBlackjackExpired(sessionID string, discordID int64, result *models.BlackjackResult) {
	b.bjMu.Lock()
	msg, ok := b.bjMessages[sessionID]
	delete(b.bjMessages, sessionID)
	b.bjMu.Unlock()

	if !ok {
		log.Warnf("No rendered message for expired blackjack session %s", sessionID)
		return
	}

	embed := buildBlackjackResultEmbed(result)
	components := []discordgo.MessageComponent{}
	_, err := b.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    msg.channelID,
		ID:         msg.messageID,
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &components,
	})
	if err != nil {
		log.Errorf("Error editing expired blackjack message: %v", err)
	}

	if _, err := b.session.ChannelMessageSend(msg.channelID, "⏰ Time's up! You automatically stand."); err != nil {
		log.Errorf("Error sending blackjack timeout notice: %v", err)
	}
}

func (b *Bot) forgetBlackjackMessage(sessionID string) {
	b.bjMu.Lock()
	delete(b.bjMessages, sessionID)
	b.bjMu.Unlock()
}
