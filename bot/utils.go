package bot

import (
	"errors"
	"fmt"
	"strings"

	"croupier/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// FormatCurrency formats an amount with thousand separators and the
// currency glyph
func FormatCurrency(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	str := fmt.Sprintf("%d", amount)

	// Add commas for thousands
	n := len(str)
	var result strings.Builder
	if negative {
		result.WriteRune('-')
	}
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}

	return "💵 " + result.String()
}

// GetDisplayName returns the server-specific display name for a user,
// falling back to the username
func GetDisplayName(s *discordgo.Session, guildID, userID string) string {
	member, err := s.GuildMember(guildID, userID)
	if err == nil && member != nil {
		if member.Nick != "" {
			return member.Nick
		}
		if member.User != nil {
			return member.User.Username
		}
	}

	user, err := s.User(userID)
	if err == nil && user != nil {
		return user.Username
	}

	return "Unknown"
}

// userFacingError maps a service error to the message shown to the
// player. Unrecognized errors get a generic retry message.
func userFacingError(err error) string {
	var cooldown *service.CooldownActiveError
	switch {
	case errors.As(err, &cooldown):
		hours, minutes := cooldown.HoursMinutes()
		return fmt.Sprintf("⏳ You've already claimed your daily reward! Try again in **%dh %dm**.", hours, minutes)
	case errors.Is(err, service.ErrInvalidBet):
		return "Bet must be positive!"
	case errors.Is(err, service.ErrInsufficientFunds):
		return "Insufficient funds!"
	case errors.Is(err, service.ErrInvalidAmount):
		return "Balance cannot be negative!"
	case errors.Is(err, service.ErrInvalidChoice):
		return "Please choose 'heads' or 'tails'!"
	case errors.Is(err, service.ErrUnauthorized):
		return "You do not have permission to use this command."
	case errors.Is(err, service.ErrSessionInProgress):
		return "Finish your current blackjack hand first!"
	case errors.Is(err, service.ErrSessionNotFound):
		return "That blackjack hand is no longer active."
	case errors.Is(err, service.ErrIllegalTransition):
		return "You can't do that right now."
	default:
		return "Unable to process request. Please try again."
	}
}

func (b *Bot) respondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error sending error response: %v", err)
	}
}

func (b *Bot) respondWithContent(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
		},
	})
	if err != nil {
		log.Errorf("Error sending response: %v", err)
	}
}
