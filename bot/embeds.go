package bot

import (
	"fmt"
	"strings"

	"croupier/models"

	"github.com/bwmarrin/discordgo"
)

// Discord color constants
const (
	ColorPrimary = 0x5865F2 // Discord blurple
	ColorSuccess = 0x57F287 // Green
	ColorDanger  = 0xED4245 // Red
	ColorGold    = 0xF1C40F
)

// buildSlotsEmbed renders a spin result
func buildSlotsEmbed(result *models.SpinResult, bet int64) *discordgo.MessageEmbed {
	color := ColorSuccess
	if result.Payout < 0 {
		color = ColorDanger
	}

	return &discordgo.MessageEmbed{
		Title: "🎰 SLOTS",
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Result",
				Value:  fmt.Sprintf("| %s |", strings.Join(result.Symbols[:], " | ")),
				Inline: false,
			},
			{
				Name:   "Bet",
				Value:  FormatCurrency(bet),
				Inline: true,
			},
			{
				Name:   "New Balance",
				Value:  FormatCurrency(result.NewBalance),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Play again with /slots",
		},
	}
}

// buildCoinFlipEmbed renders a coin flip result
func buildCoinFlipEmbed(result *models.FlipResult) *discordgo.MessageEmbed {
	var outcome string
	if result.Won {
		outcome = fmt.Sprintf("🎉 You won %s!", FormatCurrency(result.Payout))
	} else {
		outcome = fmt.Sprintf("💸 You lost %s!", FormatCurrency(-result.Payout))
	}

	return &discordgo.MessageEmbed{
		Title: "🪙 COIN FLIP",
		Color: ColorGold,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Your Choice",
				Value:  titleCase(string(result.Call)),
				Inline: true,
			},
			{
				Name:   "Result",
				Value:  titleCase(string(result.Outcome)),
				Inline: true,
			},
			{
				Name:   "Outcome",
				Value:  outcome,
				Inline: false,
			},
			{
				Name:   "New Balance",
				Value:  FormatCurrency(result.NewBalance),
				Inline: true,
			},
		},
	}
}

// buildBlackjackEmbed renders an in-progress hand with the dealer's
// hole card hidden
func buildBlackjackEmbed(view *models.BlackjackView) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "🃏 BLACKJACK",
		Color: ColorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Your Hand",
				Value:  fmt.Sprintf("%s (Value: %d)", formatHand(view.PlayerHand), view.PlayerValue),
				Inline: false,
			},
			{
				Name:   "Dealer's Hand",
				Value:  fmt.Sprintf("%s ❓", formatHand(view.DealerHand)),
				Inline: false,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Press Hit to draw or Stand to hold",
		},
	}
}

// buildBlackjackResultEmbed renders a resolved hand with both hands
// exposed
func buildBlackjackResultEmbed(result *models.BlackjackResult) *discordgo.MessageEmbed {
	var verdict string
	color := ColorSuccess
	switch result.Outcome {
	case models.BlackjackOutcomeBust:
		verdict = "BUST - You lose!"
		color = ColorDanger
	case models.BlackjackOutcomeWin:
		verdict = "You win!"
	case models.BlackjackOutcomeLoss:
		verdict = "Dealer wins!"
		color = ColorDanger
	case models.BlackjackOutcomePush:
		verdict = "Push (tie)!"
		color = ColorPrimary
	}

	return &discordgo.MessageEmbed{
		Title: "🃏 BLACKJACK - RESULTS",
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Your Hand",
				Value:  fmt.Sprintf("%s (Value: %d)", formatHand(result.PlayerHand), result.PlayerValue),
				Inline: false,
			},
			{
				Name:   "Dealer's Hand",
				Value:  fmt.Sprintf("%s (Value: %d)", formatHand(result.DealerHand), result.DealerValue),
				Inline: false,
			},
			{
				Name:   "Result",
				Value:  verdict,
				Inline: false,
			},
			{
				Name:   "New Balance",
				Value:  FormatCurrency(result.NewBalance),
				Inline: true,
			},
		},
	}
}

// blackjackButtons builds the hit/stand action row for a session
func blackjackButtons(sessionID string, disabled bool) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Hit",
					Style:    discordgo.SuccessButton,
					CustomID: "blackjack_hit_" + sessionID,
					Disabled: disabled,
				},
				discordgo.Button{
					Label:    "Stand",
					Style:    discordgo.DangerButton,
					CustomID: "blackjack_stand_" + sessionID,
					Disabled: disabled,
				},
			},
		},
	}
}

func formatHand(hand models.Hand) string {
	parts := make([]string, len(hand))
	for i, card := range hand {
		parts[i] = string(card)
	}
	return strings.Join(parts, " ")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
