package push

import (
	"fmt"
	"strings"
	"time"

	"crew-casino/internal/app/casino"
	"crew-casino/internal/game"
	"crew-casino/internal/game/blackjack"
	"crew-casino/internal/game/coinflip"
	"crew-casino/internal/game/dailyspin"
)

const (
	colorWin  = 0x57F287
	colorLoss = 0xED4245
	colorPush = 0xFEE75C

	defaultFooter = "crew-casino result push"
)

// FormatResult renders one resolved round as a chat message. Unknown game
// details fall back to the generic bet/payout summary.
func FormatResult(ev casino.ResultEvent) FormattedMessage {
	msg := FormattedMessage{
		Title:     fmt.Sprintf("%s · %s", gameTitle(ev.Game), playerLabel(ev)),
		Content:   fmt.Sprintf("%s %s: bet %dcc, payout %dcc", playerLabel(ev), outcomeVerb(ev.Outcome), ev.BetCC, ev.PayoutCC),
		Color:     outcomeColor(ev.Outcome),
		Footer:    defaultFooter,
		Timestamp: eventTimestamp(ev.At),
	}
	fields := []MessageField{
		{Name: "Outcome", Value: string(ev.Outcome), Inline: true},
		{Name: "Bet", Value: fmt.Sprintf("%dcc", ev.BetCC), Inline: true},
		{Name: "Payout", Value: fmt.Sprintf("%dcc", ev.PayoutCC), Inline: true},
	}

	switch detail := ev.Detail.(type) {
	case *blackjack.ResolutionView:
		msg.Description = fmt.Sprintf("Player %d vs dealer %d", detail.PlayerValue, detail.DealerValue)
		if detail.Busted {
			msg.Description = fmt.Sprintf("Player busted with %d", detail.PlayerValue)
		}
		fields = append(fields,
			MessageField{Name: "Player Hand", Value: cardLine(detail.PlayerCards), Inline: false},
			MessageField{Name: "Dealer Hand", Value: cardLine(detail.DealerCards), Inline: false},
		)
	case *coinflip.Result:
		msg.Description = fmt.Sprintf("Called %s, landed %s", detail.Side, detail.Landed)
		fields = append(fields, MessageField{Name: "Coin", Value: string(detail.Landed), Inline: true})
	case *dailyspin.Result:
		if detail.Accepted {
			msg.Description = fmt.Sprintf("Banked the daily reward of %dcc", detail.AmountCC)
		} else {
			msg.Description = fmt.Sprintf("Rolled %d then %d on guess %q", detail.FirstRoll, detail.SecondRoll, detail.Guess)
			fields = append(fields, MessageField{Name: "Dice", Value: fmt.Sprintf("%d → %d", detail.FirstRoll, detail.SecondRoll), Inline: true})
		}
	default:
		msg.Description = msg.Content
	}

	msg.Fields = fields
	return msg
}

func cardLine(cards []blackjack.CardView) string {
	if len(cards) == 0 {
		return "-"
	}
	glyphs := make([]string, 0, len(cards))
	for _, c := range cards {
		glyphs = append(glyphs, c.Glyph)
	}
	return strings.Join(glyphs, " ")
}

func gameTitle(name string) string {
	switch name {
	case blackjack.GameName:
		return "Blackjack"
	case coinflip.GameName:
		return "Coin Flip"
	case dailyspin.GameName:
		return "Daily Spin"
	default:
		return name
	}
}

func playerLabel(ev casino.ResultEvent) string {
	if ev.PlayerName != "" {
		return ev.PlayerName
	}
	return ev.PlayerID
}

func outcomeVerb(outcome game.Outcome) string {
	switch outcome {
	case game.OutcomeWin:
		return "won"
	case game.OutcomeLoss:
		return "lost"
	default:
		return "pushed"
	}
}

func outcomeColor(outcome game.Outcome) int {
	switch outcome {
	case game.OutcomeWin:
		return colorWin
	case game.OutcomeLoss:
		return colorLoss
	default:
		return colorPush
	}
}

func eventTimestamp(at time.Time) string {
	if at.IsZero() {
		at = time.Now().UTC()
	}
	return at.UTC().Format(time.RFC3339)
}
