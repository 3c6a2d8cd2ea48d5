package blackjack

import "crew-casino/internal/game"

type CardView struct {
	Code  string `json:"code"`
	Glyph string `json:"glyph"`
}

var hiddenCard = CardView{Code: "??", Glyph: "🂠"}

// HandView is the display projection of a live hand. While the hand is in
// play the dealer's second card is masked and no dealer total is reported.
type HandView struct {
	HandID      string     `json:"hand_id"`
	PlayerID    string     `json:"player_id"`
	BetCC       int64      `json:"bet_cc"`
	PlayerCards []CardView `json:"player_cards"`
	PlayerValue int        `json:"player_value"`
	DealerCards []CardView `json:"dealer_cards"`
	DealerValue int        `json:"dealer_value,omitempty"`
	Revealed    bool       `json:"revealed"`
}

// ResolutionView is the final reveal: both dealer cards shown, outcome and
// payout included.
type ResolutionView struct {
	HandView
	Outcome      game.Outcome `json:"outcome"`
	Busted       bool         `json:"busted"`
	PayoutCC     int64        `json:"payout_cc"`
	NewBalanceCC int64        `json:"new_balance_cc"`
}

// Update is the result of a hit: either the hand is still live, or the hit
// ended it and the resolution is attached instead.
type Update struct {
	Hand       *HandView       `json:"hand,omitempty"`
	Resolution *ResolutionView `json:"resolution,omitempty"`
}

// newHandView projects a hand for display. It is a pure function of the
// hand's fields plus the reveal flag.
func newHandView(h *Hand, reveal bool) HandView {
	v := HandView{
		HandID:      h.ID,
		PlayerID:    h.PlayerID,
		BetCC:       h.Bet,
		PlayerCards: cardViews(h.Player),
		PlayerValue: HandValue(h.Player),
		Revealed:    reveal,
	}
	if reveal {
		v.DealerCards = cardViews(h.Dealer)
		v.DealerValue = HandValue(h.Dealer)
		return v
	}
	if len(h.Dealer) > 0 {
		v.DealerCards = append(cardViews(h.Dealer[:1]), hiddenCard)
	}
	return v
}

func cardViews(cards []Card) []CardView {
	out := make([]CardView, 0, len(cards))
	for _, c := range cards {
		out = append(out, CardView{Code: c.String(), Glyph: c.Glyph()})
	}
	return out
}
