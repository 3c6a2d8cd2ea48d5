package blackjack

import (
	"math/rand"
	"testing"
)

func TestFreshDeckHas52UniqueCards(t *testing.T) {
	d := NewDeck()
	d.Shuffle(rand.New(rand.NewSource(1)))
	if d.Len() != 52 {
		t.Fatalf("deck size = %d, want 52", d.Len())
	}
	seen := map[Card]bool{}
	for d.Len() > 0 {
		c := d.Deal()
		if seen[c] {
			t.Fatalf("duplicate card %s", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Fatalf("unique cards = %d, want 52", len(seen))
	}
}

func TestDealConsumesFromEnd(t *testing.T) {
	d := &Deck{cards: []Card{card(Two, Spades), card(King, Hearts)}}
	if c := d.Deal(); c != card(King, Hearts) {
		t.Fatalf("first deal = %s, want Kh", c)
	}
	if c := d.Deal(); c != card(Two, Spades) {
		t.Fatalf("second deal = %s, want 2s", c)
	}
	if d.Len() != 0 {
		t.Fatalf("deck should be empty, len = %d", d.Len())
	}
}

func TestCardStrings(t *testing.T) {
	c := card(Ace, Spades)
	if c.String() != "As" {
		t.Fatalf("String() = %q, want As", c.String())
	}
	if c.Glyph() != "A♠" {
		t.Fatalf("Glyph() = %q, want A♠", c.Glyph())
	}
	if got := card(Ten, Diamonds).Glyph(); got != "T♦" {
		t.Fatalf("Glyph() = %q, want T♦", got)
	}
}
