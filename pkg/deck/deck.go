package deck

import (
	"errors"

	"holdempoker-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
type Deck struct {
	Cards []*Card `json:"cards"`
	rng   rng.Generator
}

// New returns a new deck of cards backed by a crypto-secure random source.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		rng: rng.Crypto{},
	}

	d.buildDeck()
	return d
}

// SetRNG replaces the random source used by Shuffle.
// This should only be used by tests that need a reproducible deal order.
func (d *Deck) SetRNG(g rng.Generator) {
	d.rng = g
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
		for rank := 2; rank <= 14; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards using a Fisher-Yates shuffle.
// We always shuffle from a full, ordered deck so a partially drawn deck
// cannot leak its consumed cards back into play.
func (d *Deck) Shuffle() {
	if len(d.Cards) != 52 {
		d.buildDeck()
	}

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// Burn will discard the next card face-down before a new street is dealt
func (d *Deck) Burn() error {
	_, err := d.Draw()
	return err
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
