package deck

import (
	"strings"

	"github.com/luca-patrignani/war/domain/card"
)

// Size is the number of cards in a standard deck.
const Size = 52

// Deck is an ordered pile of cards. The last card is the top of the deck.
type Deck struct {
	cards  []card.Card
	source Source
}

type option func(Deck) Deck

// New creates a deck. Without options it holds the standard 52 cards,
// ordered by suit (♠, ♥, ♣, ♦) and then by face (A..K), and shuffles with
// a crypto source.
func New(opts ...option) *Deck {
	d := Deck{
		cards: standard(),
	}
	for _, opt := range opts {
		d = opt(d)
	}
	if d.source == nil {
		d.source = NewCryptoSource()
	}
	return &d
}

// WithCards replaces the deck contents with a copy of cards, keeping their
// order. Duplicates are allowed; a nil or empty slice gives an empty deck.
func WithCards(cards []card.Card) option {
	return func(d Deck) Deck {
		d.cards = make([]card.Card, len(cards))
		copy(d.cards, cards)
		return d
	}
}

// WithSource sets the randomness used by Shuffle.
func WithSource(source Source) option {
	return func(d Deck) Deck {
		d.source = source
		return d
	}
}

func standard() []card.Card {
	cards := make([]card.Card, 0, Size)
	for _, suit := range card.AllSuits() {
		for _, face := range card.AllFaces() {
			cards = append(cards, card.MustCard(suit, face))
		}
	}
	return cards
}

// Peek returns a copy of the cards in their current order.
func (d *Deck) Peek() []card.Card {
	if d == nil {
		return []card.Card{}
	}
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// Len returns the number of cards left in the deck.
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.cards)
}

// Draw removes the top card. The boolean is false when the deck is empty.
func (d *Deck) Draw() (card.Card, bool) {
	if d.Len() == 0 {
		return card.Card{}, false
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, true
}

func (d *Deck) String() string {
	s := make([]string, 0, d.Len())
	for _, c := range d.Peek() {
		s = append(s, c.String())
	}
	return strings.Join(s, ",")
}
