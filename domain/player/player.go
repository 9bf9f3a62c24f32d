package player

import (
	"errors"
	"fmt"
	"strings"

	"github.com/luca-patrignani/war/domain/card"
)

// ErrMissingArgument is returned when a player is created without a name.
var ErrMissingArgument = errors.New("missing argument")

// Drawer is anything cards can be drawn from, usually a *deck.Deck.
type Drawer interface {
	Draw() (card.Card, bool)
}

// Player holds a name and an ordered hand of cards. The front of the hand
// is the next card to be flipped.
type Player struct {
	name string
	hand []card.Card
}

// New creates a player named name holding a copy of hand (nil for an empty
// hand). It fails with ErrMissingArgument if name is empty.
func New(name string, hand []card.Card) (*Player, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name not provided", ErrMissingArgument)
	}
	h := make([]card.Card, len(hand))
	copy(h, hand)
	return &Player{name: name, hand: h}, nil
}

func (p *Player) Name() string {
	return p.name
}

// Hand returns a copy of the cards currently held.
func (p *Player) Hand() []card.Card {
	h := make([]card.Card, len(p.hand))
	copy(h, p.hand)
	return h
}

// Len returns the number of cards held.
func (p *Player) Len() int {
	return len(p.hand)
}

// Flip removes and returns the first card of the hand. The boolean is false
// when the hand is empty.
func (p *Player) Flip() (card.Card, bool) {
	if len(p.hand) == 0 {
		return card.Card{}, false
	}
	c := p.hand[0]
	p.hand = p.hand[1:]
	return c, true
}

// Add appends c to the end of the hand. Invalid cards are ignored.
// It returns the number of cards held afterwards.
func (p *Player) Add(c card.Card) int {
	if c.Valid() {
		p.hand = append(p.hand, c)
	}
	return len(p.hand)
}

// DrawCardFromDeck moves the top card of d into the hand. It returns false,
// leaving the hand untouched, if d is nil or has no cards left.
func (p *Player) DrawCardFromDeck(d Drawer) bool {
	if d == nil {
		return false
	}
	c, ok := d.Draw()
	if !ok {
		return false
	}
	p.Add(c)
	return true
}

func (p *Player) String() string {
	cards := make([]string, len(p.hand))
	for i, c := range p.hand {
		cards[i] = c.String()
	}
	return "Name:" + p.name + " Cards:" + strings.Join(cards, ",")
}
