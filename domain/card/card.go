package card

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidArgument is returned when a card is built from a suit or face
// outside the standard tables.
var ErrInvalidArgument = errors.New("invalid argument")

// Suit is one of the four standard suit symbols.
type Suit string

// Face is one of the thirteen standard faces.
type Face string

const (
	Spade   Suit = "♠"
	Heart   Suit = "♥"
	Club    Suit = "♣"
	Diamond Suit = "♦"
)

const (
	Ace   Face = "A"
	Two   Face = "2"
	Three Face = "3"
	Four  Face = "4"
	Five  Face = "5"
	Six   Face = "6"
	Seven Face = "7"
	Eight Face = "8"
	Nine  Face = "9"
	Ten   Face = "10"
	Jack  Face = "J"
	Queen Face = "Q"
	King  Face = "K"
)

var suits = [...]Suit{Spade, Heart, Club, Diamond}

var faces = [...]Face{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// AllSuits returns the suits in deck order (♠, ♥, ♣, ♦).
func AllSuits() []Suit {
	s := suits
	return s[:]
}

// AllFaces returns the faces in deck order (A, 2..10, J, Q, K).
func AllFaces() []Face {
	f := faces
	return f[:]
}

func (s Suit) valid() bool {
	for _, v := range suits {
		if v == s {
			return true
		}
	}
	return false
}

func (f Face) valid() bool {
	for _, v := range faces {
		if v == f {
			return true
		}
	}
	return false
}

// Card represents a playing card with suit and face.
// The zero Card is not a valid card and stands for "no card".
type Card struct {
	suit Suit
	face Face
}

// NewCard creates a new Card with validation.
//
// Returns the Card or an error wrapping ErrInvalidArgument if suit or face
// does not belong to the standard tables.
func NewCard(suit Suit, face Face) (Card, error) {
	if !suit.valid() {
		return Card{}, fmt.Errorf("%w: suit %q, valid values are %s", ErrInvalidArgument, string(suit), joinSuits())
	}
	if !face.valid() {
		return Card{}, fmt.Errorf("%w: face %q, valid values are %s", ErrInvalidArgument, string(face), joinFaces())
	}
	return Card{suit: suit, face: face}, nil
}

// MustCard is like NewCard but panics on invalid input.
func MustCard(suit Suit, face Face) Card {
	c, err := NewCard(suit, face)
	if err != nil {
		panic(err)
	}
	return c
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Face returns the face of the Card.
func (c Card) Face() Face {
	return c.face
}

// Valid reports whether c was built through NewCard.
func (c Card) Valid() bool {
	return c.suit.valid() && c.face.valid()
}

// Equal reports whether both cards have the same suit and face.
func (c Card) Equal(other Card) bool {
	return c == other
}

// Value returns the score of the card: aces count 1, J, Q and K count 10
// and numeric faces count their number.
func (c Card) Value() int {
	switch c.face {
	case Ace:
		return 1
	case Jack, Queen, King:
		return 10
	}
	v, err := strconv.Atoi(string(c.face))
	if err != nil {
		return 0
	}
	return v
}

// String returns the suit followed by the face, e.g. "♠A".
func (c Card) String() string {
	return string(c.suit) + string(c.face)
}

// Parse reads a card in the String format.
func Parse(s string) (Card, error) {
	s = strings.TrimSpace(s)
	for _, suit := range suits {
		if face, ok := strings.CutPrefix(s, string(suit)); ok {
			return NewCard(suit, Face(face))
		}
	}
	return Card{}, fmt.Errorf("%w: cannot parse card %q", ErrInvalidArgument, s)
}

// ParseList reads a comma separated list of cards.
func ParseList(s string) ([]Card, error) {
	var cards []Card
	for _, field := range strings.Split(s, ",") {
		if strings.TrimSpace(field) == "" {
			continue
		}
		c, err := Parse(field)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func joinSuits() string {
	s := make([]string, len(suits))
	for i, v := range suits {
		s[i] = string(v)
	}
	return strings.Join(s, ",")
}

func joinFaces() string {
	s := make([]string, len(faces))
	for i, v := range faces {
		s[i] = string(v)
	}
	return strings.Join(s, ",")
}

// MarshalText encodes the card in the String format.
func (c Card) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return []byte{}, nil
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a card written by MarshalText. Empty text gives the
// zero Card.
func (c *Card) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = Card{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
