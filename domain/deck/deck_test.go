package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/war/domain/card"
)

func TestNewStandardDeck(t *testing.T) {
	d := New()
	cards := d.Peek()
	require.Len(t, cards, Size)

	seen := make(map[card.Card]bool)
	for _, c := range cards {
		assert.True(t, c.Valid(), "invalid card %v", c)
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
	for _, s := range card.AllSuits() {
		for _, f := range card.AllFaces() {
			assert.True(t, seen[card.MustCard(s, f)], "missing %s%s", s, f)
		}
	}
}

func TestNewStandardDeckOrder(t *testing.T) {
	cards := New().Peek()
	assert.Equal(t, card.MustCard(card.Spade, card.Ace), cards[0])
	assert.Equal(t, card.MustCard(card.Spade, card.King), cards[12])
	assert.Equal(t, card.MustCard(card.Heart, card.Ace), cards[13])
	assert.Equal(t, card.MustCard(card.Club, card.Ace), cards[26])
	assert.Equal(t, card.MustCard(card.Diamond, card.King), cards[51])
}

func TestWithCardsCopiesInput(t *testing.T) {
	preset := []card.Card{
		card.MustCard(card.Diamond, card.Jack),
		card.MustCard(card.Diamond, card.Queen),
		card.MustCard(card.Diamond, card.King),
	}
	d := New(WithCards(preset))
	preset[0] = card.MustCard(card.Spade, card.Ace)

	assert.Equal(t, []card.Card{
		card.MustCard(card.Diamond, card.Jack),
		card.MustCard(card.Diamond, card.Queen),
		card.MustCard(card.Diamond, card.King),
	}, d.Peek())
}

func TestWithCardsAllowsDuplicates(t *testing.T) {
	c := card.MustCard(card.Club, card.Two)
	d := New(WithCards([]card.Card{c, c, c}))
	assert.Equal(t, 3, d.Len())
}

func TestWithCardsEmpty(t *testing.T) {
	assert.Equal(t, 0, New(WithCards(nil)).Len())
	assert.Equal(t, 0, New(WithCards([]card.Card{})).Len())
}

func TestPeekDoesNotExposeState(t *testing.T) {
	d := New()
	cards := d.Peek()
	cards[0] = card.MustCard(card.Heart, card.Five)

	assert.Equal(t, Size, d.Len())
	assert.Equal(t, card.MustCard(card.Spade, card.Ace), d.Peek()[0])
}

func TestDrawEmpty(t *testing.T) {
	d := New(WithCards(nil))
	c, ok := d.Draw()
	assert.False(t, ok)
	assert.False(t, c.Valid())
}

func TestDrawNilDeck(t *testing.T) {
	var d *Deck
	_, ok := d.Draw()
	assert.False(t, ok)
	assert.Equal(t, 0, d.Len())
}

func TestDrawTakesTop(t *testing.T) {
	d := New()
	c, ok := d.Draw()
	require.True(t, ok)
	assert.Equal(t, card.MustCard(card.Diamond, card.King), c)
	assert.Equal(t, Size-1, d.Len())
}

func TestDrawExhaustsDeck(t *testing.T) {
	d := New()
	drawn := 0
	for {
		before := d.Len()
		if _, ok := d.Draw(); !ok {
			break
		}
		drawn++
		require.Equal(t, before-1, d.Len())
	}
	assert.Equal(t, Size, drawn)
	_, ok := d.Draw()
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	d := New(WithCards([]card.Card{
		card.MustCard(card.Spade, card.Ace),
		card.MustCard(card.Heart, card.Ten),
	}))
	assert.Equal(t, "♠A,♥10", d.String())
}
