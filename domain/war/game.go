package war

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/luca-patrignani/war/domain/card"
	"github.com/luca-patrignani/war/domain/deck"
	"github.com/luca-patrignani/war/domain/player"
	"github.com/luca-patrignani/war/ledger"
)

// State is the phase of a game.
type State string

const (
	Setup    State = "setup"
	Playing  State = "playing"
	Finished State = "finished"
)

const (
	DefaultPlayer1 = "Player 1"
	DefaultPlayer2 = "Player 2"
)

// Game is one playthrough of War between two players.
type Game struct {
	id      string
	state   State
	player1 *player.Player
	player2 *player.Player

	player1Points int
	player2Points int

	history *ledger.Ledger[Round]
	logger  *slog.Logger
	result  Result
}

type settings struct {
	source deck.Source
	deck   *deck.Deck
	names  [2]string
	logger *slog.Logger
}

type option func(settings) settings

// WithSource sets the randomness used to shuffle the new deck.
func WithSource(source deck.Source) option {
	return func(s settings) settings {
		s.source = source
		return s
	}
}

// WithDeck deals d as is instead of a freshly shuffled standard deck.
// The game consumes d.
func WithDeck(d *deck.Deck) option {
	return func(s settings) settings {
		s.deck = d
		return s
	}
}

// WithPlayerNames replaces the default "Player 1" and "Player 2" names.
func WithPlayerNames(player1, player2 string) option {
	return func(s settings) settings {
		s.names = [2]string{player1, player2}
		return s
	}
}

// WithLogger sets the logger receiving setup, round and result records.
func WithLogger(logger *slog.Logger) option {
	return func(s settings) settings {
		s.logger = logger
		return s
	}
}

// New sets up a game: it builds and shuffles a standard deck, creates both
// players and deals the deck alternately to player 1 and player 2 until it
// is empty. The returned game is in the Playing state.
func New(opts ...option) (*Game, error) {
	s := settings{names: [2]string{DefaultPlayer1, DefaultPlayer2}}
	for _, opt := range opts {
		s = opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	g := &Game{
		id:    uuid.NewString(),
		state: Setup,
	}
	g.logger = s.logger.With("game", g.id)
	g.history = ledger.New[Round](g.id)

	var err error
	if g.player1, err = player.New(s.names[0], nil); err != nil {
		return nil, fmt.Errorf("player 1: %w", err)
	}
	if g.player2, err = player.New(s.names[1], nil); err != nil {
		return nil, fmt.Errorf("player 2: %w", err)
	}

	d := s.deck
	if d == nil {
		if s.source != nil {
			d = deck.New(deck.WithSource(s.source))
		} else {
			d = deck.New()
		}
		d.Shuffle()
	}
	for d.Len() > 0 {
		g.player1.DrawCardFromDeck(d)
		g.player2.DrawCardFromDeck(d)
	}

	g.state = Playing
	g.logger.Info("cards dealt",
		"player1", g.player1.Name(), "player1_cards", g.player1.Len(),
		"player2", g.player2.Name(), "player2_cards", g.player2.Len())
	return g, nil
}

// Play flips one card per player until either hand is empty, giving a
// point to the higher card. Equal values score nobody. Cards left in the
// other hand are never played. Calling Play on a finished game returns the
// same result.
func (g *Game) Play() Result {
	if g.state == Finished {
		return g.result
	}
	for g.player1.Len() > 0 && g.player2.Len() > 0 {
		c1, _ := g.player1.Flip()
		c2, _ := g.player2.Flip()
		g.playRound(c1, c2)
	}

	g.state = Finished
	g.result = Result{
		Player1Name:   g.player1.Name(),
		Player2Name:   g.player2.Name(),
		Player1Points: g.player1Points,
		Player2Points: g.player2Points,
		Rounds:        g.history.Len(),
		Outcome:       compare(g.player1Points, g.player2Points),
	}
	g.logger.Info("game finished",
		"rounds", g.result.Rounds,
		"player1_points", g.result.Player1Points,
		"player2_points", g.result.Player2Points,
		"outcome", g.result.Outcome)
	return g.result
}

func (g *Game) playRound(c1, c2 card.Card) {
	outcome := compare(c1.Value(), c2.Value())
	switch outcome {
	case Player1Wins:
		g.player1Points++
	case Player2Wins:
		g.player2Points++
	}

	r := Round{
		Number:        g.history.Len() + 1,
		Player1Card:   c1,
		Player2Card:   c2,
		Outcome:       outcome,
		Player1Points: g.player1Points,
		Player2Points: g.player2Points,
	}
	if err := g.history.Append(r); err != nil {
		g.logger.Error("cannot record round", "round", r.Number, "error", err)
	}
	g.logger.Debug("round played",
		"round", r.Number,
		"player1_card", c1.String(),
		"player2_card", c2.String(),
		"outcome", outcome)
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Player1() *player.Player {
	return g.player1
}

func (g *Game) Player2() *player.Player {
	return g.player2
}

// Scores returns the points of player 1 and player 2.
func (g *Game) Scores() (int, int) {
	return g.player1Points, g.player2Points
}

// History returns the rounds played so far, oldest first.
func (g *Game) History() []Round {
	return g.history.Payloads()
}

// VerifyHistory checks that the recorded rounds have not been altered.
func (g *Game) VerifyHistory() error {
	return g.history.Verify()
}
